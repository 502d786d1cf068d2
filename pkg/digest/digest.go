// Package digest derives the deterministic identities the pipeline keys
// on: content hashes for raw media and profile keys for encoding
// parameter sets. Both are hex-encoded SHA-256, so equal inputs always
// produce equal keys.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Content hashes raw content bytes.
func Content(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ContentFromString hashes a string identifier (URL, asset id) the same
// way Content hashes bytes.
func ContentFromString(id string) string {
	return Content([]byte(id))
}

// ProfileKey derives the content-independent identity of a compression
// profile from its encoding parameters. Profiles with equal parameters
// collapse to the same key regardless of creation order.
func ProfileKey(maxBitrateKbps, keyframeInterval, codecID int) string {
	return Content([]byte(fmt.Sprintf("profile:%d:%d:%d", maxBitrateKbps, keyframeInterval, codecID)))
}
