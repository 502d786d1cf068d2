// Package registry holds the static lookup tables the engine schedules
// against: the codec table and the bitrate ladder.
package registry

import (
	"sync"

	"github.com/zetaframe/pipeline/internal/model"
)

// Fallbacks for codec ids nobody registered. Codec metadata is advisory,
// so unknown ids degrade to these rather than failing.
const (
	unknownCodecName     = "unknown"
	unknownCodecKeyframe = model.DefaultKeyframeInterval
	unknownCodecMaxKbps  = model.MaxBitrateKbps
)

type codecEntry struct {
	name            string
	defaultKeyframe int
	maxKbps         int
}

// CodecRegistry maps codec ids to display names and default encoding
// parameters. It is a pure lookup table: lookups never fail, and
// Register either inserts or overwrites.
type CodecRegistry struct {
	mu     sync.RWMutex
	codecs map[int]codecEntry
	order  []int
}

// NewCodecRegistry returns a registry pre-loaded with the built-in
// codec table.
func NewCodecRegistry() *CodecRegistry {
	r := &CodecRegistry{codecs: make(map[int]codecEntry)}
	r.Register(model.CodecH264, "H.264/AVC", 48, 12000)
	r.Register(model.CodecH265, "H.265/HEVC", 48, 18000)
	r.Register(model.CodecVP9, "VP9", 48, 18000)
	r.Register(model.CodecAV1, "AV1", 96, 25000)
	return r
}

// Register inserts or overwrites a codec entry.
func (r *CodecRegistry) Register(codecID int, name string, defaultKeyframe, maxKbps int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.codecs[codecID]; !exists {
		r.order = append(r.order, codecID)
	}
	r.codecs[codecID] = codecEntry{
		name:            name,
		defaultKeyframe: defaultKeyframe,
		maxKbps:         maxKbps,
	}
}

// Name returns the display name for a codec id, "unknown" for ids with
// no entry.
func (r *CodecRegistry) Name(codecID int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.codecs[codecID]; ok {
		return c.name
	}
	return unknownCodecName
}

// DefaultKeyframeInterval returns the codec's default GOP length in
// frames, falling back to the global default for unknown ids.
func (r *CodecRegistry) DefaultKeyframeInterval(codecID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.codecs[codecID]; ok {
		return c.defaultKeyframe
	}
	return unknownCodecKeyframe
}

// MaxKbps returns the codec's bitrate ceiling, falling back to the
// global ceiling for unknown ids.
func (r *CodecRegistry) MaxKbps(codecID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.codecs[codecID]; ok {
		return c.maxKbps
	}
	return unknownCodecMaxKbps
}

// ListCodecs returns (id, name) pairs in insertion order.
func (r *CodecRegistry) ListCodecs() []model.CodecView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CodecView, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, model.CodecView{ID: id, Name: r.codecs[id].name})
	}
	return out
}
