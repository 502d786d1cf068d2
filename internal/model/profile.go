package model

import "time"

// CompressionProfile is one deduplicated set of encoding parameters.
// Key is derived from (MaxBitrateKbps, KeyframeInterval, CodecID), so two
// profiles with the same parameters collapse to one record. The encoding
// parameters never change after creation; only State moves, and only from
// active to inactive.
type CompressionProfile struct {
	Key              string       `json:"key"`
	MaxBitrateKbps   int          `json:"maxBitrateKbps"`
	KeyframeInterval int          `json:"keyframeInterval"`
	CodecID          int          `json:"codecId"`
	State            ProfileState `json:"state"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// Active reports whether the profile is still eligible for use.
func (p *CompressionProfile) Active() bool {
	return p.State == ProfileActive
}

// Deactivate moves the profile to inactive. Returns false if it already
// left the active state; the transition is one-way.
func (p *CompressionProfile) Deactivate() bool {
	if p.State != ProfileActive {
		return false
	}
	p.State = ProfileInactive
	return true
}

// RegisterProfileRequest is the boundary input for profile registration.
type RegisterProfileRequest struct {
	MaxBitrateKbps   int `json:"maxBitrateKbps" validate:"required,min=256,max=25000"`
	KeyframeInterval int `json:"keyframeInterval" validate:"required,min=1,max=600"`
	CodecID          int `json:"codecId" validate:"required,min=1"`
}

// RegisterProfileResponse returns the derived key so the caller can look
// the profile up later.
type RegisterProfileResponse struct {
	ProfileKey string    `json:"profileKey"`
	CreatedAt  time.Time `json:"createdAt"`
}
