package model

// Well-known codec identifiers
const (
	CodecH264 = 1
	CodecH265 = 2
	CodecVP9  = 3
	CodecAV1  = 4
)

// Bitrate bounds accepted anywhere a kbps value is set
const (
	MinBitrateKbps = 256
	MaxBitrateKbps = 25000
)

// DefaultKeyframeInterval is the fallback GOP length (frames) for codecs
// with no registered default.
const DefaultKeyframeInterval = 48

// Profile lifecycle
type ProfileState string

const (
	ProfileActive   ProfileState = "active"
	ProfileInactive ProfileState = "inactive"
)

// Job lifecycle
type JobState string

const (
	JobPending   JobState = "pending"
	JobFulfilled JobState = "fulfilled"
)

// RejectReason explains why a schedule request was not admitted.
type RejectReason string

const (
	ReasonNone                RejectReason = ""
	ReasonContentProcessed    RejectReason = "content_already_processed"
	ReasonCooldownActive      RejectReason = "cooldown_active"
	ReasonTierOutOfRange      RejectReason = "tier_out_of_range"
	ReasonTierCapacityReached RejectReason = "tier_capacity_reached"
)
