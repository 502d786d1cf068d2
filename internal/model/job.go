package model

import "time"

// EncodeJob is one accepted request to encode a piece of content at a
// given ladder tier. Jobs are append-only: a job is created by a
// successful schedule, fulfilled at most once, and never deleted.
// FulfilledAt is non-nil exactly when State is fulfilled.
type EncodeJob struct {
	ID          string     `json:"id"`
	ContentHash string     `json:"contentHash"`
	TierIndex   int        `json:"tierIndex"`
	Seq         uint64     `json:"seq"`
	State       JobState   `json:"state"`
	ScheduledAt time.Time  `json:"scheduledAt"`
	FulfilledAt *time.Time `json:"fulfilledAt,omitempty"`
}

// Fulfilled reports whether the job reached its terminal state.
func (j *EncodeJob) Fulfilled() bool {
	return j.State == JobFulfilled
}

// MarkFulfilled moves the job to its terminal state and stamps the
// completion time. Returns false if the job was already fulfilled; the
// transition fires exactly once.
func (j *EncodeJob) MarkFulfilled(at time.Time) bool {
	if j.State != JobPending {
		return false
	}
	j.State = JobFulfilled
	j.FulfilledAt = &at
	return true
}

// ScheduleJobRequest is the boundary input for job admission.
type ScheduleJobRequest struct {
	ContentHash string `json:"contentHash" validate:"required,hexadecimal,len=64"`
	TierIndex   int    `json:"tierIndex" validate:"min=0"`
	CallerID    string `json:"callerId" validate:"required"`
}

// Admission is the outcome of an admission check: either allowed, or
// rejected with a machine-readable reason.
type Admission struct {
	Allowed bool         `json:"allowed"`
	Reason  RejectReason `json:"reason,omitempty"`
}

// Allow is the admission that carries no rejection reason.
func Allow() Admission { return Admission{Allowed: true} }

// Reject builds a rejection with the given reason.
func Reject(reason RejectReason) Admission {
	return Admission{Allowed: false, Reason: reason}
}
