package engine

import (
	"errors"

	"github.com/zetaframe/pipeline/internal/model"
)

// Failure categories crossing the engine boundary. All of them are
// recoverable by the caller; none is fatal.
var (
	ErrProfileExists       = errors.New("profile already registered")
	ErrProfileStoreFull    = errors.New("profile store at capacity")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileInactive     = errors.New("profile already inactive")
	ErrJobNotFound         = errors.New("job not found")
	ErrJobAlreadyFulfilled = errors.New("job already fulfilled")
	ErrTierOutOfRange      = errors.New("tier index out of range")
	ErrBitrateOutOfRange   = errors.New("bitrate out of range")
	ErrCooldownActive      = errors.New("caller cooldown active")
	ErrContentProcessed    = errors.New("content already processed")
	ErrTierCapacity        = errors.New("tier capacity reached")
)

// admissionError maps a queue rejection reason onto the error taxonomy.
func admissionError(reason model.RejectReason) error {
	switch reason {
	case model.ReasonContentProcessed:
		return ErrContentProcessed
	case model.ReasonCooldownActive:
		return ErrCooldownActive
	case model.ReasonTierOutOfRange:
		return ErrTierOutOfRange
	case model.ReasonTierCapacityReached:
		return ErrTierCapacity
	}
	return nil
}
