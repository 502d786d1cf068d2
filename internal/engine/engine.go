// Package engine composes the codec table, the bitrate ladder, the
// profile store, and the job admission queue behind one façade. The
// engine owns no state of its own: it validates boundary requests,
// derives profile keys, delegates, and maps component outcomes onto the
// error taxonomy.
package engine

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/zetaframe/pipeline/internal/config"
	"github.com/zetaframe/pipeline/internal/model"
	"github.com/zetaframe/pipeline/internal/queue"
	"github.com/zetaframe/pipeline/internal/registry"
	"github.com/zetaframe/pipeline/internal/store"
	"github.com/zetaframe/pipeline/pkg/digest"
)

type Engine struct {
	codecs    *registry.CodecRegistry
	tiers     *registry.TierManager
	profiles  *store.ProfileStore
	jobs      *queue.JobQueue
	validator *validator.Validate
	now       func() time.Time
}

// New builds an engine from configuration. The zero clock is time.Now.
func New(cfg *config.Config, v *validator.Validate) *Engine {
	return NewWithClock(cfg, v, time.Now)
}

// NewWithClock is New with an injected clock, shared by the engine and
// the job queue so cooldown arithmetic and record timestamps agree.
func NewWithClock(cfg *config.Config, v *validator.Validate, now func() time.Time) *Engine {
	return &Engine{
		codecs:   registry.NewCodecRegistry(),
		tiers:    registry.NewTierManager(cfg.Engine.MaxTiers, cfg.Tiers.DefaultLadder),
		profiles: store.NewProfileStore(cfg.Engine.MaxProfiles),
		jobs: queue.NewJobQueue(queue.Options{
			Cooldown:     time.Duration(cfg.Engine.CooldownSeconds) * time.Second,
			MaxTiers:     cfg.Engine.MaxTiers,
			SlotsPerTier: cfg.Engine.JobSlotsPerTier,
			Now:          now,
		}),
		validator: v,
		now:       now,
	}
}

// RegisterProfile derives the profile key from the encoding parameters
// and stores the profile. Registering the same parameters twice fails
// with ErrProfileExists; the first record stands.
func (e *Engine) RegisterProfile(req *model.RegisterProfileRequest) (*model.RegisterProfileResponse, error) {
	if err := e.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid profile request: %w", err)
	}

	key := digest.ProfileKey(req.MaxBitrateKbps, req.KeyframeInterval, req.CodecID)
	if _, exists := e.profiles.Get(key); exists {
		return nil, fmt.Errorf("profile %s: %w", key, ErrProfileExists)
	}

	profile := model.CompressionProfile{
		Key:              key,
		MaxBitrateKbps:   req.MaxBitrateKbps,
		KeyframeInterval: req.KeyframeInterval,
		CodecID:          req.CodecID,
		State:            model.ProfileActive,
		CreatedAt:        e.now(),
	}
	if !e.profiles.Add(profile) {
		return nil, fmt.Errorf("profile %s: %w", key, ErrProfileStoreFull)
	}

	return &model.RegisterProfileResponse{
		ProfileKey: key,
		CreatedAt:  profile.CreatedAt,
	}, nil
}

// Profile returns the stored profile for a key.
func (e *Engine) Profile(key string) (*model.CompressionProfile, error) {
	p, ok := e.profiles.Get(key)
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", key, ErrProfileNotFound)
	}
	return &p, nil
}

// DeactivateProfile soft-deletes a profile. The second call for the
// same key fails with ErrProfileInactive.
func (e *Engine) DeactivateProfile(key string) error {
	p, ok := e.profiles.Get(key)
	if !ok {
		return fmt.Errorf("profile %s: %w", key, ErrProfileNotFound)
	}
	if !p.Active() {
		return fmt.Errorf("profile %s: %w", key, ErrProfileInactive)
	}
	if !e.profiles.Deactivate(key) {
		return fmt.Errorf("profile %s: %w", key, ErrProfileInactive)
	}
	return nil
}

// ActiveProfiles lists active profiles in registration order.
func (e *Engine) ActiveProfiles() []model.CompressionProfile {
	return e.profiles.ListActive()
}

// ActiveProfileCount returns the number of active profiles.
func (e *Engine) ActiveProfileCount() int {
	return e.profiles.ActiveCount()
}

// CanSchedule runs the admission check without scheduling anything.
func (e *Engine) CanSchedule(callerID, contentHash string) model.Admission {
	return e.jobs.CanSchedule(callerID, contentHash)
}

// ScheduleJob admits a new encode job. Rejections surface as sentinel
// errors carrying the admission reason.
func (e *Engine) ScheduleJob(req *model.ScheduleJobRequest) (*model.EncodeJob, error) {
	if err := e.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid schedule request: %w", err)
	}
	job, adm := e.jobs.Schedule(req.ContentHash, req.TierIndex, req.CallerID)
	if !adm.Allowed {
		return nil, fmt.Errorf("schedule rejected (%s): %w", adm.Reason, admissionError(adm.Reason))
	}
	return job, nil
}

// FulfillJob marks a job's encode work complete, exactly once.
func (e *Engine) FulfillJob(jobID string) error {
	job, ok := e.jobs.Job(jobID)
	if !ok {
		return fmt.Errorf("job %s: %w", jobID, ErrJobNotFound)
	}
	if job.Fulfilled() {
		return fmt.Errorf("job %s: %w", jobID, ErrJobAlreadyFulfilled)
	}
	if !e.jobs.Fulfill(jobID) {
		return fmt.Errorf("job %s: %w", jobID, ErrJobAlreadyFulfilled)
	}
	return nil
}

// Job returns the stored job record.
func (e *Engine) Job(jobID string) (*model.EncodeJob, error) {
	job, ok := e.jobs.Job(jobID)
	if !ok {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrJobNotFound)
	}
	return &job, nil
}

// IsContentProcessed reports whether the hash was ever fulfilled.
func (e *Engine) IsContentProcessed(contentHash string) bool {
	return e.jobs.IsContentProcessed(contentHash)
}

// SetTierBitrate updates one rung of the ladder.
func (e *Engine) SetTierBitrate(index, kbps int) error {
	if kbps < model.MinBitrateKbps || kbps > model.MaxBitrateKbps {
		return fmt.Errorf("tier %d: %d kbps: %w", index, kbps, ErrBitrateOutOfRange)
	}
	if !e.tiers.SetTierBitrate(index, kbps) {
		return fmt.Errorf("tier %d: %w", index, ErrTierOutOfRange)
	}
	return nil
}

// Tiers lists the bitrate ladder in index order.
func (e *Engine) Tiers() []model.TierView {
	return e.tiers.ListTiers()
}

// Codecs lists the codec table in insertion order.
func (e *Engine) Codecs() []model.CodecView {
	return e.codecs.ListCodecs()
}

// RegisterCodec inserts or overwrites a codec table entry.
func (e *Engine) RegisterCodec(codecID int, name string, defaultKeyframe, maxKbps int) {
	e.codecs.Register(codecID, name, defaultKeyframe, maxKbps)
}

// CodecName resolves a codec id to its display name, "unknown" for ids
// with no entry.
func (e *Engine) CodecName(codecID int) string {
	return e.codecs.Name(codecID)
}
