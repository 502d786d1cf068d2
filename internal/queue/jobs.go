// Package queue implements the encode job admission engine: content
// dedup, per-caller cooldown, and per-tier capacity, over an append-only
// in-memory job log.
package queue

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zetaframe/pipeline/internal/model"
)

// Options configures a JobQueue. Now defaults to time.Now when nil;
// tests inject a fake clock through it.
type Options struct {
	Cooldown     time.Duration
	MaxTiers     int
	SlotsPerTier int
	Now          func() time.Time
}

// JobQueue decides which encode requests are admitted and records the
// resulting jobs. All state lives behind one mutex so the check-then-act
// sequences in Schedule and Fulfill are serialized (two callers can
// never both be admitted for the same content hash).
//
// Admission rules, in order:
//  1. content hash already fulfilled -> rejected, permanently
//  2. caller inside its cooldown window -> rejected
//  3. target tier out of slots -> rejected
//
// Only a successful Schedule advances the caller's cooldown window;
// rejected attempts leave it untouched.
type JobQueue struct {
	mu           sync.Mutex
	cooldown     time.Duration
	maxTiers     int
	slotsPerTier int
	now          func() time.Time

	jobs         map[string]*model.EncodeJob
	fulfilled    map[string]struct{}
	lastAccepted map[string]time.Time
	pendingTier  map[int]int
	seq          uint64
}

func NewJobQueue(opts Options) *JobQueue {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &JobQueue{
		cooldown:     opts.Cooldown,
		maxTiers:     opts.MaxTiers,
		slotsPerTier: opts.SlotsPerTier,
		now:          now,
		jobs:         make(map[string]*model.EncodeJob),
		fulfilled:    make(map[string]struct{}),
		lastAccepted: make(map[string]time.Time),
		pendingTier:  make(map[int]int),
	}
}

// CanSchedule runs the admission check without mutating anything.
func (q *JobQueue) CanSchedule(callerID, contentHash string) model.Admission {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.admit(callerID, contentHash)
}

// admit is the admission decision; callers hold q.mu.
func (q *JobQueue) admit(callerID, contentHash string) model.Admission {
	if _, done := q.fulfilled[contentHash]; done {
		return model.Reject(model.ReasonContentProcessed)
	}
	// Unknown callers have a zero last-accepted time, so the first
	// request always clears the cooldown.
	if q.now().Sub(q.lastAccepted[callerID]) < q.cooldown {
		return model.Reject(model.ReasonCooldownActive)
	}
	return model.Allow()
}

// Schedule admits and records a new encode job. On rejection it returns
// no job and performs no mutation; in particular the caller's cooldown
// window is advanced only by an accepted request.
func (q *JobQueue) Schedule(contentHash string, tierIndex int, callerID string) (*model.EncodeJob, model.Admission) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if adm := q.admit(callerID, contentHash); !adm.Allowed {
		return nil, adm
	}
	if tierIndex < 0 || tierIndex >= q.maxTiers {
		return nil, model.Reject(model.ReasonTierOutOfRange)
	}
	if q.slotsPerTier > 0 && q.pendingTier[tierIndex] >= q.slotsPerTier {
		return nil, model.Reject(model.ReasonTierCapacityReached)
	}

	now := q.now()
	q.seq++
	job := &model.EncodeJob{
		ID:          uuid.New().String(),
		ContentHash: contentHash,
		TierIndex:   tierIndex,
		Seq:         q.seq,
		State:       model.JobPending,
		ScheduledAt: now,
	}
	q.jobs[job.ID] = job
	q.pendingTier[tierIndex]++
	q.lastAccepted[callerID] = now

	out := *job
	return &out, model.Allow()
}

// Fulfill marks a job done, exactly once. It is the only writer of the
// fulfilled set: from here on every admission check for the job's
// content hash fails permanently. Returns false when the job is unknown
// or already fulfilled.
func (q *JobQueue) Fulfill(jobID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	job, ok := q.jobs[jobID]
	if !ok {
		return false
	}
	if !job.MarkFulfilled(q.now()) {
		return false
	}
	q.fulfilled[job.ContentHash] = struct{}{}
	q.pendingTier[job.TierIndex]--
	return true
}

// Job returns a copy of the job record.
func (q *JobQueue) Job(jobID string) (model.EncodeJob, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	job, ok := q.jobs[jobID]
	if !ok {
		return model.EncodeJob{}, false
	}
	return *job, true
}

// IsContentProcessed reports whether any job for the hash was fulfilled.
func (q *JobQueue) IsContentProcessed(contentHash string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, done := q.fulfilled[contentHash]
	return done
}

// JobCount returns the size of the append-only job log.
func (q *JobQueue) JobCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}
