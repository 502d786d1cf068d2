package registry

import (
	"iter"
	"sync"

	"github.com/zetaframe/pipeline/internal/model"
)

// TierManager holds the ordered bitrate ladder. Indexes are positional
// and must stay within [0, maxTiers); bitrates within
// [MinBitrateKbps, MaxBitrateKbps].
type TierManager struct {
	mu       sync.RWMutex
	maxTiers int
	bitrates []int
}

// NewTierManager builds a ladder from the given defaults, truncated to
// maxTiers entries.
func NewTierManager(maxTiers int, ladder []int) *TierManager {
	if len(ladder) > maxTiers {
		ladder = ladder[:maxTiers]
	}
	bitrates := make([]int, len(ladder))
	copy(bitrates, ladder)
	return &TierManager{maxTiers: maxTiers, bitrates: bitrates}
}

// TierCount returns the number of populated tiers.
func (t *TierManager) TierCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.bitrates)
}

// BitrateForTier returns the kbps value at index, or 0 when index is out
// of range. Callers must treat 0 as "invalid tier".
func (t *TierManager) BitrateForTier(index int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if index < 0 || index >= len(t.bitrates) {
		return 0
	}
	return t.bitrates[index]
}

// SetTierBitrate sets the bitrate at index, extending the ladder with
// floor-value placeholders if index is past the current end. Returns
// false when index is outside [0, maxTiers) or kbps is outside the
// accepted bitrate bounds.
func (t *TierManager) SetTierBitrate(index, kbps int) bool {
	if index < 0 || index >= t.maxTiers {
		return false
	}
	if kbps < model.MinBitrateKbps || kbps > model.MaxBitrateKbps {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for len(t.bitrates) <= index {
		t.bitrates = append(t.bitrates, model.MinBitrateKbps)
	}
	t.bitrates[index] = kbps
	return true
}

// IterTiers yields (index, kbps) pairs in index order. The sequence is
// restartable; it snapshots the ladder so mutation during iteration is
// safe.
func (t *TierManager) IterTiers() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		t.mu.RLock()
		snapshot := make([]int, len(t.bitrates))
		copy(snapshot, t.bitrates)
		t.mu.RUnlock()
		for i, kbps := range snapshot {
			if !yield(i, kbps) {
				return
			}
		}
	}
}

// ListTiers returns the ladder as boundary views, index order.
func (t *TierManager) ListTiers() []model.TierView {
	out := make([]model.TierView, 0, t.TierCount())
	for i, kbps := range t.IterTiers() {
		out = append(out, model.TierView{Index: i, BitrateKbps: kbps})
	}
	return out
}
