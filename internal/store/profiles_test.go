package store

import (
	"testing"
	"time"

	"github.com/zetaframe/pipeline/internal/model"
	"github.com/zetaframe/pipeline/pkg/digest"
)

func profileWith(kbps, keyframe, codec int) model.CompressionProfile {
	return model.CompressionProfile{
		Key:              digest.ProfileKey(kbps, keyframe, codec),
		MaxBitrateKbps:   kbps,
		KeyframeInterval: keyframe,
		CodecID:          codec,
		State:            model.ProfileActive,
		CreatedAt:        time.Now(),
	}
}

func TestProfileStore_AddAndGet(t *testing.T) {
	s := NewProfileStore(8)
	p := profileWith(4800, 48, model.CodecH265)

	if !s.Add(p) {
		t.Fatal("first add rejected")
	}
	got, ok := s.Get(p.Key)
	if !ok {
		t.Fatal("stored profile not found")
	}
	if got.MaxBitrateKbps != 4800 || got.KeyframeInterval != 48 || got.CodecID != model.CodecH265 {
		t.Errorf("stored fields mangled: %+v", got)
	}
	if !got.Active() {
		t.Error("fresh profile not active")
	}
}

func TestProfileStore_DuplicateAddFails(t *testing.T) {
	s := NewProfileStore(8)
	p := profileWith(4800, 48, model.CodecH265)

	if !s.Add(p) {
		t.Fatal("first add rejected")
	}
	if s.Add(p) {
		t.Error("duplicate key accepted")
	}
	if got := s.Len(); got != 1 {
		t.Errorf("store size changed by rejected add: %d", got)
	}
}

func TestProfileStore_CapacityBound(t *testing.T) {
	s := NewProfileStore(2)

	if !s.Add(profileWith(400, 48, 1)) || !s.Add(profileWith(800, 48, 1)) {
		t.Fatal("adds under capacity rejected")
	}
	if s.Add(profileWith(1200, 48, 1)) {
		t.Error("add over capacity accepted")
	}
	if got := s.Len(); got != 2 {
		t.Errorf("expected 2 profiles, got %d", got)
	}
}

func TestProfileStore_DeactivateOneWay(t *testing.T) {
	s := NewProfileStore(8)
	p := profileWith(4800, 48, model.CodecH265)
	s.Add(p)

	if !s.Deactivate(p.Key) {
		t.Fatal("first deactivate failed")
	}
	if s.Deactivate(p.Key) {
		t.Error("second deactivate succeeded")
	}
	got, ok := s.Get(p.Key)
	if !ok {
		t.Fatal("deactivated profile physically removed")
	}
	if got.Active() {
		t.Error("profile still active after deactivate")
	}
}

func TestProfileStore_DeactivateUnknownKey(t *testing.T) {
	s := NewProfileStore(8)
	if s.Deactivate("no-such-key") {
		t.Error("deactivating an absent key succeeded")
	}
}

func TestProfileStore_ActiveFiltering(t *testing.T) {
	s := NewProfileStore(8)
	a := profileWith(400, 48, 1)
	b := profileWith(800, 48, 1)
	c := profileWith(1200, 48, 1)
	s.Add(a)
	s.Add(b)
	s.Add(c)
	s.Deactivate(b.Key)

	if got := s.ActiveCount(); got != 2 {
		t.Errorf("expected 2 active, got %d", got)
	}
	active := s.ListActive()
	if len(active) != 2 {
		t.Fatalf("expected 2 listed, got %d", len(active))
	}
	if active[0].Key != a.Key || active[1].Key != c.Key {
		t.Errorf("expected insertion order [%s %s], got [%s %s]",
			a.Key[:8], c.Key[:8], active[0].Key[:8], active[1].Key[:8])
	}
}
