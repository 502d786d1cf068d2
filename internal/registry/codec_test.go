package registry

import (
	"testing"

	"github.com/zetaframe/pipeline/internal/model"
)

func TestCodecRegistry_KnownDefaults(t *testing.T) {
	r := NewCodecRegistry()

	if got := r.Name(model.CodecH264); got != "H.264/AVC" {
		t.Errorf("expected H.264/AVC, got %q", got)
	}
	if got := r.DefaultKeyframeInterval(model.CodecH265); got != 48 {
		t.Errorf("expected keyframe interval 48, got %d", got)
	}
	if got := r.MaxKbps(model.CodecAV1); got != 25000 {
		t.Errorf("expected 25000 kbps ceiling, got %d", got)
	}
}

func TestCodecRegistry_UnknownDegradesToDefaults(t *testing.T) {
	r := NewCodecRegistry()

	if got := r.Name(999); got != "unknown" {
		t.Errorf("expected \"unknown\", got %q", got)
	}
	if got := r.DefaultKeyframeInterval(999); got != model.DefaultKeyframeInterval {
		t.Errorf("expected %d, got %d", model.DefaultKeyframeInterval, got)
	}
	if got := r.MaxKbps(999); got != model.MaxBitrateKbps {
		t.Errorf("expected %d, got %d", model.MaxBitrateKbps, got)
	}
}

func TestCodecRegistry_RegisterOverwrites(t *testing.T) {
	r := NewCodecRegistry()
	before := len(r.ListCodecs())

	r.Register(model.CodecVP9, "VP9 (tuned)", 96, 16000)

	if got := r.Name(model.CodecVP9); got != "VP9 (tuned)" {
		t.Errorf("overwrite not applied, got %q", got)
	}
	if got := len(r.ListCodecs()); got != before {
		t.Errorf("overwrite changed codec count: %d -> %d", before, got)
	}
}

func TestCodecRegistry_ListInsertionOrder(t *testing.T) {
	r := NewCodecRegistry()
	r.Register(7, "ProRes", 1, 25000)

	codecs := r.ListCodecs()
	want := []int{model.CodecH264, model.CodecH265, model.CodecVP9, model.CodecAV1, 7}
	if len(codecs) != len(want) {
		t.Fatalf("expected %d codecs, got %d", len(want), len(codecs))
	}
	for i, id := range want {
		if codecs[i].ID != id {
			t.Errorf("position %d: expected id %d, got %d", i, id, codecs[i].ID)
		}
	}
}
