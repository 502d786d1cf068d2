package digest

import "testing"

func TestContent_Deterministic(t *testing.T) {
	a := Content([]byte("same bytes"))
	b := Content([]byte("same bytes"))
	if a != b {
		t.Errorf("identical inputs hashed differently: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestContentFromString_MatchesBytes(t *testing.T) {
	if ContentFromString("asset-42") != Content([]byte("asset-42")) {
		t.Error("string and byte hashing disagree for the same input")
	}
}

func TestProfileKey_ParameterIdentity(t *testing.T) {
	a := ProfileKey(4800, 48, 2)
	b := ProfileKey(4800, 48, 2)
	if a != b {
		t.Error("identical parameters produced different keys")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}

	variants := []string{
		ProfileKey(4801, 48, 2),
		ProfileKey(4800, 47, 2),
		ProfileKey(4800, 48, 3),
	}
	for i, v := range variants {
		if v == a {
			t.Errorf("variant %d collided with the base key", i)
		}
	}
}
