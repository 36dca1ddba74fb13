package jellyfin

import (
	"encoding/json"
	"testing"
)

func TestSubtitleModeRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	var mode SubtitleMode
	if err := json.Unmarshal([]byte(`"Sometimes"`), &mode); err == nil {
		t.Fatal("expected unknown subtitle mode to be rejected")
	}
	if err := json.Unmarshal([]byte(`"OnlyForced"`), &mode); err != nil {
		t.Fatalf("unmarshal valid mode: %v", err)
	}
	if mode != SubtitleModeOnlyForced {
		t.Fatalf("unexpected mode %q", mode)
	}
}

func TestSubtitleModeZeroValueMarshalsAsDefault(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(SubtitleMode(""))
	if err != nil {
		t.Fatalf("marshal zero value: %v", err)
	}
	if string(data) != `"Default"` {
		t.Fatalf("unexpected encoding %s", data)
	}

	if _, err := json.Marshal(SubtitleMode("Sometimes")); err == nil {
		t.Fatal("expected invalid mode to fail marshaling")
	}
}
