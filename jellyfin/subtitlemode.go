package jellyfin

import (
	"encoding/json"
	"fmt"
)

// SubtitleMode selects when subtitles are shown during playback.
type SubtitleMode string

const (
	SubtitleModeDefault    SubtitleMode = "Default"
	SubtitleModeAlways     SubtitleMode = "Always"
	SubtitleModeOnlyForced SubtitleMode = "OnlyForced"
	SubtitleModeNone       SubtitleMode = "None"
	SubtitleModeSmart      SubtitleMode = "Smart"
)

func (m SubtitleMode) valid() bool {
	switch m {
	case SubtitleModeDefault, SubtitleModeAlways, SubtitleModeOnlyForced, SubtitleModeNone, SubtitleModeSmart:
		return true
	}
	return false
}

// MarshalJSON rejects values outside the server's subtitle mode set. The zero
// value serializes as Default so freshly built configurations stay valid.
func (m SubtitleMode) MarshalJSON() ([]byte, error) {
	if m == "" {
		m = SubtitleModeDefault
	}
	if !m.valid() {
		return nil, fmt.Errorf("invalid subtitle mode %q", string(m))
	}
	return json.Marshal(string(m))
}

// UnmarshalJSON rejects values outside the server's subtitle mode set.
func (m *SubtitleMode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	mode := SubtitleMode(raw)
	if !mode.valid() {
		return fmt.Errorf("invalid subtitle mode %q", raw)
	}
	*m = mode
	return nil
}
