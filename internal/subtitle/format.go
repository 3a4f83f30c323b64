package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseFormat maps a CLI format name to a Format. Both "vtt" and
// "webvtt" select WebVTT.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "srt":
		return FormatSRT, nil
	case "vtt", "webvtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the subtitle format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT, nil
	case ".vtt", ".webvtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf(
			"%w: cannot infer from extension of %q",
			ErrUnknownFormat,
			path,
		)
	}
}

// Opposite returns the counterpart format, used as the output default
// when nothing else selects one.
func (f Format) Opposite() Format {
	if f == FormatSRT {
		return FormatVTT
	}
	return FormatSRT
}
