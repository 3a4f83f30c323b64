package subtitle

import (
	"errors"
	"time"
)

// represents a single subtitle cue: a time interval plus its text lines
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Lines []string
}

// Shift moves both endpoints by delta. A result that would fall before
// the start of the media clamps to zero.
func (c *Cue) Shift(delta time.Duration) {
	c.Start = shiftTime(c.Start, delta)
	c.End = shiftTime(c.End, delta)
}

func shiftTime(t, delta time.Duration) time.Duration {
	t += delta
	if t < 0 {
		return 0
	}
	return t
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "webvtt"
)

var (
	ErrMalformedTimeCode = errors.New("malformed time code")
	ErrMalformedCue      = errors.New("malformed cue block")
	ErrUnknownFormat     = errors.New("unknown subtitle format")
)

// Parser is the pull interface shared by both parsers. Next returns
// cues in document order and io.EOF after the last one. A parser is a
// single forward-only traversal; to start over, construct a new parser
// on the original input.
type Parser interface {
	Next() (Cue, error)
	Skipped() int
}

// Writer serializes cues one block at a time, renumbering them from 1
// by output position.
type Writer interface {
	WriteCue(c Cue) error
	Count() int
}
