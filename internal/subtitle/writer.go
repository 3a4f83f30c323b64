package subtitle

import (
	"fmt"
	"io"
)

// SubRip format
type SRTWriter struct {
	w     io.Writer
	count int
}

// WebVTT format
type VTTWriter struct {
	w     io.Writer
	count int
}

// NewWriter returns a writer for the given format over w. The WebVTT
// writer emits its signature immediately, so the header is present even
// when no cue follows.
func NewWriter(format Format, w io.Writer) (Writer, error) {
	switch format {
	case FormatSRT:
		return NewSRTWriter(w), nil
	case FormatVTT:
		return NewVTTWriter(w)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func NewSRTWriter(w io.Writer) *SRTWriter {
	return &SRTWriter{w: w}
}

// WriteCue emits one SRT block: sequence number, timing line with a
// comma separator, text lines verbatim, then a blank line. A sink error
// aborts immediately; partial output may exist.
func (sw *SRTWriter) WriteCue(c Cue) error {
	if err := writeBlock(sw.w, sw.count+1, c, SepSRT); err != nil {
		return err
	}
	sw.count++
	return nil
}

// Count reports how many cues were written so far.
func (sw *SRTWriter) Count() int {
	return sw.count
}

func NewVTTWriter(w io.Writer) (*VTTWriter, error) {
	if _, err := fmt.Fprintf(w, "WEBVTT\n\n"); err != nil {
		return nil, fmt.Errorf("writing WEBVTT header: %w", err)
	}
	return &VTTWriter{w: w}, nil
}

// WriteCue emits one WebVTT block, identical in shape to an SRT block
// but with a period separator.
func (vw *VTTWriter) WriteCue(c Cue) error {
	if err := writeBlock(vw.w, vw.count+1, c, SepVTT); err != nil {
		return err
	}
	vw.count++
	return nil
}

// Count reports how many cues were written so far.
func (vw *VTTWriter) Count() int {
	return vw.count
}

func writeBlock(w io.Writer, index int, c Cue, sep byte) error {
	_, err := fmt.Fprintf(w, "%d\n%s --> %s\n",
		index,
		FormatTimeCode(c.Start, sep),
		FormatTimeCode(c.End, sep),
	)
	if err != nil {
		return fmt.Errorf("writing cue %d: %w", index, err)
	}
	for _, line := range c.Lines {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return fmt.Errorf("writing cue %d: %w", index, err)
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return fmt.Errorf("writing cue %d: %w", index, err)
	}
	return nil
}
