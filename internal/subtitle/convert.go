package subtitle

import (
	"fmt"
	"io"
	"time"
)

// ConvertOptions adjust a conversion pass.
type ConvertOptions struct {
	// Delta shifts every cue's start and end, clamping at zero.
	Delta time.Duration
	// Strict aborts on the first malformed block instead of skipping it.
	Strict bool
}

// Result reports what a conversion pass did.
type Result struct {
	Written int
	Skipped int
}

// NewParser returns a parser for the given format over r.
func NewParser(format Format, r io.Reader) (Parser, error) {
	switch format {
	case FormatSRT:
		return NewSRTParser(r), nil
	case FormatVTT:
		return NewVTTParser(r), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Convert reads cues from r in the input format, shifts them by delta
// and writes them to w in the output format. The pipeline is one-pass:
// each cue is written as soon as it is parsed, so memory stays bounded
// by a single cue. It returns the number of cues written.
func Convert(
	r io.Reader,
	in, out Format,
	delta time.Duration,
	w io.Writer,
) (int, error) {
	res, err := ConvertWith(r, in, out, ConvertOptions{Delta: delta}, w)
	return res.Written, err
}

// ConvertWith is Convert with the full option set and skip reporting.
func ConvertWith(
	r io.Reader,
	in, out Format,
	opts ConvertOptions,
	w io.Writer,
) (Result, error) {
	var parser Parser
	switch in {
	case FormatSRT:
		p := NewSRTParser(r)
		p.Strict = opts.Strict
		parser = p
	case FormatVTT:
		p := NewVTTParser(r)
		p.Strict = opts.Strict
		parser = p
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownFormat, in)
	}

	writer, err := NewWriter(out, w)
	if err != nil {
		return Result{}, err
	}

	n, err := Copy(writer, parser, opts.Delta)
	return Result{Written: n, Skipped: parser.Skipped()}, err
}

// Copy pumps cues from parser to writer one at a time, shifting each by
// delta. It returns the number of cues written; an error from either
// side stops the pipeline.
func Copy(w Writer, p Parser, delta time.Duration) (int, error) {
	for {
		cue, err := p.Next()
		if err == io.EOF {
			return w.Count(), nil
		}
		if err != nil {
			return w.Count(), err
		}

		cue.Shift(delta)
		if err := w.WriteCue(cue); err != nil {
			return w.Count(), err
		}
	}
}
