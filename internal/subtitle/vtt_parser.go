package subtitle

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// VTTParser produces cues from a WebVTT-formatted stream. The WEBVTT
// signature line and any header metadata up to the first blank line are
// skipped, as are NOTE and STYLE blocks. An optional cue identifier
// line before the timing line is discarded, and cue-settings text after
// the end stamp is ignored. Same skip/strict policy as the SRT parser.
type VTTParser struct {
	Strict bool

	blocks  *blockScanner
	header  bool
	skipped int
}

func NewVTTParser(r io.Reader) *VTTParser {
	return &VTTParser{blocks: newBlockScanner(r)}
}

// Next returns the next cue in document order, or io.EOF after the
// last block.
func (p *VTTParser) Next() (Cue, error) {
	for {
		lines, err := p.blocks.next()
		if err != nil {
			return Cue{}, err
		}

		if !p.header {
			p.header = true
			if strings.HasPrefix(strings.TrimSpace(lines[0]), "WEBVTT") {
				// header metadata lines run to the first blank line
				continue
			}
		}

		first := strings.TrimSpace(lines[0])
		if strings.HasPrefix(first, "NOTE") || strings.HasPrefix(first, "STYLE") {
			continue
		}

		cue, err := p.parseBlock(lines)
		if err != nil {
			if p.Strict {
				return Cue{}, err
			}
			p.skipped++
			continue
		}
		return cue, nil
	}
}

// Skipped reports how many malformed blocks were dropped so far.
func (p *VTTParser) Skipped() int {
	return p.skipped
}

func (p *VTTParser) parseBlock(lines []string) (Cue, error) {
	// optional cue identifier line, discarded: cues are renumbered on
	// output
	if !strings.Contains(lines[0], "-->") && len(lines) > 1 {
		lines = lines[1:]
	}

	startText, endText, ok := splitTimeLine(lines[0])
	if !ok {
		return Cue{}, fmt.Errorf(
			"%w: expected timing line at line %d, got %q",
			ErrMalformedCue,
			p.blocks.lineNum,
			lines[0],
		)
	}

	// cue settings may trail the end stamp
	if i := strings.IndexAny(endText, " \t"); i >= 0 {
		endText = endText[:i]
	}

	start, err := parseVTTStamp(startText)
	if err != nil {
		return Cue{}, fmt.Errorf("invalid start at line %d: %w", p.blocks.lineNum, err)
	}
	end, err := parseVTTStamp(endText)
	if err != nil {
		return Cue{}, fmt.Errorf("invalid end at line %d: %w", p.blocks.lineNum, err)
	}

	return Cue{Start: start, End: end, Lines: lines[1:]}, nil
}

// parseVTTStamp accepts both the full HH:MM:SS.mmm form and the short
// MM:SS.mmm form WebVTT allows.
func parseVTTStamp(s string) (time.Duration, error) {
	if strings.Count(s, ":") == 1 {
		s = "00:" + s
	}
	return ParseTimeCode(s, SepVTT)
}
