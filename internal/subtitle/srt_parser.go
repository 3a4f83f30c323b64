package subtitle

import (
	"fmt"
	"io"
	"strings"
)

// SRTParser produces cues from an SRT-formatted stream one block at a
// time. Malformed blocks are skipped and counted unless Strict is set,
// in which case the first one aborts the traversal.
type SRTParser struct {
	Strict bool

	blocks  *blockScanner
	skipped int
}

func NewSRTParser(r io.Reader) *SRTParser {
	return &SRTParser{blocks: newBlockScanner(r)}
}

// Next returns the next cue in document order, or io.EOF after the
// last block.
func (p *SRTParser) Next() (Cue, error) {
	for {
		lines, err := p.blocks.next()
		if err != nil {
			return Cue{}, err
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
func (p *SRTParser) Skipped() int {
	return p.skipped
}

func (p *SRTParser) parseBlock(lines []string) (Cue, error) {
	// sequence number line, read and discarded: cues are renumbered on
	// output
	if isDigits(strings.TrimSpace(lines[0])) {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return Cue{}, fmt.Errorf(
			"%w: block ending at line %d has no timing line",
			ErrMalformedCue,
			p.blocks.lineNum,
		)
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

	start, err := ParseTimeCode(startText, SepSRT)
	if err != nil {
		return Cue{}, fmt.Errorf("invalid start at line %d: %w", p.blocks.lineNum, err)
	}
	end, err := ParseTimeCode(endText, SepSRT)
	if err != nil {
		return Cue{}, fmt.Errorf("invalid end at line %d: %w", p.blocks.lineNum, err)
	}

	return Cue{Start: start, End: end, Lines: lines[1:]}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
