package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// blockScanner splits a subtitle stream into blocks of consecutive
// non-blank lines. Blocks are separated by one or more blank lines and
// the final block does not need a trailing blank line.
type blockScanner struct {
	scanner *bufio.Scanner
	lineNum int
	err     error
}

func newBlockScanner(r io.Reader) *blockScanner {
	return &blockScanner{scanner: bufio.NewScanner(r)}
}

// next returns the lines of the next block, or io.EOF once the input is
// exhausted. The byte-order mark on the first line is stripped.
func (b *blockScanner) next() ([]string, error) {
	if b.err != nil {
		return nil, b.err
	}

	var lines []string
	for b.scanner.Scan() {
		line := b.scanner.Text()
		b.lineNum++

		if b.lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			if len(lines) == 0 {
				continue
			}
			return lines, nil
		}
		lines = append(lines, line)
	}

	if err := b.scanner.Err(); err != nil {
		b.err = fmt.Errorf("reading input: %w", err)
		return nil, b.err
	}

	b.err = io.EOF
	if len(lines) > 0 {
		return lines, nil
	}
	return nil, io.EOF
}

// splitTimeLine splits an arrow-separated cue timing line into its start
// and end halves.
func splitTimeLine(line string) (start, end string, ok bool) {
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
