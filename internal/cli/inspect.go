package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"srt2webvtt/internal/subtitle"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Show statistics for a subtitle file",
	Long: `Parse a subtitle file and print cue statistics: cue count, skipped
malformed blocks, text line count and the covered time span.

Examples:
  srt2webvtt inspect movie.srt
  srt2webvtt inspect movie.vtt --input-format webvtt`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		String("input-format", "", "Input format (srt, webvtt); inferred from the file extension when omitted")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	formatStr, _ := cmd.Flags().GetString("input-format")
	format, err := resolveInputFormat(formatStr, path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	parser, err := subtitle.NewParser(format, f)
	if err != nil {
		return err
	}

	var (
		cues      int
		textLines int
		first     subtitle.Cue
		last      subtitle.Cue
	)
	for {
		cue, err := parser.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if cues == 0 {
			first = cue
		}
		last = cue
		cues++
		textLines += len(cue.Lines)
	}

	rows := [][]string{
		{"Format", string(format)},
		{"Cues", strconv.Itoa(cues)},
		{"Skipped blocks", strconv.Itoa(parser.Skipped())},
		{"Text lines", strconv.Itoa(textLines)},
	}
	if cues > 0 {
		rows = append(rows,
			[]string{"First cue starts", subtitle.FormatTimeCode(first.Start, subtitle.SepVTT)},
			[]string{"Last cue ends", subtitle.FormatTimeCode(last.End, subtitle.SepVTT)},
		)
	}

	fmt.Println(renderTable([]string{"Field", "Value"}, rows))
	return nil
}
