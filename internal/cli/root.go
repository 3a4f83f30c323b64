package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"srt2webvtt/internal/config"
	"srt2webvtt/internal/logging"
	"srt2webvtt/internal/subtitle"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srt2webvtt [input [output]]",
	Short: "Convert subtitle files between SRT and WebVTT",
	Long: `srt2webvtt converts subtitle files between the SRT and WebVTT formats,
optionally shifting every cue by a fixed delta.

Formats are inferred from file extensions when not given explicitly;
when neither side names a format, the output defaults to the opposite
of the input. A missing path or "-" means standard input or output.

Examples:
  srt2webvtt movie.srt movie.vtt
  srt2webvtt --delta -2000 movie.srt
  cat movie.srt | srt2webvtt --output-format webvtt > movie.vtt`,
	Args: cobra.MaximumNArgs(2),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE: runConvert,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		String("config", "", "Config file path (default: <user config dir>/srt2webvtt/config.toml)")

	rootCmd.Flags().
		Int64P("delta", "d", 0, "Shift all cue timestamps by this many milliseconds (may be negative)")
	rootCmd.Flags().
		String("input-format", "", "Input format (srt, webvtt); inferred from the input extension when omitted")
	rootCmd.Flags().
		String("output-format", "", "Output format (srt, webvtt); inferred from the output extension when omitted")
	rootCmd.Flags().
		Bool("strict", false, "Abort on the first malformed cue block instead of skipping it")
}

func runConvert(cmd *cobra.Command, args []string) error {
	deltaMS, _ := cmd.Flags().GetInt64("delta")
	inputFormatStr, _ := cmd.Flags().GetString("input-format")
	outputFormatStr, _ := cmd.Flags().GetString("output-format")
	strict, _ := cmd.Flags().GetBool("strict")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("delta") {
		deltaMS = cfg.DefaultDeltaMS
	}
	if !cmd.Flags().Changed("strict") && cfg.Strict {
		strict = true
	}

	var inputPath, outputPath string
	if len(args) > 0 {
		inputPath = args[0]
	}
	if len(args) > 1 {
		outputPath = args[1]
	}

	inFormat, err := resolveInputFormat(inputFormatStr, inputPath)
	if err != nil {
		return err
	}
	outFormat, err := resolveOutputFormat(
		outputFormatStr,
		outputPath,
		cfg.DefaultOutputFormat,
		inFormat,
	)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if isFilePath(inputPath) {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}

	out := os.Stdout
	var outFile *os.File
	if isFilePath(outputPath) {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		out = f
		outFile = f
	}

	logger.Infow("Converting subtitles",
		"input", displayPath(inputPath),
		"output", displayPath(outputPath),
		"input_format", inFormat,
		"output_format", outFormat,
		"delta_ms", deltaMS,
		"strict", strict,
	)

	buffered := bufio.NewWriter(out)
	opts := subtitle.ConvertOptions{
		Delta:  time.Duration(deltaMS) * time.Millisecond,
		Strict: strict,
	}
	res, err := subtitle.ConvertWith(in, inFormat, outFormat, opts, buffered)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("closing output: %w", err)
		}
	}

	if res.Skipped > 0 {
		logger.Warnw("Skipped malformed cue blocks",
			"skipped", res.Skipped,
			"written", res.Written,
		)
	}
	logger.Infow("Conversion complete", "cues", res.Written)

	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			// no resolvable config dir on this system, run on defaults
			return config.Config{}, nil
		}
		path = defaultPath
	}
	return config.Load(path)
}

// resolveInputFormat picks the input format: explicit flag first, then
// the input file's extension, then SRT for piped input.
func resolveInputFormat(flag, path string) (subtitle.Format, error) {
	if flag != "" {
		return subtitle.ParseFormat(flag)
	}
	if isFilePath(path) {
		return subtitle.FormatFromPath(path)
	}
	return subtitle.FormatSRT, nil
}

// resolveOutputFormat picks the output format: explicit flag, then the
// output file's extension, then the configured default, then the
// opposite of the input format.
func resolveOutputFormat(
	flag, path, configured string,
	in subtitle.Format,
) (subtitle.Format, error) {
	if flag != "" {
		return subtitle.ParseFormat(flag)
	}
	if isFilePath(path) {
		if f, err := subtitle.FormatFromPath(path); err == nil {
			return f, nil
		}
	}
	if configured != "" {
		return subtitle.ParseFormat(configured)
	}
	return in.Opposite(), nil
}

func isFilePath(path string) bool {
	return path != "" && path != "-"
}

func displayPath(path string) string {
	if !isFilePath(path) {
		return "stdio"
	}
	return path
}
