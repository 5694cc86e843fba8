package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"word-finder/internal/wordprep"
)

// NewPrepareCommand creates the prepare command.
func NewPrepareCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		inputDir   string
		outputFile string
		opts       wordprep.Options
	)

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Build a word list from a directory of raw lists",
		Long: `Merge every file in the input directory into one word list for the
service: words are trimmed, lower-cased, filtered, deduplicated and sorted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(inputDir); os.IsNotExist(err) {
				return fmt.Errorf("input directory '%s' does not exist", inputDir)
			}
			return runPrepare(cmd, inputDir, outputFile, opts)
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "", "directory containing word list files (required)")
	cmd.Flags().StringVar(&outputFile, "output", "words_alpha.txt", "output file path")
	cmd.Flags().IntVar(&opts.MinLength, "min-length", 0, "drop words shorter than this")
	cmd.Flags().IntVar(&opts.MaxLength, "max-length", 0, "drop words longer than this")
	cmd.Flags().BoolVar(&opts.LettersOnly, "letters-only", true, "drop words containing non-letters")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "parallel workers (0 = number of CPUs)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runPrepare(cmd *cobra.Command, inputDir, outputFile string, opts wordprep.Options) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Input directory: %s\n", inputDir)
	fmt.Fprintf(out, "Output file: %s\n\n", outputFile)

	programStart := time.Now()

	// Progress callback that shows elapsed time
	progressCallback := func(msg string) {
		fmt.Fprintf(out, "[%s] %s\n", formatElapsed(time.Since(programStart)), msg)
	}

	words, err := wordprep.Prepare(inputDir, opts, progressCallback)
	if err != nil {
		return err
	}

	progressCallback("Writing output file...")
	if err := wordprep.WriteTextFile(words, outputFile); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nWords written: %d\n", len(words))
	fmt.Fprintf(out, "Processing time: %s\n", time.Since(programStart).Round(time.Millisecond))
	return nil
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
