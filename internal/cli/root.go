// Package cli implements the wordfinder command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"word-finder/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the wordfinder CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wordfinder",
		Short: "Find dictionary words matching letter constraints",
		Long: `wordfinder answers "which words of a fixed length have these letters at
these positions, contain these letters and avoid those" against a word list
loaded into memory. Use it as an HTTP service or for one-off queries.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewPrepareCommand(opts))

	return cmd
}

// loadConfig resolves the configuration file and environment, then lets
// the words flag of cmd win when it was given explicitly.
func loadConfig(opts *RootOptions, cmd *cobra.Command, wordsPath string) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("words") {
		cfg.WordsPath = wordsPath
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}
