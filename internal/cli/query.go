package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"word-finder/internal/api"
	"word-finder/internal/constraint"
	"word-finder/internal/matcher"
	"word-finder/internal/wordstore"
)

// QueryFlags holds the constraint flags of the query command.
type QueryFlags struct {
	WordsPath string
	Length    int
	At        []string // "position=letter"
	Require   string
	Exclude   string
	Groups    []string
	Limit     int
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &QueryFlags{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run one filter query against a word list",
		Long: `Filter the word list with the given constraints and print the matches.

Examples:
  wordfinder query --length 5 --at 0=a --require g
  wordfinder query --length 5 --exclude rst --group ap --group pl --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, flags, cmd)
		},
	}

	cmd.Flags().StringVar(&flags.WordsPath, "words", "words_alpha.txt", "path to the word list")
	cmd.Flags().IntVarP(&flags.Length, "length", "n", 0, "word length (required)")
	cmd.Flags().StringArrayVar(&flags.At, "at", nil, "letter at a 0-based position, as position=letter (repeatable)")
	cmd.Flags().StringVar(&flags.Require, "require", "", "letters that must appear anywhere")
	cmd.Flags().StringVar(&flags.Exclude, "exclude", "", "letters that must not appear")
	cmd.Flags().StringArrayVar(&flags.Groups, "group", nil, "group of letters that must all appear (repeatable)")
	cmd.Flags().IntVar(&flags.Limit, "limit", -1, "maximum matches to print, negative for the configured max_results, 0 for all")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}

func runQuery(opts *RootOptions, flags *QueryFlags, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts, cmd, flags.WordsPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	set, err := flags.ConstraintSet()
	if err != nil {
		return err
	}

	store, err := wordstore.Load(cfg.WordsPath)
	if err != nil {
		return fmt.Errorf("word database is not available: %w", err)
	}
	if store.IsEmpty() {
		return errors.New("word database is not available: word list is empty")
	}

	scanner := matcher.Scanner{Workers: cfg.Scan.Workers, ChunkSize: cfg.Scan.ChunkSize}
	result := scanner.Filter(store, set)

	limit := flags.Limit
	switch {
	case limit < 0:
		limit = cfg.MaxResults
	case limit == 0:
		limit = -1
	}

	resp := api.FilterResponse{Total: result.Total, Matches: result.Sample(limit)}
	return writeQueryResult(cmd.OutOrStdout(), opts.Format, resp)
}

// ConstraintSet converts the flags into a validated constraint set.
func (f *QueryFlags) ConstraintSet() (constraint.Set, error) {
	set := constraint.Set{
		WordLength: f.Length,
		Required:   []rune(f.Require),
		Excluded:   []rune(f.Exclude),
	}

	for _, at := range f.At {
		p, err := parsePositioned(at)
		if err != nil {
			return constraint.Set{}, err
		}
		set.Positioned = append(set.Positioned, p)
	}

	for _, g := range f.Groups {
		set.FoundGroups = append(set.FoundGroups, []rune(g))
	}

	if err := set.Validate(); err != nil {
		return constraint.Set{}, err
	}
	return set, nil
}

func parsePositioned(s string) (constraint.Positioned, error) {
	pos, letter, ok := strings.Cut(s, "=")
	if !ok {
		return constraint.Positioned{}, fmt.Errorf("invalid --at %q: expected position=letter", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(pos))
	if err != nil {
		return constraint.Positioned{}, fmt.Errorf("invalid --at %q: position must be an integer", s)
	}
	if utf8.RuneCountInString(letter) != 1 {
		return constraint.Positioned{}, fmt.Errorf("invalid --at %q: expected a single letter", s)
	}
	r, _ := utf8.DecodeRuneInString(letter)
	return constraint.Positioned{Position: n, Letter: r}, nil
}

func writeQueryResult(w io.Writer, format string, resp api.FilterResponse) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if _, err := fmt.Fprintf(w, "total: %d\n", resp.Total); err != nil {
		return err
	}
	for _, m := range resp.Matches {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	if hidden := resp.Total - len(resp.Matches); hidden > 0 {
		if _, err := fmt.Fprintf(w, "... and %d more\n", hidden); err != nil {
			return err
		}
	}
	return nil
}
