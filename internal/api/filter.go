package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"word-finder/internal/constraint"
	"word-finder/internal/metrics"
)

const maxRequestBody = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// PositionedLetter pins a letter to a 0-based position.
type PositionedLetter struct {
	Letter   string `json:"letter" validate:"len=1"`
	Position *int   `json:"position" validate:"required"`
}

// FilterRequest is the body of POST /filter. Every list may be omitted.
type FilterRequest struct {
	WordLength        int                `json:"word_length" validate:"gt=0"`
	PositionedLetters []PositionedLetter `json:"positioned_letters" validate:"dive"`
	RequiredLetters   []string           `json:"required_letters" validate:"dive,len=1"`
	ExcludedLetters   []string           `json:"excluded_letters" validate:"dive,len=1"`
	FoundLetterGroups [][]string         `json:"found_letter_groups" validate:"dive,dive,len=1"`
}

// FilterResponse carries the exact match count and at most MaxResults
// matches, in dictionary order.
type FilterResponse struct {
	Total   int      `json:"total"`
	Matches []string `json:"matches"`
}

// Validate checks the request shape.
func (r FilterRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return describeValidation(err)
	}
	return nil
}

// ConstraintSet converts a validated request into the matcher's input.
func (r FilterRequest) ConstraintSet() (constraint.Set, error) {
	set := constraint.Set{
		WordLength: r.WordLength,
		Required:   letters(r.RequiredLetters),
		Excluded:   letters(r.ExcludedLetters),
	}
	for _, p := range r.PositionedLetters {
		set.Positioned = append(set.Positioned, constraint.Positioned{
			Position: *p.Position,
			Letter:   letter(p.Letter),
		})
	}
	for _, g := range r.FoundLetterGroups {
		set.FoundGroups = append(set.FoundGroups, letters(g))
	}
	if err := set.Validate(); err != nil {
		return constraint.Set{}, err
	}
	return set, nil
}

// Filter handles POST /filter.
func (s *Server) Filter(w http.ResponseWriter, r *http.Request) {
	if !s.available(w) {
		metrics.QueriesTotal.WithLabelValues(metrics.OutcomeUnavailable).Inc()
		return
	}

	set, err := decodeFilterRequest(w, r)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	result := s.scanner.Filter(s.store, set)
	elapsed := time.Since(start)

	metrics.QueriesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.ScanDuration.Observe(elapsed.Seconds())
	metrics.MatchCount.Observe(float64(result.Total))

	s.logger.Debug("filter query",
		"request_id", RequestIDFromContext(r.Context()),
		"word_length", set.WordLength,
		"matches", result.Total,
		"elapsed", elapsed)

	writeJSON(w, http.StatusOK, FilterResponse{
		Total:   result.Total,
		Matches: result.Sample(s.maxResults),
	})
}

func decodeFilterRequest(w http.ResponseWriter, r *http.Request) (constraint.Set, error) {
	var req FilterRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		return constraint.Set{}, describeDecode(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return constraint.Set{}, errors.New("invalid request body: unexpected data after JSON object")
	}
	if err := req.Validate(); err != nil {
		return constraint.Set{}, err
	}
	return req.ConstraintSet()
}

func describeDecode(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Errorf("invalid request body: %s must be %s", typeErr.Field, expectedShape(typeErr.Field))
	}
	if errors.Is(err, io.EOF) {
		return errors.New("invalid request body: empty body")
	}
	return fmt.Errorf("invalid request body: %w", err)
}

func expectedShape(field string) string {
	top, _, _ := strings.Cut(field, ".")
	switch top {
	case "word_length":
		return "a positive integer"
	case "positioned_letters":
		return "a list of {letter, position} objects"
	case "found_letter_groups":
		return "a list of lists of letters"
	case "required_letters", "excluded_letters":
		return "a list of letters"
	default:
		return "well-formed"
	}
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "FilterRequest.")
		switch fe.Tag() {
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be a positive integer", field))
		case "len":
			msgs = append(msgs, fmt.Sprintf("%s must be a single letter", field))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func letters(in []string) []rune {
	if in == nil {
		return nil
	}
	out := make([]rune, len(in))
	for i, s := range in {
		out[i] = letter(s)
	}
	return out
}

func letter(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
