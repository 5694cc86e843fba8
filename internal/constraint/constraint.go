// Package constraint defines the typed query evaluated by the matcher.
package constraint

import (
	"fmt"
	"slices"
	"unicode"
)

// Positioned pins Letter to a 0-based character Position.
type Positioned struct {
	Position int
	Letter   rune
}

// Set is a compound query. Every clause must hold for a word to match; an
// empty clause is vacuously true.
//
// Positions are not range-checked here: a position outside
// [0, WordLength) makes every word fail instead of being an error. Two
// entries for the same position with different letters are allowed and
// likewise match nothing.
type Set struct {
	WordLength  int
	Positioned  []Positioned
	Required    []rune
	Excluded    []rune
	FoundGroups [][]rune
}

// InvalidError reports a constraint set that must not reach the matcher.
type InvalidError struct {
	Field  string
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid constraint %s: %s", e.Field, e.Reason)
}

// Validate checks the structural requirements of the set.
func (s Set) Validate() error {
	if s.WordLength <= 0 {
		return &InvalidError{Field: "word_length", Reason: "must be a positive integer"}
	}
	return nil
}

// Normalized returns a copy of the set with every letter lower-cased.
func (s Set) Normalized() Set {
	out := Set{
		WordLength: s.WordLength,
		Positioned: make([]Positioned, len(s.Positioned)),
		Required:   lowerAll(s.Required),
		Excluded:   lowerAll(s.Excluded),
	}
	for i, p := range s.Positioned {
		out.Positioned[i] = Positioned{Position: p.Position, Letter: unicode.ToLower(p.Letter)}
	}
	if s.FoundGroups != nil {
		out.FoundGroups = make([][]rune, len(s.FoundGroups))
		for i, g := range s.FoundGroups {
			out.FoundGroups[i] = lowerAll(g)
		}
	}
	return out
}

// WithPositioned returns a copy of the set with an extra positioned letter.
func (s Set) WithPositioned(position int, letter rune) Set {
	out := s.clone()
	out.Positioned = append(out.Positioned, Positioned{Position: position, Letter: letter})
	return out
}

// WithRequired returns a copy of the set with extra required letters.
func (s Set) WithRequired(letters ...rune) Set {
	out := s.clone()
	out.Required = append(out.Required, letters...)
	return out
}

// WithExcluded returns a copy of the set with extra excluded letters.
func (s Set) WithExcluded(letters ...rune) Set {
	out := s.clone()
	out.Excluded = append(out.Excluded, letters...)
	return out
}

// WithFoundGroup returns a copy of the set with an extra letter group.
func (s Set) WithFoundGroup(letters ...rune) Set {
	out := s.clone()
	out.FoundGroups = append(out.FoundGroups, slices.Clone(letters))
	return out
}

func (s Set) clone() Set {
	out := Set{
		WordLength: s.WordLength,
		Positioned: slices.Clone(s.Positioned),
		Required:   slices.Clone(s.Required),
		Excluded:   slices.Clone(s.Excluded),
	}
	if s.FoundGroups != nil {
		out.FoundGroups = make([][]rune, len(s.FoundGroups))
		for i, g := range s.FoundGroups {
			out.FoundGroups[i] = slices.Clone(g)
		}
	}
	return out
}

func lowerAll(letters []rune) []rune {
	if letters == nil {
		return nil
	}
	out := make([]rune, len(letters))
	for i, r := range letters {
		out[i] = unicode.ToLower(r)
	}
	return out
}
