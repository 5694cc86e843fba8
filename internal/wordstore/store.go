// Package wordstore holds the in-memory dictionary that queries are
// evaluated against.
//
// A Store is built once, either from a newline-delimited file with Load or
// from a slice with New, and is never modified afterwards. It is safe to
// share a single *Store between any number of goroutines.
package wordstore

import (
	"iter"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Store is an immutable, ordered list of normalized words.
type Store struct {
	words    []string
	byLength map[int][]string
}

// Empty returns a store with no words. It is what a process falls back to
// when the dictionary could not be loaded.
func Empty() *Store {
	return &Store{byLength: map[int][]string{}}
}

// New builds a store from the given words, normalizing each one the same
// way Load does. Entries that are blank after trimming are dropped.
func New(words ...string) *Store {
	b := newBuilder(len(words))
	for _, w := range words {
		b.add(w)
	}
	return b.build()
}

// Normalize trims surrounding whitespace, composes the word to NFC and
// lower-cases it.
func Normalize(word string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(word)))
}

// Len returns the number of words in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// IsEmpty reports whether the store holds no words.
func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// All yields every word in load order.
func (s *Store) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			return
		}
		for _, w := range s.words {
			if !yield(w) {
				return
			}
		}
	}
}

// WithLength returns the words that are exactly n characters long, in load
// order.
func (s *Store) WithLength(n int) View {
	if s == nil {
		return View{}
	}
	return View{words: s.byLength[n]}
}

// LengthCounts returns the number of words per word length.
func (s *Store) LengthCounts() map[int]int {
	counts := make(map[int]int)
	if s == nil {
		return counts
	}
	for n, words := range s.byLength {
		counts[n] = len(words)
	}
	return counts
}

// View is a read-only window over a contiguous run of store words.
type View struct {
	words []string
}

// Len returns the number of words in the view.
func (v View) Len() int {
	return len(v.words)
}

// At returns the i-th word of the view.
func (v View) At(i int) string {
	return v.words[i]
}

// Slice returns the sub-view [lo, hi).
func (v View) Slice(lo, hi int) View {
	return View{words: v.words[lo:hi:hi]}
}

// All yields the words of the view in order.
func (v View) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, w := range v.words {
			if !yield(w) {
				return
			}
		}
	}
}

type builder struct {
	words    []string
	byLength map[int][]string
}

func newBuilder(capacity int) *builder {
	return &builder{
		words:    make([]string, 0, capacity),
		byLength: make(map[int][]string),
	}
}

func (b *builder) add(raw string) {
	w := Normalize(raw)
	if w == "" {
		return
	}
	b.words = append(b.words, w)
	n := utf8.RuneCountInString(w)
	b.byLength[n] = append(b.byLength[n], w)
}

func (b *builder) build() *Store {
	return &Store{words: b.words, byLength: b.byLength}
}
