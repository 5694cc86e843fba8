// Package matcher evaluates constraint sets against dictionary words.
package matcher

import (
	"strings"
	"unicode/utf8"

	"word-finder/internal/constraint"
)

// Matches reports whether word satisfies every clause of set. Letters in
// set are compared case-insensitively; word is expected to be normalized
// already (see wordstore.Normalize).
//
// The clauses are checked in order, stopping at the first failure: length,
// positioned letters, required letters, excluded letters, found letter
// groups.
func Matches(word string, set constraint.Set) bool {
	return matchNormalized(word, set.Normalized())
}

func matchNormalized(word string, set constraint.Set) bool {
	n := utf8.RuneCountInString(word)
	if n != set.WordLength {
		return false
	}

	if !positionsMatch(word, n == len(word), set) {
		return false
	}

	if !containsAll(word, set.Required) {
		return false
	}

	if containsAny(word, set.Excluded) {
		return false
	}

	for _, group := range set.FoundGroups {
		if !containsAll(word, group) {
			return false
		}
	}

	return true
}

// positionsMatch checks the positioned letters. A position outside the
// word makes the word fail.
func positionsMatch(word string, ascii bool, set constraint.Set) bool {
	if len(set.Positioned) == 0 {
		return true
	}

	var runes []rune
	if !ascii {
		runes = []rune(word)
	}

	for _, p := range set.Positioned {
		if p.Position < 0 || p.Position >= set.WordLength {
			return false
		}
		var got rune
		if ascii {
			got = rune(word[p.Position])
		} else {
			got = runes[p.Position]
		}
		if got != p.Letter {
			return false
		}
	}
	return true
}

// containsAll reports whether every letter occurs somewhere in word.
func containsAll(word string, letters []rune) bool {
	for _, r := range letters {
		if !strings.ContainsRune(word, r) {
			return false
		}
	}
	return true
}

func containsAny(word string, letters []rune) bool {
	for _, r := range letters {
		if strings.ContainsRune(word, r) {
			return true
		}
	}
	return false
}
