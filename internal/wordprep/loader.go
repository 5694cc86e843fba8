package wordprep

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"word-finder/internal/wordstore"
)

const (
	// Scanner buffer sizes for reading files
	scannerInitialBuffer = 64 * 1024   // 64 KB
	scannerMaxBuffer     = 1024 * 1024 // 1 MB
)

// Options controls which words make it into the prepared dictionary.
type Options struct {
	// MinLength and MaxLength bound the word length in characters. Zero
	// means unbounded.
	MinLength int
	MaxLength int

	// LettersOnly drops words containing anything but letters.
	LettersOnly bool

	// Workers is the number of parallel bucket workers. If 0 or negative,
	// uses runtime.NumCPU().
	Workers int
}

// Keep reports whether the normalized word passes the options.
func (o Options) Keep(word string) bool {
	if word == "" {
		return false
	}
	n := utf8.RuneCountInString(word)
	if o.MinLength > 0 && n < o.MinLength {
		return false
	}
	if o.MaxLength > 0 && n > o.MaxLength {
		return false
	}
	if o.LettersOnly {
		for _, r := range word {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

// LoadFile reads a word list, normalizing every line the same way the
// word store does and dropping the words rejected by opts.
func LoadFile(filename string, opts Options) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, scannerInitialBuffer)
	scanner.Buffer(buf, scannerMaxBuffer)

	for scanner.Scan() {
		word := wordstore.Normalize(scanner.Text())
		if opts.Keep(word) {
			words = append(words, word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filename, err)
	}

	return words, nil
}

// ListFiles returns the regular files directly inside dirPath, in name
// order.
func ListFiles(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dirPath, entry.Name()))
	}

	return files, nil
}
