package wordstore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

const (
	scannerInitialBuffer = 64 * 1024   // 64 KB
	scannerMaxBuffer     = 1024 * 1024 // 1 MB
)

var (
	// ErrNotFound is wrapped by the LoadError returned when the dictionary
	// file does not exist.
	ErrNotFound = errors.New("dictionary file not found")

	// ErrDecode is wrapped by the LoadError returned when the dictionary
	// file is not valid UTF-8.
	ErrDecode = errors.New("dictionary file is not valid UTF-8")
)

// LoadError describes why a dictionary file could not be loaded.
type LoadError struct {
	Path string
	Line int // 1-based, zero when the failure is not tied to a line
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to load dictionary %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to load dictionary %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a newline-delimited word list. Each line is trimmed and
// lower-cased; lines that are blank after trimming are skipped. File order
// is preserved and duplicates are kept.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var initial int
	if info, err := f.Stat(); err == nil {
		// Rough guess of one word per ten bytes.
		initial = int(info.Size() / 10)
	}

	b := newBuilder(initial)
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, scannerInitialBuffer)
	scanner.Buffer(buf, scannerMaxBuffer)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if !utf8.Valid(raw) {
			return nil, &LoadError{Path: path, Line: line, Err: ErrDecode}
		}
		b.add(string(raw))
	}

	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: path, Line: line + 1, Err: err}
	}

	return b.build(), nil
}

// LoadOrEmpty loads the dictionary at path. On failure it returns an empty
// store together with the error so the caller can keep running degraded.
func LoadOrEmpty(path string) (*Store, error) {
	s, err := Load(path)
	if err != nil {
		return Empty(), err
	}
	return s, nil
}
