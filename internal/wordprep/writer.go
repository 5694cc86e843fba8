package wordprep

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// WriteTextFile writes words to outputPath, one per line with a trailing
// newline. The file is written next to its destination and renamed into
// place, so readers never observe a partial dictionary.
func WriteTextFile(words []string, outputPath string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".wordprep-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, word := range words {
		if _, err := w.WriteString(word); err != nil {
			return fmt.Errorf("failed to write word list: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write word list: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return fmt.Errorf("failed to move word list into place: %w", err)
	}

	return nil
}
