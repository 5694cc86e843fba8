package wordprep

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestOptions_Keep(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		word string
		want bool
	}{
		{name: "empty word", opts: Options{}, word: "", want: false},
		{name: "no bounds", opts: Options{}, word: "x", want: true},
		{name: "too short", opts: Options{MinLength: 3}, word: "ab", want: false},
		{name: "too long", opts: Options{MaxLength: 5}, word: "abcdef", want: false},
		{name: "within bounds", opts: Options{MinLength: 3, MaxLength: 5}, word: "abcd", want: true},
		{name: "length counts characters", opts: Options{MaxLength: 4}, word: "caf\u00e9", want: true},
		{name: "digits rejected", opts: Options{LettersOnly: true}, word: "abc1", want: false},
		{name: "apostrophe rejected", opts: Options{LettersOnly: true}, word: "don't", want: false},
		{name: "accented letters allowed", opts: Options{LettersOnly: true}, word: "caf\u00e9", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Keep(tt.word); got != tt.want {
				t.Errorf("Keep(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		opts     Options
		want     []string
		wantErr  bool
		setupErr bool // Whether to skip file creation to test errors
	}{
		{
			name:    "normalizes words",
			content: "  Apple\nANGLE\t\n\n   \namble",
			want:    []string{"apple", "angle", "amble"},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
		{
			name:    "applies options",
			content: "a\nhello\nhell0\nworlds\nworld",
			opts:    Options{MinLength: 5, MaxLength: 5, LettersOnly: true},
			want:    []string{"hello", "world"},
		},
		{
			name:    "keeps duplicates",
			content: "apple\nApple\napple",
			want:    []string{"apple", "apple", "apple"},
		},
		{
			name:     "non-existent file",
			setupErr: true,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(tmpDir, "nonexistent.txt")
			if !tt.setupErr {
				testFile = writeFile(t, tmpDir, tt.name+".txt", tt.content)
			}

			got, err := LoadFile(testFile, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LoadFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	t.Run("merges, deduplicates and sorts", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "a.txt", "Zebra\napple\nangle\n")
		writeFile(t, tmpDir, "b.txt", "APPLE\ncrane\nzebra\n")
		writeFile(t, tmpDir, "c.txt", "amble\n\napple\n")
		if err := os.Mkdir(filepath.Join(tmpDir, "subdir"), 0755); err != nil {
			t.Fatalf("Failed to create subdirectory: %v", err)
		}

		var messages []string
		got, err := Prepare(tmpDir, Options{Workers: 3}, func(msg string) {
			messages = append(messages, msg)
		})
		if err != nil {
			t.Fatalf("Prepare() error = %v", err)
		}

		want := []string{"amble", "angle", "apple", "crane", "zebra"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Prepare() = %v, want %v", got, want)
		}
		if len(messages) == 0 {
			t.Error("expected progress messages")
		}
		if last := messages[len(messages)-1]; !strings.Contains(last, "5 distinct words") {
			t.Errorf("last progress message = %q", last)
		}
	})

	t.Run("applies options", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "words.txt", "cat\ncrane\nslate\nx-ray\ncranes\n")

		got, err := Prepare(tmpDir, Options{MinLength: 5, MaxLength: 5, LettersOnly: true}, nil)
		if err != nil {
			t.Fatalf("Prepare() error = %v", err)
		}
		want := []string{"crane", "slate"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Prepare() = %v, want %v", got, want)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		if _, err := Prepare(t.TempDir(), Options{}, nil); err == nil {
			t.Error("Expected error for empty directory, got nil")
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		if _, err := Prepare("/path/that/does/not/exist", Options{}, nil); err == nil {
			t.Error("Expected error for non-existent directory, got nil")
		}
	})
}

func TestHashWord_Stable(t *testing.T) {
	for _, w := range []string{"apple", "zebra", "caf\u00e9", ""} {
		a := hashWord(w, numBuckets)
		b := hashWord(w, numBuckets)
		if a != b {
			t.Errorf("hashWord(%q) not stable: %d != %d", w, a, b)
		}
		if a < 0 || a >= numBuckets {
			t.Errorf("hashWord(%q) = %d out of range", w, a)
		}
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{name: "no duplicates", words: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "preserves first-seen order", words: []string{"b", "a", "b", "c", "a"}, want: []string{"b", "a", "c"}},
		{name: "nil input", words: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupe(tt.words); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteTextFile(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{name: "words", words: []string{"apple", "angle"}, want: "apple\nangle\n"},
		{name: "empty", words: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			out := filepath.Join(tmpDir, "words.txt")

			if err := WriteTextFile(tt.words, out); err != nil {
				t.Fatalf("WriteTextFile() error = %v", err)
			}

			got, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("Failed to read output: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}

			entries, err := os.ReadDir(tmpDir)
			if err != nil {
				t.Fatalf("Failed to read dir: %v", err)
			}
			if len(entries) != 1 {
				t.Errorf("expected only the output file, found %d entries", len(entries))
			}
		})
	}
}

func TestWriteTextFile_BadDirectory(t *testing.T) {
	err := WriteTextFile([]string{"apple"}, "/path/that/does/not/exist/words.txt")
	if err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}

func BenchmarkPrepare(b *testing.B) {
	tmpDir := b.TempDir()

	for i := 0; i < 10; i++ {
		var builder strings.Builder
		for j := 0; j < 1000; j++ {
			builder.WriteString(strings.Repeat(string(rune('a'+j%26)), 1+j%9))
			builder.WriteString("\n")
		}
		path := filepath.Join(tmpDir, "words"+string(rune('0'+i))+".txt")
		if err := os.WriteFile(path, []byte(builder.String()), 0644); err != nil {
			b.Fatalf("Failed to create benchmark file: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Prepare(tmpDir, Options{}, nil); err != nil {
			b.Fatalf("Prepare() error = %v", err)
		}
	}
}
