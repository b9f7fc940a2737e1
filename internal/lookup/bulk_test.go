package lookup

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/mbdg/internal/model"
)

// writeFile writes content into dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// readLines returns the lines of the file at path without terminators.
func readLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path) //nolint:gosec // test file
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestDefaultOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"words.txt", "words_lookup.txt"},
		{"words", "words_lookup"},
		{"dir/words.txt", "dir/words_lookup.txt"},
		{"archive.tar.gz", "archive.tar_lookup.gz"},
		{".words", ".words_lookup"},
		{"words.", "words._lookup"},
	}

	for _, tt := range tests {
		if got := DefaultOutputPath(filepath.FromSlash(tt.input)); got != filepath.FromSlash(tt.want) {
			t.Errorf("DefaultOutputPath(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestBulkLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes one line per input line in order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "words.txt", "你好\nxyz\n")
		svc := NewService(newTestDictionary(t))

		if err := svc.BulkLookup(ctx, input, "", ModeSimplified); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := readLines(t, filepath.Join(dir, "words_lookup.txt"))
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
		}
		if lines[0] != "你好 ni3 hao3 ['hello', 'hi']" {
			t.Errorf("unexpected first line: %q", lines[0])
		}
		if lines[1] != "Entry 'xyz' is not found. Please try again." {
			t.Errorf("unexpected second line: %q", lines[1])
		}
	})

	t.Run("appends on repeated runs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "words.txt", "你好\nxyz\n")
		output := filepath.Join(dir, "out.txt")
		svc := NewService(newTestDictionary(t))

		for i := 0; i < 2; i++ {
			if err := svc.BulkLookup(ctx, input, output, ModeSimplified); err != nil {
				t.Fatalf("run %d: unexpected error: %v", i+1, err)
			}
		}

		lines := readLines(t, output)
		if len(lines) != 4 {
			t.Fatalf("expected 4 lines after two runs, got %d: %q", len(lines), lines)
		}
		if lines[0] != lines[2] || lines[1] != lines[3] {
			t.Errorf("expected second run to repeat the first, got %q", lines)
		}
	})

	t.Run("keeps existing output content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "words.txt", "中国\n")
		output := writeFile(t, dir, "out.txt", "previous\n")
		svc := NewService(newTestDictionary(t))

		if err := svc.BulkLookup(ctx, input, output, ModeSimplified); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := readLines(t, output)
		if len(lines) != 2 || lines[0] != "previous" {
			t.Errorf("expected previous content to be kept, got %q", lines)
		}
	})

	t.Run("blank and padded input lines", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "words.txt", "  你好  \r\n\n")
		output := filepath.Join(dir, "out.txt")
		svc := NewService(newTestDictionary(t))

		if err := svc.BulkLookup(ctx, input, output, ModeSimplified); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := readLines(t, output)
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
		}
		if !strings.HasPrefix(lines[0], "你好 ") {
			t.Errorf("expected padded query to be found, got %q", lines[0])
		}
		if lines[1] != "Entry '' is not found. Please try again." {
			t.Errorf("unexpected line for blank query: %q", lines[1])
		}
	})

	t.Run("unsupported mode fails before any I/O", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		output := filepath.Join(dir, "out.txt")
		svc := NewService(newTestDictionary(t))

		err := svc.BulkLookup(ctx, filepath.Join(dir, "missing.txt"), output, Mode("traditional"))
		if !errors.Is(err, ErrUnsupportedMode) {
			t.Errorf("expected ErrUnsupportedMode, got %v", err)
		}
		if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
			t.Error("expected output file not to be created")
		}
	})

	t.Run("missing input file returns error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		svc := NewService(newTestDictionary(t))

		err := svc.BulkLookup(ctx, filepath.Join(dir, "missing.txt"), "", ModeSimplified)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})

	t.Run("unwritable output returns error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "words.txt", "你好\n")
		svc := NewService(newTestDictionary(t))

		err := svc.BulkLookup(ctx, input, filepath.Join(dir, "no-such-dir", "out.txt"), ModeSimplified)
		if err == nil {
			t.Error("expected error for output in missing directory")
		}
	})

	t.Run("canceled context stops the run", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "words.txt", "你好\n")
		svc := NewService(newTestDictionary(t))

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := svc.BulkLookup(canceled, input, "", ModeSimplified)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("long query line is looked up", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		long := strings.Repeat("x", 70000)
		input := writeFile(t, dir, "words.txt", "你好\n"+long+"\n你好\n")
		output := filepath.Join(dir, "out.txt")
		svc := NewService(newTestDictionary(t))

		if err := svc.BulkLookup(ctx, input, output, ModeSimplified); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := readLines(t, output)
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		if lines[1] != NotFoundMessage(long) {
			t.Errorf("expected not found message for the long query")
		}
	})

	t.Run("line over the limit keeps earlier results", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "words.txt", "你好\n"+strings.Repeat("x", 2048)+"\n你好\n")
		output := filepath.Join(dir, "out.txt")
		svc := NewService(newTestDictionary(t), WithMaxLineSize(1024))

		err := svc.BulkLookup(ctx, input, output, ModeSimplified)
		if !errors.Is(err, bufio.ErrTooLong) {
			t.Fatalf("expected bufio.ErrTooLong, got %v", err)
		}

		lines := readLines(t, output)
		if len(lines) != 1 || lines[0] != "你好 ni3 hao3 ['hello', 'hi']" {
			t.Errorf("expected the first result to be written, got %q", lines)
		}
	})

	t.Run("custom writer receives every result", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeFile(t, dir, "words.txt", "你好\nxyz\n中国\n")
		svc := NewService(newTestDictionary(t))

		counter := &countingWriter{}
		err := svc.BulkLookup(ctx, input, "", ModeSimplified,
			WithWriter(func(io.Writer) ResultWriter { return counter }))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counter.found != 2 || counter.missing != 1 {
			t.Errorf("expected 2 found and 1 missing, got %d and %d", counter.found, counter.missing)
		}
		if !counter.flushed {
			t.Error("expected Flush to be called")
		}
	})
}

// countingWriter counts results instead of writing them.
type countingWriter struct {
	found   int
	missing int
	flushed bool
}

func (w *countingWriter) WriteResult(r model.Result) (int, error) {
	if r.Found() {
		w.found++
	} else {
		w.missing++
	}
	return 0, nil
}

func (w *countingWriter) Flush() (int, error) {
	w.flushed = true
	return 0, nil
}
