package lookup

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OutputSuffix is appended to the input file stem to name the default output.
const OutputSuffix = "_lookup"

// BulkOption configures BulkLookup.
type BulkOption func(*bulkOptions)

type bulkOptions struct {
	newWriter   WriterFactory
	concurrency int
}

// DefaultConcurrency is the number of files BatchLookup processes at once.
const DefaultConcurrency = 4

func newBulkOptions(opts []BulkOption) bulkOptions {
	o := bulkOptions{
		newWriter:   func(w io.Writer) ResultWriter { return NewTextWriter(w) },
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWriter selects the output format. The default is NewTextWriter.
func WithWriter(f WriterFactory) BulkOption {
	return func(o *bulkOptions) {
		if f != nil {
			o.newWriter = f
		}
	}
}

// WithConcurrency limits how many files BatchLookup processes at once.
// Values below 1 are ignored.
func WithConcurrency(n int) BulkOption {
	return func(o *bulkOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// DefaultOutputPath derives the output path for inputPath by inserting
// OutputSuffix before the extension: words.txt becomes words_lookup.txt.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := filepath.Base(inputPath)
	// A leading dot or a trailing dot alone is not an extension.
	if ext == base || ext == "." {
		ext = ""
	}
	return strings.TrimSuffix(inputPath, ext) + OutputSuffix + ext
}

// BulkLookup looks up every line of inputPath and appends one result per
// line to outputPath. An empty outputPath is replaced by DefaultOutputPath.
//
// The output file is opened in append mode and created if missing, so
// results from earlier runs are kept. Only ModeSimplified is supported;
// any other mode returns ErrUnsupportedMode before a file is opened.
func (s *Service) BulkLookup(ctx context.Context, inputPath, outputPath string, mode Mode, opts ...BulkOption) error {
	if mode != ModeSimplified {
		return fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}

	o := newBulkOptions(opts)

	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}

	in, err := os.Open(inputPath) //nolint:gosec // lookup list is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to open lookup file %s: %w", inputPath, err)
	}
	defer in.Close()

	out, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600) //nolint:gosec // output path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", outputPath, err)
	}
	defer out.Close()

	buffered := bufio.NewWriter(out)
	writer := o.newWriter(buffered)

	count, lookupErr := s.lookupLines(ctx, in, writer, mode)

	// Results written before a failure are kept in the output file.
	if _, err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", outputPath, err)
	}
	if lookupErr != nil {
		return fmt.Errorf("bulk lookup of %s failed after %d lines: %w", inputPath, count, lookupErr)
	}

	s.logger.Debug("bulk lookup finished",
		"input", inputPath,
		"output", outputPath,
		"queries", count,
	)
	return nil
}

// lookupLines resolves each line of r and writes it. It returns the number
// of lines processed.
func (s *Service) lookupLines(ctx context.Context, r io.Reader, w ResultWriter, mode Mode) (int, error) {
	scanner := s.newScanner(r)
	count := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		result := s.resolve(ctx, mode, scanner.Text())
		if _, err := w.WriteResult(result); err != nil {
			return count, err
		}
		count++
	}
	return count, scanner.Err()
}
