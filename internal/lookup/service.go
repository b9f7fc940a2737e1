package lookup

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nao1215/mbdg/internal/model"
)

// Mode selects which headword a bulk lookup matches against.
type Mode string

// ModeSimplified matches queries against the simplified headword.
// It is the only implemented mode.
const ModeSimplified Mode = "simplified"

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Recorder receives every resolved query. The history database
// implements it; a nil Recorder disables recording.
type Recorder interface {
	Record(ctx context.Context, mode Mode, result model.Result) error
}

// DefaultMaxLineSize is the longest query line, in bytes, that bulk and
// interactive lookups accept.
const DefaultMaxLineSize = 1024 * 1024

// Service answers lookups against a single dictionary.
type Service struct {
	dict        *model.Dictionary
	recorder    Recorder
	logger      *slog.Logger
	maxLineSize int
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder sets the sink that receives each lookup result.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMaxLineSize sets the longest query line read from a word list or
// the prompt. Values below 1 are ignored.
func WithMaxLineSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLineSize = n
		}
	}
}

// NewService creates a Service over dict.
func NewService(dict *model.Dictionary, opts ...Option) *Service {
	s := &Service{dict: dict, maxLineSize: DefaultMaxLineSize}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Lookup returns the entry for key. Surrounding whitespace is trimmed;
// the remaining key must match a simplified headword exactly.
func (s *Service) Lookup(key string) (model.Entry, bool) {
	return s.dict.Get(strings.TrimSpace(key))
}

// Resolve looks up key and records the result.
func (s *Service) Resolve(ctx context.Context, key string) model.Result {
	return s.resolve(ctx, ModeSimplified, key)
}

// FormatLookup returns the formatted entry line for key, or the not-found
// message naming the trimmed key.
func (s *Service) FormatLookup(ctx context.Context, key string) string {
	return FormatResult(s.Resolve(ctx, key))
}

// newScanner returns a line scanner over r limited to maxLineSize.
func (s *Service) newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, s.maxLineSize)), s.maxLineSize)
	return scanner
}

func (s *Service) resolve(ctx context.Context, mode Mode, key string) model.Result {
	query := strings.TrimSpace(key)
	result := model.Result{Query: query}
	if e, ok := s.dict.Get(query); ok {
		result.Entry = &e
	}

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, mode, result); err != nil {
			s.logger.Warn("failed to record lookup", "query", query, "error", err)
		}
	}
	return result
}

// ParseMode converts s into a Mode. Only ModeSimplified is accepted;
// any other value returns ErrUnsupportedMode.
func ParseMode(s string) (Mode, error) {
	if Mode(s) != ModeSimplified {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
	return ModeSimplified, nil
}
