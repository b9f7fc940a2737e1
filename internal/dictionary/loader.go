package dictionary

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/nao1215/mbdg/internal/model"
	"golang.org/x/crypto/sha3"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMaxLineSize is the longest line the loader accepts.
const DefaultMaxLineSize = 1024 * 1024

// loader holds the options for a single Load call.
type loader struct {
	logger      *slog.Logger
	maxLineSize int
}

// Option configures Load.
type Option func(*loader)

// WithLogger sets the logger used for malformed-line diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *loader) {
		l.logger = logger
	}
}

// WithMaxLineSize sets the maximum accepted line length in bytes.
// Values below 1 are ignored.
func WithMaxLineSize(n int) Option {
	return func(l *loader) {
		if n > 0 {
			l.maxLineSize = n
		}
	}
}

// Stats summarizes what a load saw.
type Stats struct {
	Lines     int
	Comments  int
	Malformed int
	Replaced  int
}

func newLoader(opts []Option) *loader {
	l := &loader{maxLineSize: DefaultMaxLineSize}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Load reads the dictionary file at path.
//
// The file is read end to end and closed before Load returns. The only fatal
// errors are failures to open or read the file; malformed lines are logged
// at warn level and skipped.
func Load(path string, opts ...Option) (*model.Dictionary, error) {
	dict, _, err := LoadWithStats(path, opts...)
	return dict, err
}

// LoadWithStats is Load but also returns line counters.
func LoadWithStats(path string, opts ...Option) (*model.Dictionary, Stats, error) {
	l := newLoader(opts)

	f, err := os.Open(path) //nolint:gosec // dictionary path is chosen by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Stats{}, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		return nil, Stats{}, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer f.Close()

	dict, stats, err := l.read(f, path)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	l.logger.Debug("dictionary loaded",
		"path", path,
		"entries", dict.Len(),
		"lines", stats.Lines,
		"malformed", stats.Malformed,
		"replaced", stats.Replaced,
	)
	return dict, stats, nil
}

// Read parses dictionary lines from r. name is used only for diagnostics
// and is stored as the dictionary path.
func Read(r io.Reader, name string, opts ...Option) (*model.Dictionary, error) {
	l := newLoader(opts)
	dict, _, err := l.read(r, name)
	return dict, err
}

// read does the actual parsing. The digest covers the raw bytes, BOM included.
func (l *loader) read(r io.Reader, name string) (*model.Dictionary, Stats, error) {
	hash := sha3.New256()
	decoded := transform.NewReader(io.TeeReader(r, hash), unicode.BOMOverride(transform.Nop))

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, min(64*1024, l.maxLineSize)), l.maxLineSize)

	var stats Stats
	builder := model.NewBuilder()
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if IsComment(line) {
			stats.Comments++
			continue
		}

		entry, err := ParseLine(line)
		if err != nil {
			stats.Malformed++
			l.logger.Warn("line does not conform to format",
				"file", name,
				"line", stats.Lines,
				"text", line,
			)
			continue
		}
		if builder.Add(entry) {
			stats.Replaced++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	return builder.Build(name, hex.EncodeToString(hash.Sum(nil))), stats, nil
}
