package config

import (
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultDictionaryPath is the dictionary file read when neither a flag
	// nor the config file names one. It is resolved against the working directory.
	DefaultDictionaryPath = "mbdg-dict.txt"

	// DefaultMode is the only lookup mode that is implemented.
	DefaultMode = "simplified"

	// DefaultFormat is the bulk and single lookup output format.
	DefaultFormat = FormatText

	// DefaultHistoryLimit is how many records the history command shows.
	DefaultHistoryLimit = 20

	// DefaultJobs is how many lookup files are processed at once.
	DefaultJobs = 4

	// DefaultMaxLineSize is the longest dictionary or query line in bytes.
	DefaultMaxLineSize = 1024 * 1024

	// AppName is the application name used for XDG directory paths.
	AppName = "mbdg"
)

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatMarkdown}

// Config holds all options for one mbdg invocation.
// It is populated from CLI flags over the config file over defaults,
// and passed down explicitly rather than kept in global state.
type Config struct {
	// DictionaryPath is the dictionary source file.
	DictionaryPath string

	// Word is the single query for one-shot mode. Empty means not set.
	Word string

	// LookupPaths are the word lists for bulk mode. Empty means not set.
	LookupPaths []string

	// OutputPath is the bulk output file. Empty means derive it from the
	// lookup path. It is only valid with a single lookup path.
	OutputPath string

	// Jobs is the number of lookup files processed concurrently.
	Jobs int

	// MaxLineSize is the longest dictionary or query line in bytes.
	MaxLineSize int

	// Mode is the bulk lookup mode. Only "simplified" is implemented.
	Mode string

	// Format selects the output format for results.
	Format string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the explicit config file path, if any.
	ConfigFilePath string

	// History enables recording lookups in the history database.
	History bool

	// DBDir is the directory holding the history database.
	DBDir string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DictionaryPath: DefaultDictionaryPath,
		Mode:           DefaultMode,
		Format:         DefaultFormat,
		Jobs:           DefaultJobs,
		MaxLineSize:    DefaultMaxLineSize,
		DBDir:          XDGDataDir(),
	}
}

// Apply copies the values set in the config file onto c.
// Fields the file leaves empty keep their current value.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Dictionary != "" {
		c.DictionaryPath = f.Dictionary
	}
	if f.Mode != "" {
		c.Mode = f.Mode
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.Jobs > 0 {
		c.Jobs = f.Jobs
	}
	if f.MaxLineSize > 0 {
		c.MaxLineSize = f.MaxLineSize
	}
	if f.History != nil {
		c.History = *f.History
	}
	if f.DBDir != "" {
		c.DBDir = f.DBDir
	}
}

// XDGDataDir returns the XDG data directory for mbdg.
// On Linux: ~/.local/share/mbdg
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for mbdg.
// On Linux: ~/.config/mbdg
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first problem found.
// Lookup mode is checked by the lookup package, not here.
func (c *Config) Validate() error {
	if c.DictionaryPath == "" {
		return ErrNoDictionary
	}

	if !slices.Contains(Formats, c.Format) {
		return ErrInvalidFormat
	}

	if c.OutputPath != "" {
		switch {
		case len(c.LookupPaths) == 0:
			return ErrOutputWithoutLookup
		case len(c.LookupPaths) > 1:
			return ErrOutputWithMultipleLookups
		}
	}

	if c.Jobs < 1 {
		return ErrInvalidJobs
	}

	if c.MaxLineSize < 1 {
		return ErrInvalidMaxLineSize
	}

	if c.History && c.DBDir == "" {
		return ErrNoDBDir
	}

	return nil
}
