package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".mbdg"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .mbdg configuration file.
type File struct {
	// Dictionary is the dictionary file path.
	Dictionary string `yaml:"dictionary,omitempty"`

	// Mode is the bulk lookup mode.
	Mode string `yaml:"mode,omitempty"`

	// Format is the output format: text, json or markdown.
	Format string `yaml:"format,omitempty"`

	// Jobs is the number of lookup files processed concurrently.
	Jobs int `yaml:"jobs,omitempty"`

	// MaxLineSize is the longest dictionary or query line in bytes.
	MaxLineSize int `yaml:"max_line_size,omitempty"`

	// History turns lookup history on or off. Nil keeps the default.
	History *bool `yaml:"history,omitempty"`

	// DBDir overrides the history database directory.
	DBDir string `yaml:"db_dir,omitempty"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	// Relative paths in the file are relative to the file itself.
	base := filepath.Dir(path)
	if cf.Dictionary != "" && !filepath.IsAbs(cf.Dictionary) {
		cf.Dictionary = filepath.Join(base, cf.Dictionary)
	}
	if cf.DBDir != "" && !filepath.IsAbs(cf.DBDir) {
		cf.DBDir = filepath.Join(base, cf.DBDir)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .mbdg in the current directory
// 3. Look for .mbdg in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
