// Package config provides configuration structures and utilities for mbdg.
// It defines the dictionary location, lookup mode, output format and history
// settings, and loads the optional .mbdg YAML file.
package config
