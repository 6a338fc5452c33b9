// Package config holds the editor options an embedding application can
// set in code or load from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config errors.
var (
	ErrUnknownMode   = errors.New("unknown keybinding mode")
	ErrUnknownFormat = errors.New("unknown config file format")
)

// Options configures a line editor.
type Options struct {
	// Mode is the default keybinding mode: "emacs" or "vi".
	Mode string `toml:"mode" yaml:"mode"`

	// HistoryFile is the path of the shared history file, empty for
	// in-memory history only.
	HistoryFile string `toml:"history_file" yaml:"history_file"`

	// HistorySize bounds the history log.
	HistorySize int `toml:"history_size" yaml:"history_size"`

	// Autosuggest enables the dimmed history suggestion overlay.
	Autosuggest bool `toml:"autosuggest" yaml:"autosuggest"`

	// TabWidth is the tab expansion width for display.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
}

// Keybinding mode names.
const (
	ModeEmacs = "emacs"
	ModeVi    = "vi"
)

// Defaults returns the standard options: Emacs bindings, a 1000-entry
// in-memory history, suggestions on.
func Defaults() Options {
	return Options{
		Mode:        ModeEmacs,
		HistorySize: 1000,
		Autosuggest: true,
		TabWidth:    8,
	}
}

// Validate checks the options for values with no defined meaning.
func (o Options) Validate() error {
	switch o.Mode {
	case ModeEmacs, ModeVi:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, o.Mode)
	}
}

// Load reads options from a TOML or YAML file, selected by extension,
// on top of the defaults.
func Load(path string) (Options, error) {
	opts := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return opts, fmt.Errorf("%w: %s", ErrUnknownFormat, ext)
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
