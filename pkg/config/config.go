//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads meowcode settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Color names accepted in a theme.
var ColorNames = []string{"default", "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var ErrInvalidValue = errors.New("invalid value")

// A Theme sets the colors of the editing area, the menu bar and the selection.
type Theme struct {
	Foreground          string `toml:"foreground"`
	Background          string `toml:"background"`
	MenuForeground      string `toml:"menu_foreground"`
	MenuBackground      string `toml:"menu_background"`
	SelectionForeground string `toml:"selection_foreground"`
	SelectionBackground string `toml:"selection_background"`
}

type Config struct {
	LogFile       string `toml:"log_file"`
	TabWidth      int    `toml:"tab_width"`
	NativeDialogs bool   `toml:"native_dialogs"`
	Theme         Theme  `toml:"theme"`
}

// ParseError reports a config file that isn't valid TOML.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Default returns the settings used when there is no config file:
// white text on black, like a dark terminal.
func Default() *Config {
	return &Config{
		LogFile:  filepath.Join(home(), ".meowcodelog"),
		TabWidth: 8,
		Theme: Theme{
			Foreground:          "white",
			Background:          "black",
			MenuForeground:      "black",
			MenuBackground:      "white",
			SelectionForeground: "black",
			SelectionBackground: "cyan",
		},
	}
}

func DefaultPath() string {
	return filepath.Join(home(), ".meowcode.toml")
}

func home() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return os.Getenv("HOME")
}

// Load reads the config file at path. A missing file gives the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML over the defaults, so a file only needs the settings it changes.
func Parse(source string, data []byte) (*Config, error) {
	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		parseErr := &ParseError{Path: source, Err: err}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			parseErr.Line, parseErr.Column = decodeErr.Position()
		}
		return nil, parseErr
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.TabWidth <= 0 {
		return fmt.Errorf("tab_width %d: %w", c.TabWidth, ErrInvalidValue)
	}
	colors := map[string]string{
		"theme.foreground":           c.Theme.Foreground,
		"theme.background":           c.Theme.Background,
		"theme.menu_foreground":      c.Theme.MenuForeground,
		"theme.menu_background":      c.Theme.MenuBackground,
		"theme.selection_foreground": c.Theme.SelectionForeground,
		"theme.selection_background": c.Theme.SelectionBackground,
	}
	for key, name := range colors {
		if !isColorName(name) {
			return fmt.Errorf("%s %q: %w", key, name, ErrInvalidValue)
		}
	}
	return nil
}

func isColorName(name string) bool {
	for _, n := range ColorNames {
		if n == name {
			return true
		}
	}
	return false
}
