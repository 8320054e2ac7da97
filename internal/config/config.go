// Package config resolves chartstyle CLI settings with an explicit priority
// order. Higher priority sources override lower ones:
//
//  1. CLI flags (-theme, -scope, -no-color)
//  2. Environment variables (CHARTSTYLE_THEME, NO_COLOR)
//  3. .chartstyle.yaml in the working directory
//  4. Defaults (light theme, generated scope id)
//
// Each resolved value records where it came from, so -debug output can
// explain a surprising result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/viznest/chartstyle/chartstyle"
)

// FileName is the optional per-project settings file.
const FileName = ".chartstyle.yaml"

// Source labels where a resolved value came from.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds parsed command-line flag values. The *Set fields track
// whether the user passed the flag explicitly, since a zero value and an
// unset flag resolve differently.
type CliFlags struct {
	Theme   string
	Scope   string
	NoColor bool

	ThemeSet   bool
	NoColorSet bool
}

// fileConfig is the on-disk shape of .chartstyle.yaml.
type fileConfig struct {
	Theme   string `yaml:"theme"`
	Scope   string `yaml:"scope"`
	NoColor bool   `yaml:"no_color"`
}

// Resolved is the final CLI configuration after applying all priority rules.
type Resolved struct {
	Theme   chartstyle.Theme
	Scope   string
	NoColor bool

	// Resolution metadata for debug output.
	ThemeSource   string
	ScopeSource   string
	NoColorSource string
}

// Resolve applies the priority order and validates the outcome. dir is where
// the settings file is looked up (the working directory in production, a
// temp directory in tests).
func Resolve(flags CliFlags, dir string) (*Resolved, error) {
	file, err := loadFile(dir)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Theme:         chartstyle.ThemeLight,
		ThemeSource:   SourceDefault,
		ScopeSource:   SourceDefault,
		NoColorSource: SourceDefault,
	}

	if file.Theme != "" {
		resolved.Theme = chartstyle.Theme(file.Theme)
		resolved.ThemeSource = SourceFile
	}
	if file.Scope != "" {
		resolved.Scope = file.Scope
		resolved.ScopeSource = SourceFile
	}
	if file.NoColor {
		resolved.NoColor = true
		resolved.NoColorSource = SourceFile
	}

	if env := strings.TrimSpace(os.Getenv("CHARTSTYLE_THEME")); env != "" {
		resolved.Theme = chartstyle.Theme(strings.ToLower(env))
		resolved.ThemeSource = SourceEnv
	}
	if os.Getenv("NO_COLOR") != "" {
		resolved.NoColor = true
		resolved.NoColorSource = SourceEnv
	}

	if flags.ThemeSet {
		resolved.Theme = chartstyle.Theme(strings.ToLower(flags.Theme))
		resolved.ThemeSource = SourceCLI
	}
	if flags.Scope != "" {
		resolved.Scope = flags.Scope
		resolved.ScopeSource = SourceCLI
	}
	if flags.NoColorSet {
		resolved.NoColor = flags.NoColor
		resolved.NoColorSource = SourceCLI
	}

	if resolved.Scope == "" {
		resolved.Scope = chartstyle.ChartID()
	}

	if !resolved.Theme.Known() {
		return nil, fmt.Errorf("%w: %q (from %s)", chartstyle.ErrUnknownTheme, resolved.Theme, resolved.ThemeSource)
	}

	if os.Getenv("CHARTSTYLE_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "chartstyle: theme=%s(%s) scope=%s(%s) no-color=%t(%s)\n",
			resolved.Theme, resolved.ThemeSource, resolved.Scope, resolved.ScopeSource,
			resolved.NoColor, resolved.NoColorSource)
	}
	return resolved, nil
}

func loadFile(dir string) (fileConfig, error) {
	var file fileConfig

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, nil
		}
		return file, fmt.Errorf("reading %s: %w", FileName, err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("decoding %s: %w", FileName, err)
	}
	return file, nil
}
