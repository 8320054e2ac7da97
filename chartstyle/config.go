// Package chartstyle resolves a declarative, per-series chart styling
// configuration into scoped CSS custom properties and tooltip/legend HTML
// fragments for a browser chart surface.
//
// The chart engine itself (geometry, axes, SVG) is an external collaborator:
// it reports DataItem payloads on hover/render, and this package maps those
// items back onto the configuration to decide which label, icon, and color
// apply. Configuration is published once per container and read back by
// descendant renderers through the context carrier in context.go.
package chartstyle

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrConflictingColor reports a series entry that declares both a single
// color and a per-theme color map. The two are mutually exclusive.
var ErrConflictingColor = errors.New("series declares both color and theme map")

// ErrUnknownTheme reports a theme name outside the registry in theme.go.
var ErrUnknownTheme = errors.New("unknown theme")

// ColorSpec is the color declaration of a series: either a single color that
// applies to every theme, or one color per theme. The zero value declares no
// color at all. Exclusivity is enforced by construction — there is no way to
// build a ColorSpec that carries both forms.
type ColorSpec struct {
	solid  string
	themed map[Theme]string
}

// Solid returns a ColorSpec with one color for all themes.
func Solid(color string) ColorSpec {
	return ColorSpec{solid: color}
}

// Themed returns a ColorSpec with per-theme colors. The map is copied.
func Themed(colors map[Theme]string) ColorSpec {
	themed := make(map[Theme]string, len(colors))
	for theme, color := range colors {
		themed[theme] = color
	}
	return ColorSpec{themed: themed}
}

// IsZero reports whether no color was declared.
func (c ColorSpec) IsZero() bool {
	return c.solid == "" && len(c.themed) == 0
}

// ColorFor returns the color to emit for the given theme. A themed spec wins
// over the solid fallback; the empty string means this spec contributes no
// declaration under that theme.
func (c ColorSpec) ColorFor(theme Theme) string {
	if color, ok := c.themed[theme]; ok {
		return color
	}
	return c.solid
}

// SeriesStyle describes how one named data series is presented: an optional
// display label, an optional icon reference (rendered as a CSS class token),
// and an optional color declaration.
type SeriesStyle struct {
	Label string
	Icon  string
	Color ColorSpec
}

// StyleConfig maps series keys to their presentation. It is supplied once to
// Container and treated as read-only for the lifetime of that scope.
type StyleConfig map[string]SeriesStyle

// colorKeys returns the keys of entries that declare a color, sorted so that
// emission is deterministic regardless of map iteration order.
func (cfg StyleConfig) colorKeys() []string {
	keys := make([]string, 0, len(cfg))
	for key, entry := range cfg {
		if !entry.Color.IsZero() {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// seriesStyleYAML is the on-disk shape of a series entry.
type seriesStyleYAML struct {
	Label string            `yaml:"label"`
	Icon  string            `yaml:"icon"`
	Color string            `yaml:"color"`
	Theme map[string]string `yaml:"theme"`
}

// ParseConfig decodes a StyleConfig from YAML. The document is a mapping from
// series key to entry:
//
//	revenue:
//	  label: Revenue
//	  color: "#3366ff"
//	churn:
//	  label: Churn
//	  theme:
//	    light: "#888888"
//	    dark: "#cccccc"
//
// An entry that sets both color and theme fails with ErrConflictingColor; a
// theme name outside the registry fails with ErrUnknownTheme.
func ParseConfig(data []byte) (StyleConfig, error) {
	var raw map[string]seriesStyleYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding chart config: %w", err)
	}

	cfg := make(StyleConfig, len(raw))
	for key, entry := range raw {
		style := SeriesStyle{Label: entry.Label, Icon: entry.Icon}

		switch {
		case entry.Color != "" && len(entry.Theme) > 0:
			return nil, fmt.Errorf("series %q: %w", key, ErrConflictingColor)
		case entry.Color != "":
			style.Color = Solid(entry.Color)
		case len(entry.Theme) > 0:
			themed := make(map[Theme]string, len(entry.Theme))
			for name, color := range entry.Theme {
				theme := Theme(name)
				if !theme.Known() {
					return nil, fmt.Errorf("series %q: %w: %q", key, ErrUnknownTheme, name)
				}
				themed[theme] = color
			}
			style.Color = Themed(themed)
		}

		cfg[key] = style
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a StyleConfig from a YAML file.
func LoadConfigFile(path string) (StyleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart config: %w", err)
	}
	return ParseConfig(data)
}
