// Package preview renders a chart styling configuration as terminal output,
// so palettes and renderer behavior can be inspected without a browser
// round trip. The static Render output mirrors what the browser surface
// shows: a palette listing, a tooltip mockup, and a legend line.
package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/viznest/chartstyle/chartstyle"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// NoColor forces plain output for subsequent renders, regardless of what the
// terminal advertises. The CLI calls this for -no-color and NO_COLOR.
func NoColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Swatch renders a two-cell color block, or a muted placeholder when the
// series declares no color under the active theme.
func Swatch(color string) string {
	if color == "" {
		return mutedStyle.Render("··")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// Palette renders one row per series under the given theme: swatch, padded
// display label, and the raw color value.
func Palette(cfg chartstyle.StyleConfig, theme chartstyle.Theme) string {
	keys := sortedKeys(cfg)

	width := 0
	for _, key := range keys {
		if w := runewidth.StringWidth(displayLabel(cfg[key], key)); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for _, key := range keys {
		entry := cfg[key]
		color := entry.Color.ColorFor(theme)
		label := displayLabel(entry, key)

		sb.WriteString(Swatch(color))
		sb.WriteString(" ")
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(label)))
		if color != "" {
			sb.WriteString("  " + mutedStyle.Render(color))
		} else {
			sb.WriteString("  " + mutedStyle.Render("(no color)"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// SampleItems builds a deterministic payload from the config, shaped like
// what a chart engine would report for one hovered position.
func SampleItems(cfg chartstyle.StyleConfig, theme chartstyle.Theme) []chartstyle.DataItem {
	keys := sortedKeys(cfg)
	items := make([]chartstyle.DataItem, 0, len(keys))
	for i, key := range keys {
		items = append(items, chartstyle.DataItem{
			Name:    key,
			DataKey: key,
			Value:   1200 + 340*i,
			Color:   cfg[key].Color.ColorFor(theme),
			Payload: map[string]any{"fill": cfg[key].Color.ColorFor(theme)},
		})
	}
	return items
}

// TooltipMockup renders a bordered text stand-in for the browser tooltip,
// resolving each sample item through the same lookup the HTML renderer uses.
func TooltipMockup(cfg chartstyle.StyleConfig, theme chartstyle.Theme) string {
	items := SampleItems(cfg, theme)
	if len(items) == 0 {
		return ""
	}

	nameWidth, valueWidth := 0, 0
	rows := make([][2]string, 0, len(items))
	for _, item := range items {
		name := item.Name
		if entry, ok := chartstyle.Resolve(cfg, item, item.DataKey); ok && entry.Label != "" {
			name = entry.Label
		}
		value := chartstyle.FormatValue(item.Value)
		if w := runewidth.StringWidth(name); w > nameWidth {
			nameWidth = w
		}
		if w := runewidth.StringWidth(value); w > valueWidth {
			valueWidth = w
		}
		rows = append(rows, [2]string{name, value})
	}

	var sb strings.Builder
	for i, item := range items {
		name, value := rows[i][0], rows[i][1]
		sb.WriteString(Swatch(item.Color))
		sb.WriteString(" ")
		sb.WriteString(labelStyle.Render(name))
		sb.WriteString(strings.Repeat(" ", nameWidth-runewidth.StringWidth(name)+2))
		sb.WriteString(strings.Repeat(" ", valueWidth-runewidth.StringWidth(value)))
		sb.WriteString(valueStyle.Render(value))
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}
	return boxStyle.Render(sb.String())
}

// LegendLine renders the series side by side, the way the browser legend
// lays them out.
func LegendLine(cfg chartstyle.StyleConfig, theme chartstyle.Theme) string {
	keys := sortedKeys(cfg)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		entry := cfg[key]
		parts = append(parts, Swatch(entry.Color.ColorFor(theme))+" "+labelStyle.Render(displayLabel(entry, key)))
	}
	return strings.Join(parts, "   ")
}

// Render assembles the full preview for one theme.
func Render(cfg chartstyle.StyleConfig, theme chartstyle.Theme, width int) string {
	sections := []string{
		titleStyle.Render(fmt.Sprintf("chartstyle preview (%s theme)", theme)),
		"",
		Palette(cfg, theme),
		titleStyle.Render("Tooltip"),
		TooltipMockup(cfg, theme),
		"",
		titleStyle.Render("Legend"),
		LegendLine(cfg, theme),
		"",
	}
	out := strings.Join(sections, "\n")
	if width > 0 {
		out = lipgloss.NewStyle().MaxWidth(width).Render(out)
	}
	return out
}

func displayLabel(entry chartstyle.SeriesStyle, key string) string {
	if entry.Label != "" {
		return entry.Label
	}
	return key
}

func sortedKeys(cfg chartstyle.StyleConfig) []string {
	keys := make([]string, 0, len(cfg))
	for key := range cfg {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
