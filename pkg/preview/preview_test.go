package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viznest/chartstyle/chartstyle"
)

var previewCfg = chartstyle.StyleConfig{
	"revenue": {Label: "Revenue", Color: chartstyle.Solid("#3366ff")},
	"churn": {Label: "Churn", Color: chartstyle.Themed(map[chartstyle.Theme]string{
		chartstyle.ThemeLight: "#888888",
		chartstyle.ThemeDark:  "#cccccc",
	})},
	"notes": {Label: "Notes"},
}

func TestPalette_ListsEverySeries_WithThemeColors(t *testing.T) {
	t.Parallel()

	light := Palette(previewCfg, chartstyle.ThemeLight)
	assert.Contains(t, light, "Revenue")
	assert.Contains(t, light, "#3366ff")
	assert.Contains(t, light, "#888888")
	assert.Contains(t, light, "(no color)", "colorless series stay visible")

	dark := Palette(previewCfg, chartstyle.ThemeDark)
	assert.Contains(t, dark, "#cccccc")
	assert.NotContains(t, dark, "#888888")
}

func TestSampleItems_AreDeterministic(t *testing.T) {
	t.Parallel()

	first := SampleItems(previewCfg, chartstyle.ThemeLight)
	second := SampleItems(previewCfg, chartstyle.ThemeLight)
	require.Equal(t, first, second)

	require.Len(t, first, 3)
	assert.Equal(t, "churn", first[0].DataKey, "items follow sorted key order")
}

func TestRender_AssemblesAllSections(t *testing.T) {
	t.Parallel()

	out := Render(previewCfg, chartstyle.ThemeLight, 100)
	assert.Contains(t, out, "chartstyle preview (light theme)")
	assert.Contains(t, out, "Tooltip")
	assert.Contains(t, out, "Legend")
	assert.Contains(t, out, "1,200", "sample values render with digit grouping")
}

func TestModel_TogglesTheme_OnKeypress(t *testing.T) {
	t.Parallel()

	model := NewModel(previewCfg)
	require.Equal(t, chartstyle.ThemeLight, model.Theme())

	resized, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	toggled, _ := resized.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	require.Equal(t, chartstyle.ThemeDark, toggled.(Model).Theme())

	again, _ := toggled.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	assert.Equal(t, chartstyle.ThemeLight, again.(Model).Theme())
}

func TestModel_ViewShowsHelp_AfterResize(t *testing.T) {
	t.Parallel()

	model := NewModel(previewCfg)
	assert.Contains(t, model.View(), "Loading preview")

	resized, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := resized.(Model).View()
	assert.Contains(t, view, "toggle theme")
	assert.Contains(t, view, "chartstyle")
}
