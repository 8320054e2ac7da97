package chartstyle

// Theme names a visual theme scope understood by the style emitter. The
// registry is fixed at process start: "light" is the root scope, "dark" is
// scoped under a .dark ancestor, matching the class-toggle convention of the
// host page.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var themeSelectors = map[Theme]string{
	ThemeLight: "",
	ThemeDark:  ".dark ",
}

// Themes returns the registered themes in emission order.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}

// Known reports whether t is in the registry.
func (t Theme) Known() bool {
	_, ok := themeSelectors[t]
	return ok
}

// SelectorPrefix returns the CSS selector prefix that scopes t. The light
// theme has no prefix; unknown themes resolve to the root scope as well.
func (t Theme) SelectorPrefix() string {
	return themeSelectors[t]
}
