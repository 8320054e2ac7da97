package chartstyle

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// CSS emits the scoped stylesheet for cfg: one block per registered theme,
// each declaring a --color-<key> custom property for every series that
// carries a color. Entries without a color declaration produce nothing, and
// a config with no colored entries produces the empty string so callers can
// skip the style element entirely.
//
// The output is raw stylesheet text. scopeID must already be safe to embed
// in an attribute selector; ChartID generates such an identifier.
func CSS(scopeID string, cfg StyleConfig) string {
	keys := cfg.colorKeys()
	if len(keys) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, theme := range Themes() {
		fmt.Fprintf(&sb, "%s[data-chart=%s] {\n", theme.SelectorPrefix(), scopeID)
		for _, key := range keys {
			color := cfg[key].Color.ColorFor(theme)
			if color == "" {
				continue
			}
			fmt.Fprintf(&sb, "  --color-%s: %s;\n", key, color)
		}
		sb.WriteString("}\n")
	}
	return sb.String()
}

// ChartID returns a generated scope identifier: a fixed "chart-" prefix plus
// a random suffix, with any character that is not valid in an unquoted
// attribute selector stripped.
func ChartID() string {
	var buf [6]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand is documented never to fail on supported platforms.
		panic(fmt.Sprintf("chartstyle: reading random scope id: %v", err))
	}
	return sanitizeScopeID("chart-" + hex.EncodeToString(buf[:]))
}

func sanitizeScopeID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		}
		return -1
	}, id)
}
