// Package classname joins conditional class-name fragments for the HTML
// renderers.
package classname

import "strings"

// Join concatenates the non-empty fragments with single spaces.
func Join(classes ...string) string {
	var sb strings.Builder
	for _, class := range classes {
		if class == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(class)
	}
	return sb.String()
}

// If returns class when cond is true and the empty string otherwise, for use
// as a Join argument.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
