package chartstyle

import (
	"context"
	"html"
	"strings"

	"github.com/viznest/chartstyle/internal/classname"
)

// LegendOptions carries the engine-reported legend entries plus the caller's
// presentation choices.
type LegendOptions struct {
	// Items is the legend payload reported by the engine.
	Items []DataItem
	// NameKey overrides the candidate key used to resolve each entry.
	NameKey string
	// HideIcon forces the color swatch even when the entry declares an icon.
	HideIcon bool
	// VerticalAlign is "top" or "bottom" (the default). It only affects
	// spacing, never which entries render.
	VerticalAlign string
}

// Legend renders the legend fragment, or the empty string when no items were
// reported. The styling configuration is read from ctx, so Legend must run
// under a Container scope.
func Legend(ctx context.Context, opts LegendOptions) string {
	if len(opts.Items) == 0 {
		return ""
	}
	cfg := FromContext(ctx)

	var sb strings.Builder
	sb.WriteString(`<div class="` + classname.Join(
		"flex items-center justify-center gap-4",
		classname.If(opts.VerticalAlign == "top", "pb-3"),
		classname.If(opts.VerticalAlign != "top", "pt-3"),
	) + `">`)

	for _, item := range opts.Items {
		key := "value"
		switch {
		case opts.NameKey != "":
			key = opts.NameKey
		case item.DataKey != "":
			key = item.DataKey
		}
		entry, resolved := Resolve(cfg, item, key)

		name := item.Name
		if resolved && entry.Label != "" {
			name = entry.Label
		}

		sb.WriteString(`<div class="flex items-center gap-1.5">`)
		if resolved && entry.Icon != "" && !opts.HideIcon {
			sb.WriteString(`<span class="` + html.EscapeString(classname.Join("icon", entry.Icon)) + `" aria-hidden="true"></span>`)
		} else {
			style := ""
			if item.Color != "" {
				style = ` style="background-color: ` + html.EscapeString(item.Color) + `"`
			}
			sb.WriteString(`<span class="h-2 w-2 shrink-0 rounded-[2px]"` + style + `></span>`)
		}
		sb.WriteString(`<span>` + html.EscapeString(name) + `</span>`)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}
