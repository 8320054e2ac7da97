package chartstyle

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/viznest/chartstyle/internal/classname"
)

// Indicator selects the swatch style drawn next to each tooltip row.
type Indicator string

const (
	IndicatorDot    Indicator = "dot"
	IndicatorLine   Indicator = "line"
	IndicatorDashed Indicator = "dashed"
)

// TooltipOptions carries the engine-reported hover state plus the caller's
// presentation choices for one tooltip render.
type TooltipOptions struct {
	// Active reports whether the engine considers the tooltip visible.
	Active bool
	// Items is the payload the engine reported for the hovered position.
	Items []DataItem

	// Label is a literal label supplied by the caller. When LabelKey is
	// empty it takes precedence over resolver output: it is first tried as
	// a config key (using that entry's label), then shown verbatim.
	Label string
	// LabelKey forces indirect label resolution through Resolve.
	LabelKey string
	// NameKey overrides the per-row candidate key.
	NameKey string

	// Indicator selects the swatch style; the zero value means IndicatorDot.
	Indicator     Indicator
	HideLabel     bool
	HideIndicator bool

	// Color overrides the indicator color for every row.
	Color string

	// LabelFormatter receives the derived label and the full item collection;
	// its return value is rendered verbatim in place of the label.
	LabelFormatter func(label string, items []DataItem) string
	// ValueFormatter overrides FormatValue for row values.
	ValueFormatter func(value any) string
}

// Tooltip renders the tooltip fragment for the given hover state. It returns
// the empty string when the tooltip is inactive or no items were reported.
// The styling configuration is read from ctx, so Tooltip must run under a
// Container scope.
func Tooltip(ctx context.Context, opts TooltipOptions) string {
	if !opts.Active || len(opts.Items) == 0 {
		return ""
	}
	cfg := FromContext(ctx)

	indicator := opts.Indicator
	if indicator == "" {
		indicator = IndicatorDot
	}

	// With a single row and a non-dot indicator the label moves into the row
	// so it lines up with the stretched indicator.
	nestLabel := len(opts.Items) == 1 && indicator != IndicatorDot
	label := tooltipLabel(cfg, opts)

	var sb strings.Builder
	sb.WriteString(`<div class="grid min-w-[8rem] items-start gap-1.5 rounded-lg border border-border/50 bg-background px-2.5 py-1.5 text-xs shadow-xl">`)
	if !nestLabel {
		sb.WriteString(label)
	}
	sb.WriteString(`<div class="grid gap-1.5">`)
	for _, item := range opts.Items {
		sb.WriteString(tooltipRow(cfg, opts, item, indicator, nestLabel, label))
	}
	sb.WriteString(`</div></div>`)
	return sb.String()
}

// tooltipLabel renders the label line, or the empty string when it is
// suppressed. The candidate key is the explicit LabelKey, else the first
// item's series key, else its name, else "value".
func tooltipLabel(cfg StyleConfig, opts TooltipOptions) string {
	if opts.HideLabel || len(opts.Items) == 0 {
		return ""
	}
	item := opts.Items[0]

	key := "value"
	switch {
	case opts.LabelKey != "":
		key = opts.LabelKey
	case item.DataKey != "":
		key = item.DataKey
	case item.Name != "":
		key = item.Name
	}
	entry, _ := Resolve(cfg, item, key)

	var value string
	if opts.LabelKey == "" && opts.Label != "" {
		// A literal label wins over indirect resolution: try it as a config
		// key first, then show it as-is.
		value = opts.Label
		if labeled, ok := cfg[opts.Label]; ok && labeled.Label != "" {
			value = labeled.Label
		}
	} else {
		value = entry.Label
	}

	if opts.LabelFormatter != nil {
		return `<div class="font-medium">` + opts.LabelFormatter(value, opts.Items) + `</div>`
	}
	if value == "" {
		return ""
	}
	return `<div class="font-medium">` + html.EscapeString(value) + `</div>`
}

func tooltipRow(cfg StyleConfig, opts TooltipOptions, item DataItem, indicator Indicator, nestLabel bool, label string) string {
	key := "value"
	switch {
	case opts.NameKey != "":
		key = opts.NameKey
	case item.Name != "":
		key = item.Name
	case item.DataKey != "":
		key = item.DataKey
	}
	entry, resolved := Resolve(cfg, item, key)

	color := opts.Color
	if color == "" {
		if fill, ok := item.payloadString("fill"); ok {
			color = fill
		} else {
			color = item.Color
		}
	}

	name := item.Name
	if resolved && entry.Label != "" {
		name = entry.Label
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + classname.Join(
		"flex w-full flex-wrap items-stretch gap-2",
		classname.If(indicator == IndicatorDot, "items-center"),
	) + `">`)

	switch {
	case resolved && entry.Icon != "":
		sb.WriteString(`<span class="` + html.EscapeString(classname.Join("icon", entry.Icon)) + `" aria-hidden="true"></span>`)
	case !opts.HideIndicator:
		sb.WriteString(indicatorSpan(indicator, color, nestLabel))
	}

	sb.WriteString(`<div class="` + classname.Join(
		"flex flex-1 justify-between leading-none",
		classname.If(nestLabel, "items-end"),
		classname.If(!nestLabel, "items-center"),
	) + `">`)
	sb.WriteString(`<div class="grid gap-1.5">`)
	if nestLabel {
		sb.WriteString(label)
	}
	sb.WriteString(`<span class="text-muted-foreground">` + html.EscapeString(name) + `</span>`)
	sb.WriteString(`</div>`)

	if item.Value != nil {
		format := opts.ValueFormatter
		if format == nil {
			format = FormatValue
		}
		sb.WriteString(`<span class="font-mono font-medium tabular-nums text-foreground">` + html.EscapeString(format(item.Value)) + `</span>`)
	}
	sb.WriteString(`</div></div>`)
	return sb.String()
}

// indicatorSpan draws the color swatch. The colors ride on CSS custom
// properties so the host page's utility classes pick them up.
func indicatorSpan(indicator Indicator, color string, nestLabel bool) string {
	class := classname.Join(
		"shrink-0 rounded-[2px] border-[--color-border] bg-[--color-bg]",
		classname.If(indicator == IndicatorDot, "h-2.5 w-2.5"),
		classname.If(indicator == IndicatorLine, "w-1"),
		classname.If(indicator == IndicatorDashed, "w-0 border-[1.5px] border-dashed bg-transparent"),
		classname.If(indicator == IndicatorDashed && nestLabel, "my-0.5"),
	)
	style := ""
	if color != "" {
		style = fmt.Sprintf(` style="--color-bg: %s; --color-border: %s"`, html.EscapeString(color), html.EscapeString(color))
	}
	return `<span class="` + class + `"` + style + `></span>`
}
