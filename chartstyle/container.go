package chartstyle

import (
	"context"
	"fmt"
	"strings"
)

// Container renders the wrapper element that hosts a chart engine's output.
// It publishes cfg for descendant renderers via the context passed to
// children, and embeds the CSS emitter's output in a style element. When no
// entry declares a color the style element is omitted entirely.
//
// scopeID keys the emitted custom properties to this container; pass the
// empty string to have one generated with ChartID.
func Container(ctx context.Context, cfg StyleConfig, scopeID string, children func(ctx context.Context) string) string {
	if scopeID == "" {
		scopeID = ChartID()
	}
	ctx = NewContext(ctx, cfg)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<div data-chart=%q class="flex aspect-video justify-center text-xs">`, scopeID)
	if css := CSS(scopeID, cfg); css != "" {
		sb.WriteString("<style>")
		sb.WriteString(css)
		sb.WriteString("</style>")
	}
	if children != nil {
		sb.WriteString(children(ctx))
	}
	sb.WriteString("</div>")
	return sb.String()
}
