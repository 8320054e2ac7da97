package chartstyle

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var valuePrinter = message.NewPrinter(language.English)

// FormatValue renders a payload value for display. Numbers get grouped
// digits (1200 -> "1,200") to match what the browser surface shows; strings
// pass through; nil renders as the empty string. A caller-supplied
// ValueFormatter on TooltipOptions overrides this.
func FormatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case int:
		return valuePrinter.Sprintf("%v", number.Decimal(n))
	case int64:
		return valuePrinter.Sprintf("%v", number.Decimal(n))
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			return valuePrinter.Sprintf("%v", number.Decimal(int64(n)))
		}
		return valuePrinter.Sprintf("%v", number.Decimal(n))
	default:
		return fmt.Sprint(v)
	}
}
