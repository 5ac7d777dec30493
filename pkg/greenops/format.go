package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders a count for prose: grouped digits below a million,
// "~1.5 million" and "~2.0 billion" above, scientific notation past a trillion.
func FormatCount(v float64) string {
	switch {
	case v >= scientificN:
		return fmt.Sprintf("~%.1e", v)
	case v >= billion:
		return fmt.Sprintf("~%.1f billion", v/billion)
	case v >= million:
		return fmt.Sprintf("~%.1f million", v/million)
	default:
		return printer.Sprintf("%d", int64(math.Round(v)))
	}
}
