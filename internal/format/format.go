package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Price renders a USD price for display:
// >= 1000 grouped integer, >= 1 two decimals, below 1 six decimals.
func Price(p float64) string {
	switch {
	case p >= 1000:
		return humanize.Comma(int64(math.Round(p)))
	case p >= 1:
		return group2(p)
	default:
		return fmt.Sprintf("%.6f", p)
	}
}

// Compact renders large magnitudes with T/B/M suffixes at 1e12/1e9/1e6.
// Below 1e6 falls back to grouped integer notation.
func Compact(n float64) string {
	switch {
	case n >= 1e12:
		return fmt.Sprintf("%.2fT", n/1e12)
	case n >= 1e9:
		return fmt.Sprintf("%.2fB", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%.2fM", n/1e6)
	default:
		return humanize.Comma(int64(math.Round(n)))
	}
}

// Change renders a 24h percent change with explicit sign and two decimals.
func Change(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}

// group2 formats with two decimals and thousands separators in the integer part.
func group2(p float64) string {
	s := fmt.Sprintf("%.2f", p)
	dot := strings.IndexByte(s, '.')
	var whole int64
	if _, err := fmt.Sscanf(s[:dot], "%d", &whole); err != nil {
		return s
	}
	return humanize.Comma(whole) + s[dot:]
}
