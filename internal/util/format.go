package util

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatCurrency formats a value in Brazilian reais: "R$ 1.234,56",
// "-R$ 50,00".
func FormatCurrency(v float64) string {
	v = roundCents(v)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "R$ " + humanize.FormatFloat("#.###,##", v)
}

// FormatNumber formats a value with pt-BR grouping and only the decimals it
// needs, up to two: "7.350", "-48", "12,5".
func FormatNumber(v float64) string {
	v = roundCents(v)
	if v == math.Trunc(v) {
		return humanize.FormatFloat("#.###,", v)
	}
	s := humanize.FormatFloat("#.###,##", v)
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ",")
}

// roundCents rounds to two decimals; anything that rounds to zero becomes a
// positive zero so no "-0" is printed.
func roundCents(v float64) float64 {
	v = math.Round(v*100) / 100
	if v == 0 {
		return 0
	}
	return v
}

// FormatWeight formats a weight in kilograms: "33.345 kg".
func FormatWeight(kg float64) string {
	return FormatNumber(kg) + " kg"
}

// FormatCount formats an integer count with pt-BR grouping.
func FormatCount(n int) string {
	return humanize.FormatInteger("#.###,", n)
}

// FormatTimestamp formats the last update time as "16/10/2026 14:05".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006 15:04")
}

// FormatOptional renders a missing value as a dash.
func FormatOptional(s string, ok bool) string {
	if !ok || strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
