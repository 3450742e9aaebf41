package utils

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatDuration renders minutes as "HH:MM", prefixed by whole days ("1d 02:30") past 24h.
func FormatDuration(minutes float64) string {
	seconds := int64(math.Round(minutes * 60))
	if seconds < 0 {
		seconds = 0
	}
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	out := fmt.Sprintf("%02d:%02d", hours, mins)
	if days > 0 {
		out = fmt.Sprintf("%dd %s", days, out)
	}
	return out
}

// FormatMoney renders an amount with thousands separators and two decimals, e.g. "R$ 1,234.50".
func FormatMoney(symbol string, amount float64) string {
	value := humanize.FormatFloat("#,###.##", amount)
	if symbol == "" {
		return value
	}
	return strings.TrimSpace(symbol) + " " + value
}

func sortStrings(s []string) {
	sort.Strings(s)
}
