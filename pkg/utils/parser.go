package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrEmptyValue is returned when a schedule cell is blank
	ErrEmptyValue = errors.New("utils: empty value")

	nonDateChars = regexp.MustCompile(`[^0-9/\-]`)

	portugueseMonths = []struct{ name, number string }{
		{"jan", "01"}, {"fev", "02"}, {"mar", "03"}, {"abr", "04"},
		{"mai", "05"}, {"jun", "06"}, {"jul", "07"}, {"ago", "08"},
		{"set", "09"}, {"out", "10"}, {"nov", "11"}, {"dez", "12"},
	}

	dateLayouts = []string{DATE_LAYOUT, ISO_DATE_LAYOUT, "02-01-2006", "02/01/06"}
)

// NormalizeCode trims and upper-cases a carrier or airport code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeCodes normalizes, de-duplicates and sorts a list of codes, dropping blanks.
func NormalizeCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		n := NormalizeCode(c)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sortStrings(out)
	return out
}

// CarrierFromService derives the carrier code from a tariff service name,
// e.g. "LATAM EXPRESSO" -> "LATAM".
func CarrierFromService(service string) string {
	fields := strings.Fields(service)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// ParseClock parses a schedule clock in H:MM, HH:MM or HH:MM:SS form into an offset from midnight.
func ParseClock(value string) (time.Duration, error) {
	s := strings.TrimSpace(value)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, ErrEmptyValue
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock %q", value)
	}
	limits := []int{23, 59, 59}
	var fields [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || part == "" || len(part) > 2 || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("invalid clock %q", value)
		}
		fields[i] = n
	}
	return time.Duration(fields[0])*time.Hour + time.Duration(fields[1])*time.Minute + time.Duration(fields[2])*time.Second, nil
}

// CombineDateClock places a clock offset on the calendar day of date, in date's location.
func CombineDateClock(date time.Time, clock time.Duration) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(clock)
}

// TruncateToDate drops the clock part of t
func TruncateToDate(t time.Time) time.Time {
	return CombineDateClock(t, 0)
}

// ParseDate parses the date formats found in schedule spreadsheets, including
// Portuguese month abbreviations ("05/jan/2025").
func ParseDate(value string) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return time.Time{}, ErrEmptyValue
	}
	for _, m := range portugueseMonths {
		if strings.Contains(s, m.name) {
			s = strings.Replace(s, m.name, m.number, 1)
			break
		}
	}
	s = nonDateChars.ReplaceAllString(s, "")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// ParseTariff parses a tariff cell. Blank, "-" and "N/A" cells return nil,
// meaning the price is unpublished.
func ParseTariff(value string) *float64 {
	s := strings.ToUpper(strings.TrimSpace(value))
	switch s {
	case "", "-", "NAN", "NONE", "N/A":
		return nil
	}
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
