package dateformat

import (
	"fmt"
	"strings"
	"time"
)

var parseLayouts = map[rune]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'n': "1",
	'd': "02",
	'j': "2",
	'H': "15",
	'G': "15",
	'h': "03",
	'g': "3",
	'i': "04",
	's': "05",
	'A': "PM",
	'a': "pm",
	'F': "January",
	'M': "Jan",
	'D': "Mon",
	'l': "Monday",
	'O': "-0700",
	'P': "-07:00",
}

// Layout translates pattern into a time package layout. Characters without a
// parse equivalent are rejected.
func Layout(pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("dateformat: empty pattern")
	}

	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' {
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
			continue
		}
		if layout, ok := parseLayouts[r]; ok {
			b.WriteString(layout)
			continue
		}
		if isPatternLetter(r) {
			return "", fmt.Errorf("dateformat: pattern character %q is not supported for parsing", r)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Parse reads value according to pattern. Fields absent from the pattern are
// zero (midnight for time-of-day). loc defaults to UTC.
func Parse(pattern, value string, loc *time.Location) (time.Time, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(layout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("dateformat: parse %q with %q: %w", value, pattern, err)
	}
	return t, nil
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
