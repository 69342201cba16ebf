// Package dateformat implements the single-character date pattern language used
// by content templates ("F j, Y", "Ymd", "D, d M Y H:i:s O") on top of the time
// package. Format covers the full output vocabulary; Parse covers the subset
// needed to read stored date values back.
package dateformat

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format renders t using pattern. Unknown characters are copied verbatim and a
// backslash escapes the following character.
func Format(t time.Time, pattern string) string {
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
		if token, ok := formatToken(t, r); ok {
			b.WriteString(token)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatToken(t time.Time, r rune) (string, bool) {
	switch r {
	// Day
	case 'd':
		return pad2(t.Day()), true
	case 'D':
		return t.Format("Mon"), true
	case 'j':
		return strconv.Itoa(t.Day()), true
	case 'l':
		return t.Weekday().String(), true
	case 'N':
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		return strconv.Itoa(wd), true
	case 'S':
		return ordinalSuffix(t.Day()), true
	case 'w':
		return strconv.Itoa(int(t.Weekday())), true
	case 'z':
		return strconv.Itoa(t.YearDay() - 1), true

	// Week
	case 'W':
		_, week := t.ISOWeek()
		return pad2(week), true

	// Month
	case 'F':
		return t.Month().String(), true
	case 'm':
		return pad2(int(t.Month())), true
	case 'M':
		return t.Format("Jan"), true
	case 'n':
		return strconv.Itoa(int(t.Month())), true
	case 't':
		return strconv.Itoa(daysIn(t.Month(), t.Year())), true

	// Year
	case 'L':
		if isLeap(t.Year()) {
			return "1", true
		}
		return "0", true
	case 'o':
		year, _ := t.ISOWeek()
		return strconv.Itoa(year), true
	case 'Y':
		return fmt.Sprintf("%04d", t.Year()), true
	case 'y':
		return t.Format("06"), true

	// Time
	case 'a':
		return t.Format("pm"), true
	case 'A':
		return t.Format("PM"), true
	case 'g':
		return t.Format("3"), true
	case 'G':
		return strconv.Itoa(t.Hour()), true
	case 'h':
		return t.Format("03"), true
	case 'H':
		return pad2(t.Hour()), true
	case 'i':
		return pad2(t.Minute()), true
	case 's':
		return pad2(t.Second()), true
	case 'u':
		return fmt.Sprintf("%06d", t.Nanosecond()/int(time.Microsecond)), true
	case 'v':
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond)), true

	// Timezone
	case 'e':
		return t.Location().String(), true
	case 'T':
		name, _ := t.Zone()
		return name, true
	case 'O':
		return t.Format("-0700"), true
	case 'P':
		return t.Format("-07:00"), true
	case 'p':
		if _, offset := t.Zone(); offset == 0 {
			return "Z", true
		}
		return t.Format("-07:00"), true
	case 'Z':
		_, offset := t.Zone()
		return strconv.Itoa(offset), true

	// Full date/time
	case 'c':
		return t.Format("2006-01-02T15:04:05-07:00"), true
	case 'r':
		return t.Format("Mon, 02 Jan 2006 15:04:05 -0700"), true
	case 'U':
		return strconv.FormatInt(t.Unix(), 10), true
	}
	return "", false
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
