package dateformat

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2023, time.January, 15, 14, 5, 9, 123456000, time.UTC)

	cases := []struct {
		pattern string
		want    string
	}{
		{"F j, Y", "January 15, 2023"},
		{"Ymd", "20230115"},
		{"d/m/y", "15/01/23"},
		{"D, d M Y", "Sun, 15 Jan 2023"},
		{"l jS \\o\\f F", "Sunday 15th of January"},
		{"g:i a", "2:05 pm"},
		{"h:i:s A", "02:05:09 PM"},
		{"G.H", "14.14"},
		{"N w z t L", "7 0 14 31 0"},
		{"u v", "123456 123"},
		{"c", "2023-01-15T14:05:09+00:00"},
		{"O P p Z", "+0000 +00:00 Z 0"},
		{"U", "1673791509"},
		{"W o", "02 2023"},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			if got := Format(ts, tc.pattern); got != tc.want {
				t.Fatalf("Format(%q) = %q, want %q", tc.pattern, got, tc.want)
			}
		})
	}
}

func TestOrdinalSuffix(t *testing.T) {
	want := map[int]string{1: "st", 2: "nd", 3: "rd", 4: "th", 11: "th", 12: "th", 13: "th", 21: "st", 22: "nd", 23: "rd", 31: "st"}
	for day, suffix := range want {
		if got := ordinalSuffix(day); got != suffix {
			t.Fatalf("ordinalSuffix(%d) = %q, want %q", day, got, suffix)
		}
	}
}

func TestFormatLeapYear(t *testing.T) {
	ts := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	if got := Format(ts, "t L"); got != "29 1" {
		t.Fatalf("unexpected leap output %q", got)
	}
}

func TestFormatPadsYear(t *testing.T) {
	ts, err := Parse("Ymd", "00120115", time.UTC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := Format(ts, "F j, Y"); got != "January 15, 0012" {
		t.Fatalf("unexpected padded year %q", got)
	}
}
