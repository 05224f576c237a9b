package reservation

import (
	"fmt"
	"strings"
	"time"
)

// Period is a reservation time span stored as a single string column.
// The canonical form is "<date> <start>|<date> <end>"; legacy rows use
// "-" as the separator instead of "|".
type Period struct {
	Start time.Time
	End   time.Time
}

var periodLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParsePeriod parses both the canonical and the legacy period formats.
// The legacy separator is ambiguous because dates contain dashes, so
// candidate split points are tried until both halves parse.
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Period{}, fmt.Errorf("%w: empty period", ErrInvalidPeriod)
	}

	if strings.Contains(s, "|") {
		parts := strings.Split(s, "|")
		if len(parts) != 2 {
			return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
		}
		return buildPeriod(parts[0], parts[1], s)
	}

	for i := strings.Index(s, "-"); i >= 0; i = nextIndex(s, i) {
		p, err := buildPeriod(s[:i], s[i+1:], s)
		if err == nil {
			return p, nil
		}
	}
	return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
}

func nextIndex(s string, after int) int {
	rel := strings.Index(s[after+1:], "-")
	if rel < 0 {
		return -1
	}
	return after + 1 + rel
}

func buildPeriod(startStr, endStr, raw string) (Period, error) {
	start, err := parseStamp(startStr)
	if err != nil {
		return Period{}, err
	}
	end, err := parseStamp(endStr)
	if err != nil {
		return Period{}, err
	}
	if !start.Before(end) {
		return Period{}, fmt.Errorf("%w: %q starts at or after its end", ErrInvalidPeriod, raw)
	}
	return Period{Start: start, End: end}, nil
}

func parseStamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrInvalidPeriod, s)
}

// String serializes the period in the canonical form.
func (p Period) String() string {
	return p.Start.Format("2006-01-02 15:04") + "|" + p.End.Format("2006-01-02 15:04")
}
