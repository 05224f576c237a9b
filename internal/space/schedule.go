package space

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Weekday is a lowercase day name as stored in schedule strings.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdayNames = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// IsBookable reports whether the day can appear in a schedule.
// Spaces only operate monday through friday.
func (d Weekday) IsBookable() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// DayOf returns the weekday of a date evaluated in UTC, so the result
// does not depend on the server's local timezone.
func DayOf(date time.Time) Weekday {
	return weekdayNames[date.UTC().Weekday()]
}

// ParseDate parses a YYYY-MM-DD date string at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// TimeOfDay is a clock time expressed as minutes since midnight.
type TimeOfDay int

// MinutesPerDay bounds a TimeOfDay to [0, 1440).
const MinutesPerDay = 24 * 60

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into minutes since
// midnight. Seconds are accepted for database round trips but ignored.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	for _, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	if len(parts) == 3 {
		seconds, err := strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
	}

	return TimeOfDay(hours*60 + minutes), nil
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// At anchors the time of day onto a date, in UTC.
func (t TimeOfDay) At(date time.Time) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), int(t)/60, int(t)%60, 0, 0, time.UTC)
}

// ScheduleBlock is one contiguous open window on a given weekday.
type ScheduleBlock struct {
	Day   Weekday
	Start TimeOfDay
	End   TimeOfDay
}

// Schedule is the parsed form of a space's weekly schedule string,
// e.g. "monday-09:00-18:00|tuesday-09:00-12:30".
type Schedule []ScheduleBlock

// ParseSchedule parses a weekly schedule string. It fails on the first
// malformed entry: wrong shape, unknown or weekend day, bad time, or a
// block whose start is not strictly before its end.
func ParseSchedule(s string) (Schedule, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty schedule", ErrInvalidSchedule)
	}

	var schedule Schedule
	for _, entry := range strings.Split(s, "|") {
		parts := strings.SplitN(entry, "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: entry %q", ErrInvalidSchedule, entry)
		}

		day := Weekday(parts[0])
		if !day.IsBookable() {
			return nil, fmt.Errorf("%w: day %q in entry %q", ErrInvalidSchedule, parts[0], entry)
		}

		times := strings.Split(parts[1], "-")
		if len(times) != 2 {
			return nil, fmt.Errorf("%w: entry %q", ErrInvalidSchedule, entry)
		}

		start, err := ParseTimeOfDay(times[0])
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q", ErrInvalidSchedule, entry)
		}
		end, err := ParseTimeOfDay(times[1])
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q", ErrInvalidSchedule, entry)
		}
		if start >= end {
			return nil, fmt.Errorf("%w: entry %q starts at or after its end", ErrInvalidSchedule, entry)
		}

		schedule = append(schedule, ScheduleBlock{Day: day, Start: start, End: end})
	}

	return schedule, nil
}

// Validate checks that no two blocks on the same day overlap. Blocks
// that merely touch (one ends when the next starts) are allowed.
func (s Schedule) Validate() error {
	byDay := make(map[Weekday][]ScheduleBlock)
	for _, b := range s {
		byDay[b.Day] = append(byDay[b.Day], b)
	}

	for day, blocks := range byDay {
		sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start < blocks[j].Start })
		for i := 1; i < len(blocks); i++ {
			if blocks[i].Start < blocks[i-1].End {
				return fmt.Errorf("%w: overlapping blocks on %s", ErrInvalidSchedule, day)
			}
		}
	}
	return nil
}

// BlocksOn returns the blocks scheduled for the given day, sorted by
// start time.
func (s Schedule) BlocksOn(day Weekday) []ScheduleBlock {
	var blocks []ScheduleBlock
	for _, b := range s {
		if b.Day == day {
			blocks = append(blocks, b)
		}
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start < blocks[j].Start })
	return blocks
}

// String serializes the schedule back to its storage form.
func (s Schedule) String() string {
	entries := make([]string, 0, len(s))
	for _, b := range s {
		entries = append(entries, fmt.Sprintf("%s-%s-%s", b.Day, b.Start, b.End))
	}
	return strings.Join(entries, "|")
}
