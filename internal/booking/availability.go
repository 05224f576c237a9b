package booking

import (
	"sort"
	"time"

	"github.com/coworkly/coworkly-backend/internal/space"
)

// DefaultGranularity is the slot step offered to clients, in minutes.
const DefaultGranularity = 60

// OpenInterval is a contiguous unbooked window within a schedule block.
type OpenInterval struct {
	Start space.TimeOfDay
	End   space.TimeOfDay
}

// ClosedReason explains why a date has no open intervals.
type ClosedReason string

const (
	ReasonWeekend     ClosedReason = "weekend"
	ReasonUnscheduled ClosedReason = "unscheduled"
	ReasonFullyBooked ClosedReason = "fully_booked"
)

// Boundary event kinds, in tie-break order for equal times. Opening a
// block before closing a booking at the same instant, and starting a
// booking before closing the block, avoids both zero-width intervals
// and duplicate emissions.
const (
	pointOpen = iota
	pointBookedEnd
	pointBookedStart
	pointClose
)

type timePoint struct {
	at   space.TimeOfDay
	kind int
}

// OpenIntervals computes the unbooked windows of a space on a date.
//
// The date's weekday is evaluated in UTC. Weekends always yield no
// intervals. Bookings are filtered to the given space, to the given
// UTC date, and cancelled ones are ignored. The result is sorted and
// the computation is pure.
func OpenIntervals(schedule space.Schedule, bookings []*Booking, date time.Time, spaceID string) []OpenInterval {
	day := space.DayOf(date)
	if !day.IsBookable() {
		return nil
	}

	blocks := schedule.BlocksOn(day)
	if len(blocks) == 0 {
		return nil
	}

	relevant := bookingsOn(bookings, spaceID, date)

	var intervals []OpenInterval
	for _, block := range blocks {
		intervals = append(intervals, sweepBlock(block, relevant)...)
	}
	return intervals
}

// bookingsOn filters to non-cancelled bookings of the space starting
// on the same UTC calendar date.
func bookingsOn(bookings []*Booking, spaceID string, date time.Time) []*Booking {
	y, m, d := date.UTC().Date()

	var out []*Booking
	for _, b := range bookings {
		if b.SpaceID != spaceID || b.Status == StatusCancelled {
			continue
		}
		by, bm, bd := b.StartTime.UTC().Date()
		if by == y && bm == m && bd == d {
			out = append(out, b)
		}
	}
	return out
}

// sweepBlock subtracts bookings from one schedule block. Only bookings
// overlapping the block enter the sweep; overlap is checked by time,
// not by date alone.
func sweepBlock(block space.ScheduleBlock, bookings []*Booking) []OpenInterval {
	points := []timePoint{
		{at: block.Start, kind: pointOpen},
		{at: block.End, kind: pointClose},
	}

	for _, b := range bookings {
		start := minuteOfDay(b.StartTime)
		end := minuteOfDay(b.EndTime)
		if start >= block.End || end <= block.Start {
			continue
		}
		// Clamp spill-over to the block bounds so the events stay
		// inside the sweep range. A booking covering the whole block
		// then collapses it to zero intervals.
		if start < block.Start {
			start = block.Start
		}
		if end > block.End {
			end = block.End
		}
		points = append(points, timePoint{at: start, kind: pointBookedStart})
		points = append(points, timePoint{at: end, kind: pointBookedEnd})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].at != points[j].at {
			return points[i].at < points[j].at
		}
		return points[i].kind < points[j].kind
	})

	var intervals []OpenInterval
	available := false
	var rangeStart space.TimeOfDay

	for _, p := range points {
		switch p.kind {
		case pointOpen:
			available = true
			rangeStart = p.at
		case pointBookedStart:
			if available && p.at > rangeStart {
				intervals = append(intervals, OpenInterval{Start: rangeStart, End: p.at})
			}
			available = false
		case pointBookedEnd:
			available = true
			rangeStart = p.at
		case pointClose:
			if available && p.at > rangeStart {
				intervals = append(intervals, OpenInterval{Start: rangeStart, End: p.at})
			}
			available = false
		}
	}
	return intervals
}

func minuteOfDay(t time.Time) space.TimeOfDay {
	u := t.UTC()
	return space.TimeOfDay(u.Hour()*60 + u.Minute())
}

// StartSlots derives offerable start times from open intervals: from
// each interval start, stepping by granularity, keeping times where a
// full slot still fits before the interval ends. Intervals shorter
// than the granularity contribute nothing.
func StartSlots(intervals []OpenInterval, granularity int) []space.TimeOfDay {
	if granularity <= 0 {
		return nil
	}

	var slots []space.TimeOfDay
	g := space.TimeOfDay(granularity)
	for _, iv := range intervals {
		for v := iv.Start; v+g <= iv.End; v += g {
			slots = append(slots, v)
		}
	}
	return slots
}

// EndSlots derives offerable end times for a chosen start within its
// enclosing interval: from start+granularity up to and including the
// interval end, stepping by granularity.
func EndSlots(start space.TimeOfDay, interval OpenInterval, granularity int) []space.TimeOfDay {
	if granularity <= 0 {
		return nil
	}

	var slots []space.TimeOfDay
	g := space.TimeOfDay(granularity)
	for v := start + g; v <= interval.End; v += g {
		slots = append(slots, v)
	}
	return slots
}

// EnclosingInterval returns the interval containing t, if any.
func EnclosingInterval(intervals []OpenInterval, t space.TimeOfDay) (OpenInterval, bool) {
	for _, iv := range intervals {
		if iv.Start <= t && t < iv.End {
			return iv, true
		}
	}
	return OpenInterval{}, false
}

// IsValidTimeRange reports whether end is strictly after start.
func IsValidTimeRange(start, end space.TimeOfDay) bool {
	return start < end
}

// Availability is the computed result for one space and date.
type Availability struct {
	Date          time.Time
	ClosedReason  ClosedReason
	OpenIntervals []OpenInterval
	StartSlots    []space.TimeOfDay
}

// ComputeAvailability bundles OpenIntervals and StartSlots with the
// reason a date is closed, so callers can tell a weekend from a fully
// booked day.
func ComputeAvailability(schedule space.Schedule, bookings []*Booking, date time.Time, spaceID string) *Availability {
	a := &Availability{Date: date}

	day := space.DayOf(date)
	if !day.IsBookable() {
		a.ClosedReason = ReasonWeekend
		return a
	}
	if len(schedule.BlocksOn(day)) == 0 {
		a.ClosedReason = ReasonUnscheduled
		return a
	}

	a.OpenIntervals = OpenIntervals(schedule, bookings, date, spaceID)
	a.StartSlots = StartSlots(a.OpenIntervals, DefaultGranularity)
	if len(a.OpenIntervals) == 0 {
		a.ClosedReason = ReasonFullyBooked
	}
	return a
}
