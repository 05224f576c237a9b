package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coworkly/coworkly-backend/internal/space"
)

const testSpaceID = "7b8a1f9e-3c4d-4e5f-8a9b-0c1d2e3f4a5b"

// monday is 2025-06-09.
var monday = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

func mustSchedule(t *testing.T, raw string) space.Schedule {
	t.Helper()
	s, err := space.ParseSchedule(raw)
	require.NoError(t, err)
	return s
}

func bookingAt(spaceID, status string, startHour, startMin, endHour, endMin int) *Booking {
	return &Booking{
		SpaceID:   spaceID,
		Status:    status,
		StartTime: time.Date(2025, 6, 9, startHour, startMin, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 9, endHour, endMin, 0, 0, time.UTC),
	}
}

func tod(hour, min int) space.TimeOfDay {
	return space.TimeOfDay(hour*60 + min)
}

func TestOpenIntervalsWeekend(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")
	bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 10, 0, 11, 0)}

	saturday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, OpenIntervals(schedule, bookings, saturday, testSpaceID))
	assert.Empty(t, OpenIntervals(schedule, bookings, sunday, testSpaceID))
}

func TestOpenIntervalsNoBookings(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")

	intervals := OpenIntervals(schedule, nil, monday, testSpaceID)
	assert.Equal(t, []OpenInterval{{Start: tod(9, 0), End: tod(17, 0)}}, intervals)
}

func TestOpenIntervalsSplitsAroundBooking(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")
	bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 10, 0, 11, 0)}

	intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
	assert.Equal(t, []OpenInterval{
		{Start: tod(9, 0), End: tod(10, 0)},
		{Start: tod(11, 0), End: tod(17, 0)},
	}, intervals)
}

func TestOpenIntervalsFullyBooked(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")
	bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 9, 0, 17, 0)}

	assert.Empty(t, OpenIntervals(schedule, bookings, monday, testSpaceID))
}

func TestOpenIntervalsIgnoresCancelled(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")
	bookings := []*Booking{bookingAt(testSpaceID, StatusCancelled, 9, 0, 17, 0)}

	intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
	assert.Equal(t, []OpenInterval{{Start: tod(9, 0), End: tod(17, 0)}}, intervals)
}

func TestOpenIntervalsPendingBlocks(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")
	bookings := []*Booking{bookingAt(testSpaceID, StatusPending, 12, 0, 13, 0)}

	intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
	assert.Equal(t, []OpenInterval{
		{Start: tod(9, 0), End: tod(12, 0)},
		{Start: tod(13, 0), End: tod(17, 0)},
	}, intervals)
}

func TestOpenIntervalsIgnoresOtherSpaces(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")
	bookings := []*Booking{bookingAt("11111111-2222-3333-4444-555555555555", StatusConfirmed, 9, 0, 17, 0)}

	intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
	assert.Equal(t, []OpenInterval{{Start: tod(9, 0), End: tod(17, 0)}}, intervals)
}

func TestOpenIntervalsIgnoresOtherDates(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00|tuesday-09:00-17:00")
	tuesdayBooking := &Booking{
		SpaceID:   testSpaceID,
		Status:    StatusConfirmed,
		StartTime: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 10, 17, 0, 0, 0, time.UTC),
	}

	intervals := OpenIntervals(schedule, []*Booking{tuesdayBooking}, monday, testSpaceID)
	assert.Equal(t, []OpenInterval{{Start: tod(9, 0), End: tod(17, 0)}}, intervals)
}

func TestOpenIntervalsUnsortedBookings(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")
	bookings := []*Booking{
		bookingAt(testSpaceID, StatusConfirmed, 14, 0, 15, 0),
		bookingAt(testSpaceID, StatusConfirmed, 10, 0, 11, 0),
	}

	intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
	assert.Equal(t, []OpenInterval{
		{Start: tod(9, 0), End: tod(10, 0)},
		{Start: tod(11, 0), End: tod(14, 0)},
		{Start: tod(15, 0), End: tod(17, 0)},
	}, intervals)
}

func TestOpenIntervalsAdjacentBookings(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")
	bookings := []*Booking{
		bookingAt(testSpaceID, StatusConfirmed, 10, 0, 11, 0),
		bookingAt(testSpaceID, StatusConfirmed, 11, 0, 12, 0),
	}

	// No zero-width interval between back-to-back bookings.
	intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
	assert.Equal(t, []OpenInterval{
		{Start: tod(9, 0), End: tod(10, 0)},
		{Start: tod(12, 0), End: tod(17, 0)},
	}, intervals)
}

func TestOpenIntervalsBookingAtBlockEdges(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")

	t.Run("booking starts at block open", func(t *testing.T) {
		bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 9, 0, 10, 0)}
		intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
		assert.Equal(t, []OpenInterval{{Start: tod(10, 0), End: tod(17, 0)}}, intervals)
	})

	t.Run("booking ends at block close", func(t *testing.T) {
		bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 16, 0, 17, 0)}
		intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
		assert.Equal(t, []OpenInterval{{Start: tod(9, 0), End: tod(16, 0)}}, intervals)
	})
}

func TestOpenIntervalsBookingSpillsOverBlock(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")

	t.Run("booking starts before block opens", func(t *testing.T) {
		bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 8, 0, 10, 0)}
		intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
		assert.Equal(t, []OpenInterval{{Start: tod(10, 0), End: tod(17, 0)}}, intervals)
	})

	t.Run("booking ends after block closes", func(t *testing.T) {
		bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 16, 0, 18, 0)}
		intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
		assert.Equal(t, []OpenInterval{{Start: tod(9, 0), End: tod(16, 0)}}, intervals)
	})

	t.Run("booking entirely outside block is ignored", func(t *testing.T) {
		bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 18, 0, 19, 0)}
		intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
		assert.Equal(t, []OpenInterval{{Start: tod(9, 0), End: tod(17, 0)}}, intervals)
	})

	t.Run("booking spilling over both ends fully covers the block", func(t *testing.T) {
		bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 8, 0, 18, 0)}
		intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
		assert.Empty(t, intervals)
	})

	t.Run("booking spanning both ends covers only the overlapped block", func(t *testing.T) {
		split := mustSchedule(t, "monday-09:00-12:00|monday-14:00-18:00")
		bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 8, 0, 13, 0)}
		intervals := OpenIntervals(split, bookings, monday, testSpaceID)
		assert.Equal(t, []OpenInterval{{Start: tod(14, 0), End: tod(18, 0)}}, intervals)
	})
}

func TestOpenIntervalsMultipleBlocks(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-12:00|monday-14:00-18:00")
	bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 15, 0, 16, 0)}

	intervals := OpenIntervals(schedule, bookings, monday, testSpaceID)
	assert.Equal(t, []OpenInterval{
		{Start: tod(9, 0), End: tod(12, 0)},
		{Start: tod(14, 0), End: tod(15, 0)},
		{Start: tod(16, 0), End: tod(18, 0)},
	}, intervals)
}

func TestOpenIntervalsIdempotent(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")
	bookings := []*Booking{
		bookingAt(testSpaceID, StatusConfirmed, 10, 0, 11, 0),
		bookingAt(testSpaceID, StatusPending, 13, 0, 14, 30),
	}

	first := OpenIntervals(schedule, bookings, monday, testSpaceID)
	second := OpenIntervals(schedule, bookings, monday, testSpaceID)
	assert.Equal(t, first, second)
}

func TestStartSlots(t *testing.T) {
	intervals := []OpenInterval{{Start: tod(9, 0), End: tod(17, 0)}}

	slots := StartSlots(intervals, 60)
	want := []space.TimeOfDay{
		tod(9, 0), tod(10, 0), tod(11, 0), tod(12, 0),
		tod(13, 0), tod(14, 0), tod(15, 0), tod(16, 0),
	}
	assert.Equal(t, want, slots)
}

func TestStartSlotsShortInterval(t *testing.T) {
	// A 30-minute window cannot host a 60-minute slot.
	intervals := []OpenInterval{{Start: tod(9, 0), End: tod(9, 30)}}
	assert.Empty(t, StartSlots(intervals, 60))
}

func TestStartSlotsExactFit(t *testing.T) {
	intervals := []OpenInterval{{Start: tod(9, 0), End: tod(10, 0)}}
	assert.Equal(t, []space.TimeOfDay{tod(9, 0)}, StartSlots(intervals, 60))
}

func TestStartSlotsMultipleIntervals(t *testing.T) {
	intervals := []OpenInterval{
		{Start: tod(9, 0), End: tod(11, 0)},
		{Start: tod(14, 0), End: tod(15, 30)},
	}

	slots := StartSlots(intervals, 60)
	assert.Equal(t, []space.TimeOfDay{tod(9, 0), tod(10, 0), tod(14, 0)}, slots)
}

func TestStartSlotsInvalidGranularity(t *testing.T) {
	intervals := []OpenInterval{{Start: tod(9, 0), End: tod(17, 0)}}
	assert.Empty(t, StartSlots(intervals, 0))
	assert.Empty(t, StartSlots(intervals, -60))
}

func TestEndSlots(t *testing.T) {
	interval := OpenInterval{Start: tod(9, 0), End: tod(12, 0)}

	slots := EndSlots(tod(9, 0), interval, 60)
	assert.Equal(t, []space.TimeOfDay{tod(10, 0), tod(11, 0), tod(12, 0)}, slots)
}

func TestEndSlotsFromMidInterval(t *testing.T) {
	interval := OpenInterval{Start: tod(9, 0), End: tod(12, 0)}

	slots := EndSlots(tod(11, 0), interval, 60)
	assert.Equal(t, []space.TimeOfDay{tod(12, 0)}, slots)
}

func TestEnclosingInterval(t *testing.T) {
	intervals := []OpenInterval{
		{Start: tod(9, 0), End: tod(12, 0)},
		{Start: tod(14, 0), End: tod(17, 0)},
	}

	iv, ok := EnclosingInterval(intervals, tod(10, 0))
	require.True(t, ok)
	assert.Equal(t, intervals[0], iv)

	iv, ok = EnclosingInterval(intervals, tod(14, 0))
	require.True(t, ok)
	assert.Equal(t, intervals[1], iv)

	// Interval ends are exclusive for containment.
	_, ok = EnclosingInterval(intervals, tod(12, 0))
	assert.False(t, ok)

	_, ok = EnclosingInterval(intervals, tod(13, 0))
	assert.False(t, ok)
}

func TestIsValidTimeRange(t *testing.T) {
	assert.True(t, IsValidTimeRange(tod(9, 0), tod(10, 0)))
	assert.False(t, IsValidTimeRange(tod(10, 0), tod(9, 0)))
	assert.False(t, IsValidTimeRange(tod(9, 0), tod(9, 0)))
}

func TestComputeAvailabilityClosedReasons(t *testing.T) {
	schedule := mustSchedule(t, "monday-09:00-17:00")

	t.Run("weekend", func(t *testing.T) {
		saturday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
		a := ComputeAvailability(schedule, nil, saturday, testSpaceID)
		assert.Equal(t, ReasonWeekend, a.ClosedReason)
		assert.Empty(t, a.OpenIntervals)
	})

	t.Run("unscheduled day", func(t *testing.T) {
		tuesday := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		a := ComputeAvailability(schedule, nil, tuesday, testSpaceID)
		assert.Equal(t, ReasonUnscheduled, a.ClosedReason)
	})

	t.Run("fully booked", func(t *testing.T) {
		bookings := []*Booking{bookingAt(testSpaceID, StatusConfirmed, 9, 0, 17, 0)}
		a := ComputeAvailability(schedule, bookings, monday, testSpaceID)
		assert.Equal(t, ReasonFullyBooked, a.ClosedReason)
	})

	t.Run("open day", func(t *testing.T) {
		a := ComputeAvailability(schedule, nil, monday, testSpaceID)
		assert.Empty(t, a.ClosedReason)
		require.Len(t, a.OpenIntervals, 1)
		assert.Len(t, a.StartSlots, 8)
	})
}
