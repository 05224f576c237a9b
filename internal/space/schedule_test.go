package space

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  TimeOfDay
	}{
		{"00:00", 0},
		{"09:00", 9 * 60},
		{"09:30", 9*60 + 30},
		{"23:59", 23*60 + 59},
		{"14:15:00", 14*60 + 15},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseTimeOfDayInvalid(t *testing.T) {
	inputs := []string{"", "9:00", "09", "24:00", "09:60", "09:00:60", "ab:cd", "09-00", "009:00"}
	for _, input := range inputs {
		_, err := ParseTimeOfDay(input)
		assert.ErrorIs(t, err, ErrInvalidTimeOfDay, input)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay(9*60+5).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "23:59", TimeOfDay(23*60+59).String())
}

func TestParseSchedule(t *testing.T) {
	schedule, err := ParseSchedule("monday-09:00-18:00|tuesday-09:00-12:30|tuesday-14:00-18:00")
	require.NoError(t, err)
	require.Len(t, schedule, 3)

	assert.Equal(t, ScheduleBlock{Day: Monday, Start: 9 * 60, End: 18 * 60}, schedule[0])
	assert.Equal(t, ScheduleBlock{Day: Tuesday, Start: 9 * 60, End: 12*60 + 30}, schedule[1])
	assert.Equal(t, ScheduleBlock{Day: Tuesday, Start: 14 * 60, End: 18 * 60}, schedule[2])
}

func TestParseScheduleRoundTrip(t *testing.T) {
	raw := "monday-09:00-18:00|wednesday-10:30-15:45"
	schedule, err := ParseSchedule(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, schedule.String())
}

func TestParseScheduleInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"missing times", "monday"},
		{"missing end time", "monday-09:00"},
		{"weekend day", "saturday-09:00-18:00"},
		{"unknown day", "funday-09:00-18:00"},
		{"capitalized day", "Monday-09:00-18:00"},
		{"bad start time", "monday-9:00-18:00"},
		{"bad end time", "monday-09:00-25:00"},
		{"start equals end", "monday-09:00-09:00"},
		{"start after end", "monday-18:00-09:00"},
		{"one bad entry among good", "monday-09:00-18:00|sunday-09:00-18:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchedule(tt.input)
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}

func TestScheduleValidate(t *testing.T) {
	t.Run("touching blocks are allowed", func(t *testing.T) {
		schedule, err := ParseSchedule("monday-09:00-12:00|monday-12:00-18:00")
		require.NoError(t, err)
		assert.NoError(t, schedule.Validate())
	})

	t.Run("overlapping blocks are rejected", func(t *testing.T) {
		schedule, err := ParseSchedule("monday-09:00-12:00|monday-11:00-18:00")
		require.NoError(t, err)
		assert.ErrorIs(t, schedule.Validate(), ErrInvalidSchedule)
	})

	t.Run("same window on different days is fine", func(t *testing.T) {
		schedule, err := ParseSchedule("monday-09:00-12:00|tuesday-09:00-12:00")
		require.NoError(t, err)
		assert.NoError(t, schedule.Validate())
	})
}

func TestBlocksOn(t *testing.T) {
	schedule, err := ParseSchedule("tuesday-14:00-18:00|tuesday-09:00-12:00|monday-08:00-17:00")
	require.NoError(t, err)

	blocks := schedule.BlocksOn(Tuesday)
	require.Len(t, blocks, 2)
	assert.Equal(t, TimeOfDay(9*60), blocks[0].Start)
	assert.Equal(t, TimeOfDay(14*60), blocks[1].Start)

	assert.Empty(t, schedule.BlocksOn(Friday))
}

func TestDayOf(t *testing.T) {
	date, err := ParseDate("2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, Monday, DayOf(date))

	// The weekday must not shift with the server's timezone.
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, Monday, DayOf(date.In(tokyo)))

	honolulu, err := time.LoadLocation("Pacific/Honolulu")
	require.NoError(t, err)
	assert.Equal(t, Monday, DayOf(date.In(honolulu)))
}

func TestDayOfWeekend(t *testing.T) {
	saturday, err := ParseDate("2025-06-14")
	require.NoError(t, err)
	assert.Equal(t, Saturday, DayOf(saturday))
	assert.False(t, DayOf(saturday).IsBookable())

	sunday, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, Sunday, DayOf(sunday))
	assert.False(t, DayOf(sunday).IsBookable())
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "2025/06/09", "09-06-2025", "2025-13-01", "not-a-date"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrInvalidDate, input)
	}
}

func TestTimeOfDayAt(t *testing.T) {
	date, err := ParseDate("2025-06-09")
	require.NoError(t, err)

	at := TimeOfDay(9*60 + 30).At(date)
	assert.Equal(t, time.Date(2025, 6, 9, 9, 30, 0, 0, time.UTC), at)
}
