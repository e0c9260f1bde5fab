package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)

func TestSlotsOnUsesTheDateWeekday(t *testing.T) {
	windows := WeeklyWindows{
		"Monday":  {"09:00", "12:00"},
		"Tuesday": {"14:00", "15:00"},
	}

	slots := SlotsOn(monday, windows)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00"}, slots)

	tuesday := monday.AddDate(0, 0, 1)
	assert.Equal(t, []string{"14:00", "14:30", "15:00"}, SlotsOn(tuesday, windows))
}

func TestSlotsOnEmptyDay(t *testing.T) {
	windows := WeeklyWindows{"Monday": {"09:00", "12:00"}}
	wednesday := monday.AddDate(0, 0, 2)
	assert.Empty(t, SlotsOn(wednesday, windows))
}

func TestIsDayBookableRejectsPastDates(t *testing.T) {
	windows := WeeklyWindows{"Monday": {"09:00", "12:00"}}

	now := monday.Add(10 * time.Hour) // Monday 10:00
	assert.False(t, IsDayBookable(now, monday.AddDate(0, 0, -7), windows))
	// Same day stays bookable whatever the time of day
	assert.True(t, IsDayBookable(now, monday, windows))
	assert.True(t, IsDayBookable(now, monday.AddDate(0, 0, 7), windows))
}

func TestIsDayBookableRejectsDaysWithoutWindows(t *testing.T) {
	windows := WeeklyWindows{"Monday": {"09:00", "12:00"}}
	now := monday

	tuesday := monday.AddDate(0, 0, 1)
	assert.False(t, IsDayBookable(now, tuesday, windows))

	// An unpaired leftover boundary is treated as no data
	windows["Tuesday"] = []string{"09:00"}
	assert.False(t, IsDayBookable(now, tuesday, windows))
}

func TestIsDayBookableIsFreshPerNow(t *testing.T) {
	windows := WeeklyWindows{"Monday": {"09:00", "12:00"}}

	assert.True(t, IsDayBookable(monday, monday, windows))
	// A week later the same date is in the past
	assert.False(t, IsDayBookable(monday.AddDate(0, 0, 7), monday, windows))
}
