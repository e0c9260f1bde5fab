package booking

import (
	"time"

	"github.com/amamamou/we4lead-sub000/schedule"
)

// WeeklyWindows is a counselor's published availability as the directory
// read model materializes it: per weekday, a flat list of alternating
// open/close "HH:MM" boundaries.
type WeeklyWindows map[string][]string

// SlotsOn returns the slot start times a student may book with the counselor
// on the given calendar date. A day with no windows yields an empty list.
func SlotsOn(date time.Time, windows WeeklyWindows) []string {
	day := schedule.WeekdayName(date)
	return schedule.ExpandSlots(windows[day], schedule.MasterGrid())
}

// IsDayBookable reports whether the calendar widget should offer the given
// date: false for dates before now's date (date-only comparison) and for
// weekdays with no configured windows. now is injected so callers and tests
// control the clock.
func IsDayBookable(now, date time.Time, windows WeeklyWindows) bool {
	if beforeDay(date, now) {
		return false
	}
	pairs := windows[schedule.WeekdayName(date)]
	return len(pairs) >= 2
}

// beforeDay reports whether a falls on an earlier calendar day than b.
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
