package schedule

import (
	"crypto/rand"
	"fmt"
	"time"
)

// RangeID distinguishes ranges created locally in an editor session from
// ranges already persisted by the availability store. A persisted range
// carries the server-assigned id; a local range only carries a temp key.
type RangeID struct {
	Local  string `json:"local,omitempty"`
	Remote string `json:"remote,omitempty"`
}

// NewLocalID generates a temp key for a range that has not been saved yet.
func NewLocalID() RangeID {
	b := make([]byte, 4)
	rand.Read(b)
	return RangeID{Local: fmt.Sprintf("%x", b)}
}

// PersistedID wraps a server-assigned id.
func PersistedID(remote string) RangeID {
	return RangeID{Remote: remote}
}

// Persisted reports whether the range is already known to the store.
func (id RangeID) Persisted() bool {
	return id.Remote != ""
}

func (id RangeID) String() string {
	if id.Persisted() {
		return id.Remote
	}
	return "local:" + id.Local
}

// TimeRange is a contiguous availability window [Start, End) on one day,
// both bounds as 24-hour "HH:MM" strings.
type TimeRange struct {
	ID    RangeID `json:"id"`
	Start string  `json:"start"`
	End   string  `json:"end"`
}

// NewRange builds an unsaved range with a fresh local id.
func NewRange(start, end string) TimeRange {
	return TimeRange{ID: NewLocalID(), Start: start, End: end}
}

// Weekdays lists the editor's day names, Monday first to match the dashboard layout.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// WeekdayName maps a calendar date to the editor's day vocabulary.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// IsWeekday reports whether name belongs to the editor's day vocabulary.
func IsWeekday(name string) bool {
	for _, day := range Weekdays {
		if day == name {
			return true
		}
	}
	return false
}
