package schedule

import (
	"errors"
	"fmt"
)

// Daily search window and slot granularity shared by the availability editor
// and the consumer-facing slot grid.
const (
	DayStart = "08:30"
	DayEnd   = "18:00"

	StepMinutes        = 30
	DefaultSlotMinutes = 30
)

// ErrNoFreeSlot is returned when no gap of the requested duration exists
// inside the daily window.
var ErrNoFreeSlot = errors.New("no free slot available")

// FindNextFreeRange scans the daily window in StepMinutes increments and
// returns the earliest range of the requested duration that overlaps none of
// the existing ranges. The returned range carries no id; the caller decides
// whether it becomes an editor-local range.
func FindNextFreeRange(existing []TimeRange, durationMinutes int) (TimeRange, error) {
	if durationMinutes <= 0 {
		return TimeRange{}, fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}

	windowStart, _ := ToMinutes(DayStart)
	windowEnd, _ := ToMinutes(DayEnd)

	type bounds struct{ start, end int }
	taken := make([]bounds, 0, len(existing))
	for _, r := range existing {
		start, err := ToMinutes(r.Start)
		if err != nil {
			return TimeRange{}, err
		}
		end, err := ToMinutes(r.End)
		if err != nil {
			return TimeRange{}, err
		}
		taken = append(taken, bounds{start, end})
	}

	for s := windowStart; s+durationMinutes <= windowEnd; s += StepMinutes {
		e := s + durationMinutes
		free := true
		for _, t := range taken {
			if e > t.start && s < t.end {
				free = false
				break
			}
		}
		if free {
			return TimeRange{Start: FormatMinutes(s), End: FormatMinutes(e)}, nil
		}
	}
	return TimeRange{}, ErrNoFreeSlot
}
