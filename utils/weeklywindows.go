package utils

import (
	"sort"

	"github.com/amamamou/we4lead-sub000/booking"
	"github.com/amamamou/we4lead-sub000/models"
	"github.com/amamamou/we4lead-sub000/rangestore"
	"github.com/amamamou/we4lead-sub000/schedule"
)

// BuildWeeklyWindows flattens a counselor's persisted ranges into the
// per-day open/close lists the booking resolver consumes. Ranges are grouped
// by day and sorted by start time so each day reads open1, close1, open2,
// close2 in order.
func BuildWeeklyWindows(ranges []models.AvailabilityRange) (booking.WeeklyWindows, error) {
	byDay := map[string][]models.AvailabilityRange{}
	for _, r := range ranges {
		day, err := rangestore.FromWireDay(r.Day)
		if err != nil {
			return nil, err
		}
		byDay[day] = append(byDay[day], r)
	}

	windows := booking.WeeklyWindows{}
	for day, dayRanges := range byDay {
		var sortErr error
		sort.Slice(dayRanges, func(i, j int) bool {
			a, err := schedule.ToMinutes(dayRanges[i].StartTime)
			if err != nil {
				sortErr = err
			}
			b, err := schedule.ToMinutes(dayRanges[j].StartTime)
			if err != nil {
				sortErr = err
			}
			return a < b
		})
		if sortErr != nil {
			return nil, sortErr
		}

		flat := make([]string, 0, len(dayRanges)*2)
		for _, r := range dayRanges {
			flat = append(flat, r.StartTime, r.EndTime)
		}
		windows[day] = flat
	}
	return windows, nil
}
