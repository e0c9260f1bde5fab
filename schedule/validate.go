package schedule

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidRange is returned when a range does not end after it starts.
	ErrInvalidRange = errors.New("invalid range")

	// ErrOverlap is returned when two ranges on the same day share a minute.
	ErrOverlap = errors.New("overlapping ranges")
)

// Validate checks that every range is well-formed and that no two ranges
// overlap. It works on a sorted copy and never mutates its input.
func Validate(ranges []TimeRange) error {
	type bounds struct {
		r     TimeRange
		start int
		end   int
	}

	sorted := make([]bounds, 0, len(ranges))
	for _, r := range ranges {
		start, err := ToMinutes(r.Start)
		if err != nil {
			return err
		}
		end, err := ToMinutes(r.End)
		if err != nil {
			return err
		}
		sorted = append(sorted, bounds{r: r, start: start, end: end})
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start < sorted[j].start
	})

	for _, b := range sorted {
		if b.end <= b.start {
			return fmt.Errorf("%w: end %s must be after start %s", ErrInvalidRange, b.r.End, b.r.Start)
		}
	}
	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		if next.start < prev.end {
			return fmt.Errorf("%w: %s-%s and %s-%s", ErrOverlap,
				prev.r.Start, prev.r.End, next.r.Start, next.r.End)
		}
	}
	return nil
}
