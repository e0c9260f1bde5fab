package schedule

// MasterGrid returns the shared list of candidate slot start times: every
// half hour from DayStart to DayEnd inclusive.
func MasterGrid() []string {
	start, _ := ToMinutes(DayStart)
	end, _ := ToMinutes(DayEnd)

	grid := make([]string, 0, (end-start)/StepMinutes+1)
	for m := start; m <= end; m += StepMinutes {
		grid = append(grid, FormatMinutes(m))
	}
	return grid
}

// NextGridValue returns the earliest grid time at or after min minutes since
// midnight. The second return is false when min lies past the end of the
// daily window.
func NextGridValue(min int) (string, bool) {
	start, _ := ToMinutes(DayStart)
	end, _ := ToMinutes(DayEnd)

	for m := start; m <= end; m += StepMinutes {
		if m >= min {
			return FormatMinutes(m), true
		}
	}
	return "", false
}
