package schedule

// ExpandSlots turns a day's flat open/close list into the concrete bookable
// start times. The list is read two at a time: (open, close) per window; a
// trailing unpaired element is ignored rather than rejected. For each window
// the grid times inside [open, close] are collected in grid order. Slots are
// not de-duplicated across overlapping windows.
func ExpandSlots(openClosePairs []string, grid []string) []string {
	slots := []string{}
	for i := 0; i+1 < len(openClosePairs); i += 2 {
		openAt, err := ToMinutes(openClosePairs[i])
		if err != nil {
			continue
		}
		closeAt, err := ToMinutes(openClosePairs[i+1])
		if err != nil {
			continue
		}
		for _, g := range grid {
			m, err := ToMinutes(g)
			if err != nil {
				continue
			}
			if openAt <= m && m <= closeAt {
				slots = append(slots, g)
			}
		}
	}
	return slots
}
