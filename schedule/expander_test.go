package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasterGridBounds(t *testing.T) {
	grid := MasterGrid()
	assert.Equal(t, 20, len(grid))
	assert.Equal(t, "08:30", grid[0])
	assert.Equal(t, "18:00", grid[len(grid)-1])
}

func TestExpandSlotsSingleWindow(t *testing.T) {
	slots := ExpandSlots([]string{"09:00", "12:00"}, MasterGrid())
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00"}, slots)
}

func TestExpandSlotsMultipleWindows(t *testing.T) {
	slots := ExpandSlots([]string{"09:00", "10:00", "14:00", "15:00"}, MasterGrid())
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "14:00", "14:30", "15:00"}, slots)
}

func TestExpandSlotsEmptyDay(t *testing.T) {
	assert.Empty(t, ExpandSlots(nil, MasterGrid()))
	assert.Empty(t, ExpandSlots([]string{}, MasterGrid()))
}

func TestExpandSlotsIgnoresTrailingUnpairedElement(t *testing.T) {
	slots := ExpandSlots([]string{"09:00", "10:00", "14:00"}, MasterGrid())
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slots)

	// A lone element means no data at all
	assert.Empty(t, ExpandSlots([]string{"09:00"}, MasterGrid()))
}

func TestExpandSlotsKeepsDuplicatesAcrossOverlappingWindows(t *testing.T) {
	slots := ExpandSlots([]string{"09:00", "10:00", "09:30", "10:30"}, MasterGrid())
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "09:30", "10:00", "10:30"}, slots)
}

func TestExpandSlotsSkipsMalformedWindow(t *testing.T) {
	slots := ExpandSlots([]string{"9am", "10:00", "14:00", "15:00"}, MasterGrid())
	assert.Equal(t, []string{"14:00", "14:30", "15:00"}, slots)
}

func TestNextGridValue(t *testing.T) {
	min, _ := ToMinutes("10:15")
	got, ok := NextGridValue(min)
	assert.True(t, ok)
	assert.Equal(t, "10:30", got)

	min, _ = ToMinutes("18:00")
	got, ok = NextGridValue(min)
	assert.True(t, ok)
	assert.Equal(t, "18:00", got)

	min, _ = ToMinutes("18:01")
	_, ok = NextGridValue(min)
	assert.False(t, ok)
}
