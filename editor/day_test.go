package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amamamou/we4lead-sub000/schedule"
)

func day(ranges ...schedule.TimeRange) *DayEditor {
	return NewDayEditor("Monday", ranges)
}

func TestNewDayEditorEnabledWhenRangesExist(t *testing.T) {
	assert.False(t, day().Enabled())
	assert.True(t, day(schedule.NewRange("09:00", "11:00")).Enabled())
}

func TestToggleOffClearsRangesAndError(t *testing.T) {
	d := day(schedule.NewRange("09:00", "11:00"))
	require.Error(t, d.EditEnd(0, "08:00")) // leave a pending error behind
	require.NotEmpty(t, d.Err())

	d.Toggle(false)
	assert.False(t, d.Enabled())
	assert.Empty(t, d.Ranges())
	assert.Empty(t, d.Err())
}

func TestToggleOnWithZeroRanges(t *testing.T) {
	d := day()
	d.Toggle(true)
	assert.True(t, d.Enabled())
	assert.Empty(t, d.Ranges())
}

func TestAddUsesNextFreeRange(t *testing.T) {
	d := day(schedule.NewRange("08:30", "09:00"))
	require.NoError(t, d.Add())

	ranges := d.Ranges()
	require.Len(t, ranges, 2)
	assert.Equal(t, "09:00", ranges[1].Start)
	assert.Equal(t, "09:30", ranges[1].End)
	assert.False(t, ranges[1].ID.Persisted())
	assert.NotEmpty(t, ranges[1].ID.Local)
}

func TestAddOnFullDayLeavesStateUntouched(t *testing.T) {
	d := day(schedule.NewRange("08:30", "18:00"))
	before := d.Ranges()

	err := d.Add()
	require.Error(t, err)
	assert.True(t, IsNoFreeSlot(err))
	assert.Equal(t, before, d.Ranges())
	assert.NotEmpty(t, d.Err())
}

func TestEditStartKeepsEndWhenStillValid(t *testing.T) {
	d := day(schedule.NewRange("09:00", "11:00"))
	require.NoError(t, d.EditStart(0, "10:30"))

	r := d.Ranges()[0]
	assert.Equal(t, "10:30", r.Start)
	assert.Equal(t, "11:00", r.End)
	assert.Empty(t, d.Err())
}

func TestEditStartAutoAdvancesEnd(t *testing.T) {
	d := day(schedule.NewRange("09:00", "11:00"))
	require.NoError(t, d.EditStart(0, "17:30"))

	r := d.Ranges()[0]
	assert.Equal(t, "17:30", r.Start)
	assert.Equal(t, "18:00", r.End)
}

func TestEditStartRejectedWhenNoValidEndExists(t *testing.T) {
	d := day(schedule.NewRange("09:00", "11:00"))
	before := d.Ranges()

	require.Error(t, d.EditStart(0, "17:45"))
	assert.Equal(t, before, d.Ranges())
	assert.NotEmpty(t, d.Err())
}

func TestEditStartRejectedOnOverlap(t *testing.T) {
	d := day(
		schedule.NewRange("09:00", "10:00"),
		schedule.NewRange("11:00", "12:00"),
	)
	before := d.Ranges()

	require.Error(t, d.EditStart(1, "09:30"))
	assert.Equal(t, before, d.Ranges())
}

func TestEditEndValidatesWholeDay(t *testing.T) {
	d := day(schedule.NewRange("09:00", "11:00"))
	require.NoError(t, d.EditEnd(0, "12:00"))
	assert.Equal(t, "12:00", d.Ranges()[0].End)

	before := d.Ranges()
	require.Error(t, d.EditEnd(0, "08:00"))
	assert.Equal(t, before, d.Ranges())
}

func TestRemoveAlwaysPermitted(t *testing.T) {
	d := day(schedule.NewRange("09:00", "11:00"))
	require.NoError(t, d.Remove(0))
	assert.Empty(t, d.Ranges())
	// Toggle stays on; the day simply offers no availability
	assert.True(t, d.Enabled())
}

func TestRemoveBadIndex(t *testing.T) {
	d := day(schedule.NewRange("09:00", "11:00"))
	require.Error(t, d.Remove(3))
	assert.Len(t, d.Ranges(), 1)
}

func TestSuccessfulMutationClearsInlineError(t *testing.T) {
	d := day(schedule.NewRange("09:00", "11:00"))
	require.Error(t, d.EditEnd(0, "08:00"))
	require.NotEmpty(t, d.Err())

	require.NoError(t, d.EditEnd(0, "12:00"))
	assert.Empty(t, d.Err())
}
