package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amamamou/we4lead-sub000/models"
	"github.com/amamamou/we4lead-sub000/rangestore"
)

func TestBuildWeeklyWindowsGroupsAndSorts(t *testing.T) {
	windows, err := BuildWeeklyWindows([]models.AvailabilityRange{
		{ID: "b", Day: "MONDAY", StartTime: "14:00", EndTime: "16:00"},
		{ID: "a", Day: "MONDAY", StartTime: "09:00", EndTime: "11:00"},
		{ID: "c", Day: "FRIDAY", StartTime: "10:00", EndTime: "12:00"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "11:00", "14:00", "16:00"}, windows["Monday"])
	assert.Equal(t, []string{"10:00", "12:00"}, windows["Friday"])
	assert.Empty(t, windows["Tuesday"])
}

func TestBuildWeeklyWindowsEmpty(t *testing.T) {
	windows, err := BuildWeeklyWindows(nil)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestBuildWeeklyWindowsRejectsUnknownDay(t *testing.T) {
	_, err := BuildWeeklyWindows([]models.AvailabilityRange{
		{ID: "a", Day: "Monday", StartTime: "09:00", EndTime: "11:00"},
	})
	assert.ErrorIs(t, err, rangestore.ErrUnknownDay)
}
