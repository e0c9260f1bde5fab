package editor

import (
	"errors"
	"fmt"

	"github.com/amamamou/we4lead-sub000/schedule"
)

// DayEditor is the editing state machine for one weekday's availability.
// Every mutation is validated against a working copy first; a rejected
// mutation leaves the visible ranges untouched and records an inline error
// message instead.
type DayEditor struct {
	day     string
	enabled bool
	ranges  []schedule.TimeRange
	lastErr string
}

// NewDayEditor builds the editor for one weekday from its persisted ranges.
// The day starts enabled when it has at least one range.
func NewDayEditor(day string, ranges []schedule.TimeRange) *DayEditor {
	d := &DayEditor{
		day:     day,
		enabled: len(ranges) > 0,
		ranges:  append([]schedule.TimeRange{}, ranges...),
	}
	return d
}

// Day returns the weekday this editor manages.
func (d *DayEditor) Day() string { return d.day }

// Enabled reports whether the day's availability toggle is on.
func (d *DayEditor) Enabled() bool { return d.enabled }

// Err returns the inline error message from the last rejected mutation, or
// "" when the last mutation succeeded.
func (d *DayEditor) Err() string { return d.lastErr }

// Ranges returns a copy of the day's current ranges.
func (d *DayEditor) Ranges() []schedule.TimeRange {
	return append([]schedule.TimeRange{}, d.ranges...)
}

// Toggle switches the day's availability on or off. Toggling off clears all
// ranges and any pending error; toggling on keeps the (possibly empty) list.
func (d *DayEditor) Toggle(on bool) {
	d.enabled = on
	d.lastErr = ""
	if !on {
		d.ranges = nil
	}
}

// Add asks the finder for the earliest free default-length range and appends
// it with a fresh local id. When the daily window is exhausted the day is
// left unchanged and the error is surfaced inline.
func (d *DayEditor) Add() error {
	found, err := schedule.FindNextFreeRange(d.ranges, schedule.DefaultSlotMinutes)
	if err != nil {
		return d.reject(err)
	}

	next := append(d.Ranges(), schedule.NewRange(found.Start, found.End))
	if err := schedule.Validate(next); err != nil {
		return d.reject(err)
	}
	return d.commit(next)
}

// EditStart moves the start of the range at index. The minimum valid end is
// the new start plus the default slot length; when the current end falls
// below it, the end auto-advances to the nearest grid value that satisfies
// it. An edit with no valid end inside the daily window is rejected whole.
func (d *DayEditor) EditStart(index int, start string) error {
	if index < 0 || index >= len(d.ranges) {
		return d.reject(fmt.Errorf("no range at index %d", index))
	}

	startMin, err := schedule.ToMinutes(start)
	if err != nil {
		return d.reject(err)
	}
	minEnd := startMin + schedule.DefaultSlotMinutes

	next := d.Ranges()
	next[index].Start = start

	endMin, err := schedule.ToMinutes(next[index].End)
	if err != nil {
		return d.reject(err)
	}
	if endMin < minEnd {
		advanced, ok := schedule.NextGridValue(minEnd)
		if !ok {
			return d.reject(fmt.Errorf("no valid end time after %s", schedule.FormatMinutes(minEnd)))
		}
		next[index].End = advanced
	}

	if err := schedule.Validate(next); err != nil {
		return d.reject(err)
	}
	return d.commit(next)
}

// EditEnd sets the end of the range at index and re-validates the whole day.
func (d *DayEditor) EditEnd(index int, end string) error {
	if index < 0 || index >= len(d.ranges) {
		return d.reject(fmt.Errorf("no range at index %d", index))
	}

	next := d.Ranges()
	next[index].End = end
	if err := schedule.Validate(next); err != nil {
		return d.reject(err)
	}
	return d.commit(next)
}

// Remove drops the range at index. Removing the last range is allowed; the
// day then offers no availability while its toggle stays on.
func (d *DayEditor) Remove(index int) error {
	if index < 0 || index >= len(d.ranges) {
		return d.reject(fmt.Errorf("no range at index %d", index))
	}

	next := d.Ranges()
	next = append(next[:index], next[index+1:]...)
	return d.commit(next)
}

func (d *DayEditor) commit(ranges []schedule.TimeRange) error {
	d.ranges = ranges
	d.lastErr = ""
	return nil
}

func (d *DayEditor) reject(err error) error {
	d.lastErr = err.Error()
	return err
}

// IsNoFreeSlot reports whether err means the finder exhausted its window.
func IsNoFreeSlot(err error) bool {
	return errors.Is(err, schedule.ErrNoFreeSlot)
}
