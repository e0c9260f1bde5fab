package editor

import (
	"context"
	"fmt"

	"github.com/amamamou/we4lead-sub000/rangestore"
	"github.com/amamamou/we4lead-sub000/schedule"
)

// WeekEditor holds the full seven-day editing state for one counselor and
// reconciles it against the availability store on save. The store is always
// the source of truth: the editor loads fresh on mount, mutates only in
// memory, and reloads after every save or cancel.
type WeekEditor struct {
	store rangestore.Store
	days  map[string]*DayEditor
	dirty bool
}

// NewWeekEditor creates an unloaded editor bound to the given store.
func NewWeekEditor(store rangestore.Store) *WeekEditor {
	w := &WeekEditor{store: store, days: map[string]*DayEditor{}}
	for _, day := range schedule.Weekdays {
		w.days[day] = NewDayEditor(day, nil)
	}
	return w
}

// Load replaces the local state with the store's current ranges.
func (w *WeekEditor) Load(ctx context.Context) error {
	records, err := w.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load weekly availability: %w", err)
	}

	byDay := map[string][]schedule.TimeRange{}
	for _, rec := range records {
		byDay[rec.Day] = append(byDay[rec.Day], schedule.TimeRange{
			ID:    schedule.PersistedID(rec.ID),
			Start: rec.Start,
			End:   rec.End,
		})
	}

	for _, day := range schedule.Weekdays {
		w.days[day] = NewDayEditor(day, byDay[day])
	}
	w.dirty = false
	return nil
}

// Day returns the editor for one weekday.
func (w *WeekEditor) Day(day string) *DayEditor {
	return w.days[day]
}

// Dirty reports whether there are local edits not yet saved to the store.
func (w *WeekEditor) Dirty() bool { return w.dirty }

// Schedule returns the current local ranges per weekday. Days with no
// availability map to an empty list.
func (w *WeekEditor) Schedule() map[string][]schedule.TimeRange {
	out := make(map[string][]schedule.TimeRange, len(schedule.Weekdays))
	for _, day := range schedule.Weekdays {
		out[day] = w.days[day].Ranges()
	}
	return out
}

// Toggle switches one day on or off.
func (w *WeekEditor) Toggle(day string, on bool) {
	w.days[day].Toggle(on)
	w.dirty = true
}

// Add appends the next free default-length range to one day.
func (w *WeekEditor) Add(day string) error {
	if err := w.days[day].Add(); err != nil {
		return err
	}
	w.dirty = true
	return nil
}

// EditStart moves a range's start on one day.
func (w *WeekEditor) EditStart(day string, index int, start string) error {
	if err := w.days[day].EditStart(index, start); err != nil {
		return err
	}
	w.dirty = true
	return nil
}

// EditEnd moves a range's end on one day.
func (w *WeekEditor) EditEnd(day string, index int, end string) error {
	if err := w.days[day].EditEnd(index, end); err != nil {
		return err
	}
	w.dirty = true
	return nil
}

// Remove drops a range from one day.
func (w *WeekEditor) Remove(day string, index int) error {
	if err := w.days[day].Remove(index); err != nil {
		return err
	}
	w.dirty = true
	return nil
}

// Cancel discards all local edits and reloads from the store.
func (w *WeekEditor) Cancel(ctx context.Context) error {
	return w.Load(ctx)
}
