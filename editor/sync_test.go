package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amamamou/we4lead-sub000/rangestore"
	"github.com/amamamou/we4lead-sub000/schedule"
)

// fakeStore is an in-memory rangestore.Store. Save batches run concurrently,
// so every method locks.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]rangestore.Record
	nextID  int

	creates int
	updates int
	deletes int
	lists   int

	failCreates bool
	failDeletes bool
	failList    bool
}

func newFakeStore(records ...rangestore.Record) *fakeStore {
	s := &fakeStore{records: map[string]rangestore.Record{}}
	for _, r := range records {
		s.records[r.ID] = r
	}
	return s
}

func (s *fakeStore) List(ctx context.Context) ([]rangestore.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	if s.failList {
		return nil, rangestore.ErrUnavailable
	}
	out := []rangestore.Record{}
	for _, r := range s.records {
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeStore) Create(ctx context.Context, day, start, end string) (rangestore.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.failCreates {
		return rangestore.Record{}, rangestore.ErrUnavailable
	}
	s.nextID++
	rec := rangestore.Record{
		ID:    fmt.Sprintf("00000000-0000-0000-0000-%012d", s.nextID),
		Day:   day,
		Start: start,
		End:   end,
	}
	s.records[rec.ID] = rec
	return rec, nil
}

func (s *fakeStore) Update(ctx context.Context, id, day, start, end string) (rangestore.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	rec, ok := s.records[id]
	if !ok {
		return rangestore.Record{}, rangestore.ErrNotFound
	}
	rec.Day = day
	rec.Start = start
	rec.End = end
	s.records[id] = rec
	return rec, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	if s.failDeletes {
		return rangestore.ErrUnavailable
	}
	if _, ok := s.records[id]; !ok {
		return rangestore.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func loadedEditor(t *testing.T, store *fakeStore) *WeekEditor {
	t.Helper()
	w := NewWeekEditor(store)
	require.NoError(t, w.Load(context.Background()))
	return w
}

func TestLoadGroupsRangesByDay(t *testing.T) {
	store := newFakeStore(
		rangestore.Record{ID: "a", Day: "Monday", Start: "09:00", End: "11:00"},
		rangestore.Record{ID: "b", Day: "Friday", Start: "14:00", End: "16:00"},
	)
	w := loadedEditor(t, store)

	mon := w.Day("Monday").Ranges()
	require.Len(t, mon, 1)
	assert.Equal(t, "09:00", mon[0].Start)
	assert.True(t, mon[0].ID.Persisted())
	assert.Equal(t, "a", mon[0].ID.Remote)

	assert.Empty(t, w.Day("Tuesday").Ranges())
	assert.False(t, w.Dirty())
}

func TestLoadFailureSurfaces(t *testing.T) {
	store := newFakeStore()
	store.failList = true
	w := NewWeekEditor(store)
	assert.ErrorIs(t, w.Load(context.Background()), rangestore.ErrUnavailable)
}

func TestSaveWithoutEditsEmitsNoOperations(t *testing.T) {
	store := newFakeStore(
		rangestore.Record{ID: "a", Day: "Monday", Start: "09:00", End: "11:00"},
	)
	w := loadedEditor(t, store)

	require.NoError(t, w.Save(context.Background()))
	assert.Zero(t, store.creates)
	assert.Zero(t, store.updates)
	assert.Zero(t, store.deletes)
}

func TestSaveClassifiesCreateUpdateDelete(t *testing.T) {
	store := newFakeStore(
		rangestore.Record{ID: "a", Day: "Monday", Start: "09:00", End: "11:00"},
		rangestore.Record{ID: "b", Day: "Tuesday", Start: "09:00", End: "10:00"},
	)
	w := loadedEditor(t, store)

	// Local edit of a persisted range -> update
	require.NoError(t, w.EditEnd("Monday", 0, "12:00"))
	// Fresh range -> create
	require.NoError(t, w.Add("Wednesday"))
	// Dropped persisted range -> delete
	require.NoError(t, w.Remove("Tuesday", 0))

	require.NoError(t, w.Save(context.Background()))
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, 1, store.updates)
	assert.Equal(t, 1, store.deletes)

	// Reload replaced the local id with the server-assigned one
	wed := w.Day("Wednesday").Ranges()
	require.Len(t, wed, 1)
	assert.True(t, wed[0].ID.Persisted())
	assert.False(t, w.Dirty())
}

func TestSaveReplacesLocalIdsViaReload(t *testing.T) {
	store := newFakeStore()
	w := loadedEditor(t, store)

	require.NoError(t, w.Add("Monday"))
	require.True(t, w.Dirty())
	local := w.Day("Monday").Ranges()[0].ID
	require.False(t, local.Persisted())

	require.NoError(t, w.Save(context.Background()))

	mon := w.Day("Monday").Ranges()
	require.Len(t, mon, 1)
	assert.True(t, mon[0].ID.Persisted())
	assert.False(t, w.Dirty())
}

func TestSavePartialFailureAggregatesAndReloads(t *testing.T) {
	store := newFakeStore(
		rangestore.Record{ID: "a", Day: "Monday", Start: "09:00", End: "11:00"},
	)
	w := loadedEditor(t, store)

	require.NoError(t, w.Add("Tuesday"))
	require.NoError(t, w.Add("Wednesday"))
	require.NoError(t, w.Remove("Monday", 0))
	store.failCreates = true
	store.failDeletes = true

	err := w.Save(context.Background())
	require.Error(t, err)

	var syncErr *SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, 3, syncErr.Failed)
	assert.Equal(t, "3 operations failed", syncErr.Error())

	// The editor shows the store's real state after the failed batch
	assert.Len(t, w.Day("Monday").Ranges(), 1)
	assert.Empty(t, w.Day("Tuesday").Ranges())
}

func TestCancelDiscardsLocalEdits(t *testing.T) {
	store := newFakeStore(
		rangestore.Record{ID: "a", Day: "Monday", Start: "09:00", End: "11:00"},
	)
	w := loadedEditor(t, store)

	require.NoError(t, w.EditEnd("Monday", 0, "12:00"))
	require.NoError(t, w.Add("Friday"))
	require.True(t, w.Dirty())

	require.NoError(t, w.Cancel(context.Background()))
	assert.Equal(t, "11:00", w.Day("Monday").Ranges()[0].End)
	assert.Empty(t, w.Day("Friday").Ranges())
	assert.False(t, w.Dirty())
	assert.Zero(t, store.creates+store.updates+store.deletes)
}

func TestScheduleListsAllSevenDays(t *testing.T) {
	w := loadedEditor(t, newFakeStore())
	sched := w.Schedule()
	assert.Len(t, sched, len(schedule.Weekdays))
	for _, day := range schedule.Weekdays {
		assert.NotNil(t, sched[day])
	}
}
