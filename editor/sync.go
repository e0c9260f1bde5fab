package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/amamamou/we4lead-sub000/rangestore"
	"github.com/amamamou/we4lead-sub000/schedule"
)

// SyncError reports a partially failed save batch. The store may have
// applied some of the operations; the editor reloads regardless so the user
// sees the store's real state, and a retry re-runs the whole diff against it.
type SyncError struct {
	Failed int
	Errs   []error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%d operations failed", e.Failed)
}

type syncOp struct {
	kind string // "create", "update" or "delete"
	id   string // persisted id for update/delete
	day  string
	r    schedule.TimeRange
}

// Save diffs the local schedule against the store and issues the minimal
// create/update/delete batch. The store is listed fresh at save time, the
// batch runs concurrently and is awaited as a whole, and a reload follows in
// every case so local ids get replaced with server-assigned ones. The dirty
// flag clears only after a fully successful save and reload.
func (w *WeekEditor) Save(ctx context.Context) error {
	existing, err := w.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load weekly availability: %w", err)
	}

	remote := map[string]rangestore.Record{}
	for _, rec := range existing {
		remote[rec.ID] = rec
	}

	ops := []syncOp{}
	heldRemote := map[string]bool{}
	for _, day := range schedule.Weekdays {
		for _, r := range w.days[day].Ranges() {
			if !r.ID.Persisted() {
				ops = append(ops, syncOp{kind: "create", day: day, r: r})
				continue
			}
			heldRemote[r.ID.Remote] = true
			// An untouched persisted range needs no write.
			if rec, ok := remote[r.ID.Remote]; ok && rec.Day == day && rec.Start == r.Start && rec.End == r.End {
				continue
			}
			ops = append(ops, syncOp{kind: "update", id: r.ID.Remote, day: day, r: r})
		}
	}
	for _, rec := range existing {
		if !heldRemote[rec.ID] {
			ops = append(ops, syncOp{kind: "delete", id: rec.ID})
		}
	}

	if err := w.runBatch(ctx, ops); err != nil {
		// Surface the store's real state alongside the aggregate error.
		w.Load(ctx)
		return err
	}

	return w.Load(ctx)
}

func (w *WeekEditor) runBatch(ctx context.Context, ops []syncOp) error {
	if len(ops) == 0 {
		return nil
	}

	results := make([]error, len(ops))
	var wg sync.WaitGroup
	for i, op := range ops {
		wg.Add(1)
		go func(i int, op syncOp) {
			defer wg.Done()
			results[i] = w.runOp(ctx, op)
		}(i, op)
	}
	wg.Wait()

	var failed []error
	for _, err := range results {
		if err != nil {
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return &SyncError{Failed: len(failed), Errs: failed}
	}
	return nil
}

func (w *WeekEditor) runOp(ctx context.Context, op syncOp) error {
	switch op.kind {
	case "create":
		_, err := w.store.Create(ctx, op.day, op.r.Start, op.r.End)
		return err
	case "update":
		_, err := w.store.Update(ctx, op.id, op.day, op.r.Start, op.r.End)
		return err
	case "delete":
		return w.store.Delete(ctx, op.id)
	default:
		return fmt.Errorf("unknown sync operation %q", op.kind)
	}
}
