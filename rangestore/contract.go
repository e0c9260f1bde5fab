package rangestore

import "context"

// Record is one persisted availability range as the store reports it. Day is
// already translated to the editor's vocabulary by the client boundary.
type Record struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// Store is the remote availability-range store for the current counselor.
// Implementations translate day names between the wire vocabulary and the
// editor's.
type Store interface {
	// List returns every persisted range for the current counselor.
	List(ctx context.Context) ([]Record, error)
	// Create persists a new range and returns it with its assigned id.
	Create(ctx context.Context, day, start, end string) (Record, error)
	// Update rewrites the range with the given id.
	Update(ctx context.Context, id, day, start, end string) (Record, error)
	// Delete removes the range with the given id.
	Delete(ctx context.Context, id string) error
}
