package rangestore

import "errors"

var (
	// ErrNotFound is returned when the store has no range with the given id.
	ErrNotFound = errors.New("rangestore: range not found")

	// ErrUnavailable is returned when the store cannot be reached or answers
	// with a server-side failure.
	ErrUnavailable = errors.New("rangestore: store unavailable")

	// ErrInvalidResponse is returned when the store answers with a body or
	// status the client cannot interpret.
	ErrInvalidResponse = errors.New("rangestore: invalid response")

	// ErrUnknownDay is returned when a day name belongs to neither the wire
	// nor the editor vocabulary.
	ErrUnknownDay = errors.New("rangestore: unknown day name")
)
