package store

import "errors"

var (
	// ErrNotFound is returned when no item exists for the requested id.
	ErrNotFound = errors.New("store: product not found")

	// ErrIncomplete is returned when an item lacks one of PK, name or price,
	// or holds it with the wrong type.
	ErrIncomplete = errors.New("store: product record is incomplete")

	// ErrUnavailable wraps any error returned by DynamoDB itself.
	ErrUnavailable = errors.New("store: dynamodb unavailable")
)
