package hashtable

import "errors"

var (
	// ErrZeroBuckets is returned by New and Rehash for a bucket count of 0.
	ErrZeroBuckets = errors.New("bucket count must be positive")

	// ErrMutationDuringIteration is the panic value when a table is modified
	// from inside an Iterate visitor.
	ErrMutationDuringIteration = errors.New("table modified during iteration")

	// ErrDestroyed is the panic value when a destroyed table is used.
	ErrDestroyed = errors.New("table used after Destroy")
)
