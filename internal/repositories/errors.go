package repositories

import "errors"

var (
	// ErrDuplicateTransaction is returned by Append when a transaction with
	// the same idempotency key already exists. Callers treat it as a replay,
	// not a failure.
	ErrDuplicateTransaction = errors.New("duplicate transaction")

	// ErrInvalidCursor is returned by List when the pagination cursor cannot
	// be decoded. It is a caller mistake, not a store failure.
	ErrInvalidCursor = errors.New("invalid cursor")
)
