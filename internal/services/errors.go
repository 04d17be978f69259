package services

import "errors"

var (
	// ErrInvalidAmount is returned for a non-positive amount, before any I/O.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidUserModel is returned for an unsupported owner kind.
	ErrInvalidUserModel = errors.New("unsupported owner kind")

	// ErrInsufficientFunds is returned when a debit or hold exceeds the
	// available balance. It is a decision, not a fault: callers must not retry.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalNotFound is returned for an unknown withdrawal request id.
	// Unknown wallet owners are never an error; unknown requests are.
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")

	// ErrAlreadyProcessed is returned when a withdrawal transition is
	// attempted from a state that does not permit it.
	ErrAlreadyProcessed = errors.New("withdrawal request already processed")

	// ErrInvalidBankDetails is returned when a submission carries no usable
	// payout destination.
	ErrInvalidBankDetails = errors.New("invalid bank details")

	// ErrInvalidCursor is returned when a pagination cursor cannot be decoded.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrStoreUnavailable wraps transient storage failures. Safe to retry
	// with the same idempotency key: each operation commits whole or not at all.
	ErrStoreUnavailable = errors.New("store unavailable")
)
