package services

import "errors"

// Sentinel errors for the POS core. Handlers map these to HTTP status
// codes with errors.Is; everything here is recoverable at the call
// site — the caller decides whether to retry, prompt, or abandon.
var (
	// ErrTableOccupied: a dine-in submit targeted a table that already
	// has an active order. Never silently resolved by picking a winner.
	ErrTableOccupied = errors.New("table already has an active order")

	// ErrShiftActive: an open-shift call found an active shift already
	// exists for this owner.
	ErrShiftActive = errors.New("an active shift already exists")

	// ErrInvalidTransition: requested order state change is not the
	// legal next step, or the order is past the point of cancellation.
	ErrInvalidTransition = errors.New("invalid order transition")

	// ErrNotFound: the referenced entity no longer exists (deleted or
	// raced away by another staff member).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyPaid: idempotency guard on payment; the order is
	// already completed and has its revenue entry.
	ErrAlreadyPaid = errors.New("order is already paid")

	// ErrNoActiveShift: close-shift called with no active session.
	ErrNoActiveShift = errors.New("no active shift")

	// ErrValidation: malformed input, rejected before any mutation.
	ErrValidation = errors.New("validation failed")
)
