package statemachine

import (
	"errors"
	"fmt"

	"warung-pos-api/models"
)

// sequence is the authoritative order lifecycle. Transitions move one
// step forward only — no skipping, no going backward.
var sequence = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusServed,
	models.StatusCompleted,
}

// rank maps each status to its position in the sequence
var rank = func() map[models.OrderStatus]int {
	m := make(map[models.OrderStatus]int, len(sequence))
	for i, s := range sequence {
		m[s] = i
	}
	return m
}()

// Sequence returns the full lifecycle in order, for documentation
func Sequence() []models.OrderStatus {
	out := make([]models.OrderStatus, len(sequence))
	copy(out, sequence)
	return out
}

// IsValid reports whether s is a known order status
func IsValid(s models.OrderStatus) bool {
	_, ok := rank[s]
	return ok
}

// IsActive reports whether an order in status s still holds its table.
// Completed is the only terminal status; deleted orders are simply gone.
func IsActive(s models.OrderStatus) bool {
	return IsValid(s) && s != models.StatusCompleted
}

// ActiveStatuses returns every status counted as "order in progress"
func ActiveStatuses() []models.OrderStatus {
	return []models.OrderStatus{
		models.StatusPending,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusServed,
	}
}

// Next returns the immediate successor of s, or "" if s is terminal
func Next(s models.OrderStatus) models.OrderStatus {
	i, ok := rank[s]
	if !ok || i == len(sequence)-1 {
		return ""
	}
	return sequence[i+1]
}

// CanAdvance checks that to is the immediate successor of from. Same-
// state and backward requests get a descriptive error naming the one
// legal next step, so kitchen screens can show it verbatim.
func CanAdvance(from, to models.OrderStatus) error {
	if !IsValid(from) || !IsValid(to) {
		return fmt.Errorf("unknown order status: %s → %s", from, to)
	}
	if Next(from) == to {
		return nil
	}
	next := Next(from)
	if next == "" {
		return errors.New("invalid transition: " + string(from) + " is a terminal state")
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed. Valid next state is: " + string(next),
	)
}

// CanPay reports whether an order in status s may be paid. Payment is
// deliberately lenient: any active order can be paid directly, which
// lets takeaway and fast orders short-circuit the kitchen steps.
func CanPay(s models.OrderStatus) error {
	if s == models.StatusCompleted {
		return errors.New("order is already completed")
	}
	if !IsActive(s) {
		return fmt.Errorf("unknown order status: %s", s)
	}
	return nil
}

// CanCancel reports whether an order in status s may be cancelled.
// Only pending orders can be cancelled; once the kitchen has started,
// the order must run to payment.
func CanCancel(s models.OrderStatus) error {
	if s == models.StatusPending {
		return nil
	}
	return errors.New("only pending orders can be cancelled, current status is " + string(s))
}
