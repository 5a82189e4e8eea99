package order

import (
	"fmt"

	"food/internal/pkg/errs"
)

// Messages raised by the status machine. The Portuguese texts are part of
// the observable contract and must not be reworded.
const (
	MessageCannotAdvance = "Não é possível avançar o status deste pedido."
	MessageNoStatus      = "A ordem não possui status."
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed single-step progression:
//
//	Created ──> Sent ──> Received ──> InPreparation ──> Ready ──> Finished
//
// Created is the in-memory pre-submission state; Sent marks acceptance into
// the kitchen workflow. Finished is terminal. Advancing is driven by a
// transition table, one step per call, with no implicit jumps.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial in-memory status before the order is submitted.
	Created

	// Sent indicates the order has been accepted into the workflow.
	Sent

	// Received indicates the kitchen has taken the order; entering this
	// status sets the order's received-at timestamp.
	Received

	// InPreparation indicates the kitchen is working on the order.
	InPreparation

	// Ready indicates the order is ready for pickup.
	Ready

	// Finished indicates the order was delivered to the customer.
	// This is a terminal state with no further transitions.
	Finished
)

// getStatusStrings returns the persisted string form of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Created:       "CREATED",
		Sent:          "SENT",
		Received:      "RECEIVED",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Finished:      "FINISHED",
	}
}

// getValidStatusStrings returns only the statuses an order may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:       "CREATED",
		Sent:          "SENT",
		Received:      "RECEIVED",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Finished:      "FINISHED",
	}
}

// getNextStatuses is the advance transition table. Statuses absent from the
// table (Created, Finished, Unknown) have no advance transition.
func getNextStatuses() map[Status]Status {
	return map[Status]Status{
		Sent:          Received,
		Received:      InPreparation,
		InPreparation: Ready,
		Ready:         Finished,
	}
}

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the legal order statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status, e.g. "IN_PREPARATION".
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no further transitions.
func (s Status) IsTerminal() bool {
	return s == Finished
}

// Next returns the single next status in the workflow.
//
// Failure modes:
//   - Unknown status: IllegalStateError with MessageNoStatus
//   - any status without a transition (Finished is terminal, Created is
//     never advanced because orders enter the workflow already Sent):
//     IllegalStateError with MessageCannotAdvance
func (s Status) Next() (Status, error) {
	if s == Unknown {
		return Unknown, NewIllegalStateError(MessageNoStatus)
	}

	next, ok := getNextStatuses()[s]
	if !ok {
		return Unknown, NewIllegalStateError(MessageCannotAdvance)
	}

	return next, nil
}
