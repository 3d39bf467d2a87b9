package service

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStateTransition is returned when an action is not permitted
	// from the reservation's current status. The reservation is not mutated.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrReservationTerminal is returned when mutating a cancelled or
	// completed reservation.
	ErrReservationTerminal = errors.New("reservation is terminal")

	// ErrMissingClientEmail is returned when contract generation is requested
	// for a client without an email address. Actionable by the operator, not
	// retryable as-is.
	ErrMissingClientEmail = errors.New("client has no email address")

	// ErrGenerationInProgress is never surfaced by Generate itself (a second
	// call joins the in-flight task) but can be reported through Status.
	ErrGenerationInProgress = errors.New("contract generation in progress")

	// ErrInvalidInput is returned for malformed requests outside the
	// condition-report validator's scope.
	ErrInvalidInput = errors.New("invalid input")
)
