package order

import (
	"fmt"

	"spktrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a production order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Planned ──> InProgress ──> Done
//	   │            │
//	   └────────────┴──> Cancelled
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Planned is the initial status when an order is entered.
	// Orders in this status await decomposition and the first scan.
	Planned

	// InProgress indicates at least one bundle has entered production.
	InProgress

	// Done indicates every bundle of the order reached a terminal stage
	// with all non-rejected bundles complete. Final state.
	Done

	// Cancelled indicates the order was withdrawn before completion.
	// Final state; set by order entry, never by the production core.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Planned:    "PLANNED",
		InProgress: "IN_PROGRESS",
		Done:       "DONE",
		Cancelled:  "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:    "PLANNED",
		InProgress: "IN_PROGRESS",
		Done:       "DONE",
		Cancelled:  "CANCELLED",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Planned, InProgress, Done, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persistence/display name of the status.
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Done || s == Cancelled
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Planned -> InProgress (first bundle scanned onto the floor)
//   - InProgress -> InProgress (subsequent scans, no-op)
//
// Returns (0, error) if the order is already final.
func (s Status) Start() (Status, error) {
	if s != Planned && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start production", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Done.
//
// Valid transitions:
//   - InProgress -> Done (every bundle terminal, non-rejected all complete)
//
// Returns (0, error) for any other source status. Done is a final state.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Done, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Planned -> Cancelled
//   - InProgress -> Cancelled
//
// Returns (0, error) if the order is already final.
func (s Status) Cancel() (Status, error) {
	if s.IsFinal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
