package order

import (
	"fmt"

	"stockflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a warehouse order.
//
// State transitions:
//
//	Created ──> Scanned ──> Delivered
//	   │  ▲        │
//	   │  └────────┘ (administrator revert)
//	   └──> Cancelled
//
// Entering Scanned is the stock-commitment point: inventory is decremented
// exactly when an order first reaches this status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status. Line items exist, stock is untouched,
	// and the scan pass has not been completed.
	Created

	// Scanned indicates the scan pass finished and stock was committed.
	Scanned

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is a terminal status reachable only from Created.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Scanned:   "Scanned",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Scanned:   "Scanned",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status name as it appears in API payloads
// and persisted audit rows.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a known status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateTransition checks the legality of moving from s to target.
// A same-status request is not a transition and must be short-circuited by
// the caller before this check.
//
// Allowed transitions:
//   - Created -> Scanned (stock commitment; scan completeness is checked
//     by the caller, which owns the scan session)
//   - Created -> Cancelled
//   - Scanned -> Delivered
//   - any non-terminal status -> Created (administrator revert)
func (s Status) ValidateTransition(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	allowed := false
	switch target {
	case Scanned:
		allowed = s == Created
	case Cancelled:
		allowed = s == Created
	case Delivered:
		allowed = s == Scanned
	case Created:
		allowed = !s.IsTerminal()
	case Unknown:
	}

	if !allowed {
		return errs.NewInvalidStateErrorWithCause("transition is not allowed",
			fmt.Errorf("%s cannot become %s", s, target))
	}
	return nil
}
