package employee

import (
	"fmt"

	"stockflow/internal/pkg/errs"
)

// Position is a warehouse job title. Role is the authorization role a
// position maps to; the mapping is an exhaustive switch so an unmapped
// position surfaces as an error at the boundary instead of silently
// defaulting.
type Position int

const (
	// PositionUnknown catches uninitialized values.
	PositionUnknown Position = iota

	// PositionScanner verifies physical units during the scan pass.
	PositionScanner

	// PositionPacker packs verified orders for delivery.
	PositionPacker

	// PositionDriver delivers packed orders to facilities.
	PositionDriver

	// PositionManager administers orders, employees, and reports.
	PositionManager
)

// Role is the coarse authorization role derived from a position.
type Role string

const (
	RoleScanner Role = "Scanner"
	RolePacker  Role = "Packer"
	RoleDriver  Role = "Driver"
	RoleAdmin   Role = "Admin"
)

func getPositionStrings() map[Position]string {
	return map[Position]string{
		PositionScanner: "Scanner",
		PositionPacker:  "Packer",
		PositionDriver:  "Driver",
		PositionManager: "Manager",
	}
}

// ParsePosition parses a position name from persistence or input.
func ParsePosition(s string) (Position, error) {
	for position, name := range getPositionStrings() {
		if name == s {
			return position, nil
		}
	}
	return PositionUnknown, errs.NewValueIsInvalidErrorWithCause("position is invalid",
		fmt.Errorf("%q is not a known position", s))
}

// Validate checks that the Position is one of the defined titles.
func (p Position) Validate() error {
	if _, ok := getPositionStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("position is invalid",
			fmt.Errorf("%d is not a valid position", p))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value.
func (p Position) String() string {
	if str, ok := getPositionStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Role returns the authorization role for the position. Every defined
// position has a mapping; an undefined position is an error.
func (p Position) Role() (Role, error) {
	switch p {
	case PositionScanner:
		return RoleScanner, nil
	case PositionPacker:
		return RolePacker, nil
	case PositionDriver:
		return RoleDriver, nil
	case PositionManager:
		return RoleAdmin, nil
	case PositionUnknown:
	}
	return "", errs.NewValueIsInvalidErrorWithCause("position has no role",
		fmt.Errorf("%d is not a mapped position", p))
}
