package pantry

import (
	"fmt"
	"strings"
)

// Validators are pure, they run before any mutation so that a failed
// operation never leaves a partial change behind.

// ValidateName fails if s is empty or blank.
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: name is blank", ErrValidation)
	}
	return nil
}

// validateGrocery fails if g is absent or breaks any field invariant.
func validateGrocery(g Grocery) error {
	if g.IsZero() {
		return fmt.Errorf("%w: grocery is absent", ErrValidation)
	}
	if err := ValidateName(g.name); err != nil {
		return err
	}
	if g.quantity.IsNegative() {
		return fmt.Errorf("%w: quantity %s of %q is negative", ErrValidation, g.quantity, g.name)
	}
	if g.total.IsNegative() {
		return fmt.Errorf("%w: total price %s of %q is negative", ErrValidation, g.total, g.name)
	}
	if !g.unit.valid() {
		return fmt.Errorf("%w: unit of %q is missing or unknown", ErrValidation, g.name)
	}
	if g.expiry.IsZero() {
		return fmt.Errorf("%w: expiry of %q is missing", ErrValidation, g.name)
	}
	return nil
}

// validateRemoval fails if name is blank or q is not strictly positive.
func validateRemoval(name string, q Quantity) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if !q.IsPositive() {
		return fmt.Errorf("%w: quantity to remove must be positive, got %s", ErrValidation, q)
	}
	return nil
}

// validateNonEmpty fails if list is nil or empty.
func validateNonEmpty(list []Grocery) error {
	if len(list) == 0 {
		return fmt.Errorf("%w: no groceries", ErrNotFound)
	}
	return nil
}
