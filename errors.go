package pantry

import "errors"

// Error kinds returned by the inventory. Every error returned by this package
// wraps exactly one of them, test with errors.Is.
var (
	// ErrValidation reports malformed input: blank name, non-positive quantity,
	// bad date, unrecognized unit, or an absent grocery.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound reports a query that yields no data where data is required.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientQuantity reports a removal of more than is on hand.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)
