package pantry

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is an amount of a grocery expressed in its Unit.
type Quantity struct {
	value decimal.Decimal
}

// Q returns a Quantity from a number.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a decimal quantity like "1.5".
func ParseQuantity(s string) (Quantity, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: invalid quantity %q", ErrValidation, s)
	}
	return Quantity{value: v}, nil
}

func (t Quantity) Equal(p Quantity) bool              { return t.value.Equal(p.value) }
func (t Quantity) LessThan(p Quantity) bool           { return t.value.LessThan(p.value) }
func (t Quantity) LessThanOrEqual(p Quantity) bool    { return t.value.LessThanOrEqual(p.value) }
func (t Quantity) GreaterThan(p Quantity) bool        { return t.value.GreaterThan(p.value) }
func (t Quantity) GreaterThanOrEqual(p Quantity) bool { return t.value.GreaterThanOrEqual(p.value) }
func (t Quantity) Add(p Quantity) Quantity            { return Quantity{value: t.value.Add(p.value)} }
func (t Quantity) Sub(p Quantity) Quantity            { return Quantity{value: t.value.Sub(p.value)} }
func (t Quantity) IsNegative() bool                   { return t.value.IsNegative() }
func (t Quantity) IsPositive() bool                   { return t.value.IsPositive() }
func (t Quantity) IsZero() bool                       { return t.value.IsZero() }
func (q Quantity) String() string                     { return q.value.String() }

// MarshalJSON implements the json.Marshaler interface.
func (t Quantity) MarshalJSON() ([]byte, error) {
	return t.value.MarshalJSON()
}
func (t *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return t.value.UnmarshalJSON(decimalBytes)
}

