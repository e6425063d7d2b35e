package pantry

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// defaultFraction is the working precision when the currency is unknown.
const defaultFraction = 2

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money in the given currency. An empty currency is compatible with any other.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses an amount like "12.50" in the given currency.
func ParseMoney(s, currency string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: invalid amount %q", ErrValidation, s)
	}
	return Money{value: v, cur: currency}, nil
}

// currency returns the money's currency, or nil when the code is empty or unknown.
func (m Money) currency() *money.Currency {
	if m.cur == "" {
		return nil
	}
	return money.GetCurrency(m.cur)
}

// fraction returns the number of decimal digits of the currency minor unit.
func (m Money) fraction() int32 {
	if c := m.currency(); c != nil {
		return int32(c.Fraction)
	}
	return defaultFraction
}

// String returns the string representation of the money value.
func (m Money) String() string {
	c := m.currency()
	if c == nil {
		return m.value.StringFixed(defaultFraction)
	}
	dec := m.value.Round(int32(c.Fraction)).Shift(int32(c.Fraction))
	return c.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Mul(n Quantity) Money     { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// compatible reports whether m can be summed with an amount in currency.
func (m Money) compatible(currency string) bool {
	return m.cur == "" || currency == "" || m.cur == currency
}

// unitPrice returns the price of one unit of q, rounded half-up to the currency precision.
func (m Money) unitPrice(q Quantity) Money {
	return Money{value: m.value.Div(q.value).Round(m.fraction()), cur: m.cur}
}

// in returns m expressed in currency when m has none.
func (m Money) in(currency string) Money {
	if m.cur == "" {
		m.cur = currency
	}
	return m
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var temp struct {
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*m = M(temp.Amount, temp.Currency)
	return nil
}
