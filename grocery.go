package pantry

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/pantry/date"
)

// Grocery is a lot: a quantity of one product, at one expiry date, with the
// total price paid for the whole lot.
//
// A Grocery is a value, the Inventory hands out copies only.
type Grocery struct {
	name     string
	quantity Quantity
	total    Money // total value of the lot, not a unit price
	unit     Unit
	expiry   date.Date
}

// NewGrocery returns a validated Grocery.
func NewGrocery(name string, quantity Quantity, total Money, unit Unit, expiry date.Date) (Grocery, error) {
	g := Grocery{name: name, quantity: quantity, total: total, unit: unit, expiry: expiry}
	if err := validateGrocery(g); err != nil {
		return Grocery{}, err
	}
	return g, nil
}

// ParseGrocery returns a validated Grocery from its textual fields, as typed by a user.
func ParseGrocery(name, quantity, total, unit, expiry string) (Grocery, error) {
	if err := ValidateName(name); err != nil {
		return Grocery{}, err
	}
	q, err := ParseQuantity(quantity)
	if err != nil {
		return Grocery{}, err
	}
	m, err := ParseMoney(total, "")
	if err != nil {
		return Grocery{}, err
	}
	u, err := ParseUnit(unit)
	if err != nil {
		return Grocery{}, err
	}
	on, err := date.Parse(expiry)
	if err != nil {
		return Grocery{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return NewGrocery(name, q, m, u, on)
}

func (g Grocery) Name() string       { return g.name }
func (g Grocery) Quantity() Quantity { return g.quantity }
func (g Grocery) Total() Money       { return g.total }
func (g Grocery) Unit() Unit         { return g.unit }
func (g Grocery) Expiry() date.Date  { return g.expiry }

// IsZero reports whether g is the zero Grocery, i.e. absent.
func (g Grocery) IsZero() bool {
	return g.name == "" && g.quantity.IsZero() && g.total.IsZero() && g.unit == noUnit && g.expiry.IsZero()
}

// sameLot reports whether g and h identify the same lot: same name and same expiry.
func (g Grocery) sameLot(h Grocery) bool { return g.name == h.name && g.expiry == h.expiry }

func (g Grocery) String() string {
	return fmt.Sprintf("%s %s %s (%s) expires %s", g.name, g.quantity, g.unit, g.total, g.expiry)
}

func (g Grocery) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", g.name)
	w.Append("quantity", g.quantity)
	w.Append("total", g.total)
	w.Append("unit", g.unit)
	w.Append("expiry", g.expiry)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes and validates a Grocery.
func (g *Grocery) UnmarshalJSON(data []byte) error {
	var temp struct {
		Name     string    `json:"name"`
		Quantity Quantity  `json:"quantity"`
		Total    Money     `json:"total"`
		Unit     Unit      `json:"unit"`
		Expiry   date.Date `json:"expiry"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	v, err := NewGrocery(temp.Name, temp.Quantity, temp.Total, temp.Unit, temp.Expiry)
	if err != nil {
		return err
	}
	*g = v
	return nil
}
