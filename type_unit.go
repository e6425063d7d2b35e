package pantry

import (
	"fmt"
	"strings"
)

// Unit is the label a grocery quantity is measured in.
//
// Units are opaque labels, they are never converted into one another.
type Unit int

const (
	noUnit Unit = iota
	Kilogram
	Liter
	Pieces
)

func (u Unit) String() string {
	switch u {
	case Kilogram:
		return "kilogram"
	case Liter:
		return "liter"
	case Pieces:
		return "pcs"
	default:
		return ""
	}
}

// ParseUnit parses a unit label, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kilogram":
		return Kilogram, nil
	case "liter":
		return Liter, nil
	case "pcs":
		return Pieces, nil
	case "":
		return noUnit, fmt.Errorf("%w: unit is blank", ErrValidation)
	default:
		return noUnit, fmt.Errorf("%w: unknown unit %q want one of kilogram, liter, pcs", ErrValidation, s)
	}
}

// valid reports whether u is one of the recognized units.
func (u Unit) valid() bool { return u == Kilogram || u == Liter || u == Pieces }

func (u Unit) MarshalText() ([]byte, error) {
	if !u.valid() {
		return nil, fmt.Errorf("%w: unit %d", ErrValidation, int(u))
	}
	return []byte(u.String()), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
