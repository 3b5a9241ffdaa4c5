package units

import (
	"strconv"

	"github.com/leapstack-labs/leapunits/pkg/rational"
)

// LinearUnit is a named unit converted to the SI base unit of its kind by a
// pure multiplication, e.g. km = 1000 m.
type LinearUnit struct {
	encoded    string
	pretty     string
	kind       Kind
	multiplier rational.Rational
	composite  *CompositeUnit
}

// NewLinearUnit creates a named linear unit. Units used for parsing must also
// be registered with a Registry.
func NewLinearUnit(encoded, pretty string, kind Kind, multiplier rational.Rational) *LinearUnit {
	u := &LinearUnit{
		encoded:    encoded,
		pretty:     pretty,
		kind:       kind,
		multiplier: multiplier,
	}

	// The dimensionless identity folds to an empty composite, so "no unit"
	// is canonical.
	if multiplier.IsOne() && kind.IsNumber() {
		u.composite = &CompositeUnit{multiplier: rational.One, encoded: encoded, pretty: pretty, kind: KindNumber}
	} else {
		u.composite = &CompositeUnit{
			parts:      []Part{{Unit: u, Exp: 1}},
			multiplier: multiplier,
			encoded:    encoded,
			pretty:     pretty,
			kind:       kind,
		}
	}
	return u
}

func (u *LinearUnit) Encoded() string { return u.encoded }
func (u *LinearUnit) Pretty() string  { return u.pretty }
func (u *LinearUnit) Kind() Kind      { return u.kind }
func (u *LinearUnit) String() string  { return u.pretty }

// Multiplier returns the scale relative to the SI base unit.
func (u *LinearUnit) Multiplier() rational.Rational { return u.multiplier }

// Composite returns the cached single-part composite form.
func (u *LinearUnit) Composite() *CompositeUnit { return u.composite }

func (u *LinearUnit) Times(other Unit) Unit {
	if Equal(u, NoUnit) {
		return other
	}
	if Equal(other, NoUnit) {
		return u
	}
	return u.composite.Times(other)
}

func (u *LinearUnit) Div(other Unit) Unit {
	if Equal(other, NoUnit) {
		return u
	}
	return u.composite.Div(other)
}

// Pow returns u raised to exp.
func (u *LinearUnit) Pow(exp int) Unit {
	switch {
	case exp == 1:
		return u.composite
	case exp == 0 || len(u.composite.parts) == 0:
		return NoUnit
	}

	return &CompositeUnit{
		parts:      []Part{{Unit: u, Exp: exp}},
		multiplier: u.multiplier.Pow(exp),
		encoded:    u.encoded + "^" + strconv.Itoa(exp),
		pretty:     FormatPower(u.pretty, exp),
		kind:       u.kind.Pow(exp),
	}
}

func (u *LinearUnit) sealed() {}
func (u *LinearUnit) named()  {}
