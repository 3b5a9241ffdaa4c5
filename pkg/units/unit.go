package units

// Unit is a unit of measure. The set of implementations is closed:
// *LinearUnit, *CustomUnit and *CompositeUnit.
//
// Multipliers always relate to the SI base units of the unit's kind, never to
// another named unit.
type Unit interface {
	// Encoded returns the ASCII symbol form, e.g. "m s^-2".
	Encoded() string
	// Pretty returns the display form, e.g. "m/s²".
	Pretty() string
	// Kind returns the dimension vector.
	Kind() Kind
	// Times returns the product of the two units.
	Times(other Unit) Unit
	// Div returns the quotient of the two units.
	Div(other Unit) Unit
	// Composite returns the canonical composite form of the unit.
	Composite() *CompositeUnit
	// String returns Pretty().
	String() string

	sealed()
}

// NamedUnit is a unit with its own symbol: *LinearUnit or *CustomUnit.
// Named units are singletons and compare by identity inside composite parts.
type NamedUnit interface {
	Unit
	named()
}

// Equal reports whether a and b denote the same unit.
//
// A custom unit equals only itself. All other units are compared through
// their composite forms (multiplier, kind and part exponents), so that
// Count.Times(Meter) equals Meter.
func Equal(a, b Unit) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if same(a, b) {
		return true
	}
	if IsCustom(a) || IsCustom(b) {
		return false
	}

	ca, cb := a.Composite(), b.Composite()
	if !ca.multiplier.Equal(cb.multiplier) {
		return false
	}
	if ca.kind != cb.kind {
		return false
	}
	if len(ca.parts) != len(cb.parts) {
		return false
	}
	for _, p := range ca.parts {
		if cb.Exponent(p.Unit) != p.Exp {
			return false
		}
	}
	return true
}

// IsCustom reports whether u is a non-linear named unit.
func IsCustom(u Unit) bool {
	_, ok := u.(*CustomUnit)
	return ok
}

// same reports reference identity for the pointer-backed implementations.
func same(a, b Unit) bool {
	switch a := a.(type) {
	case *LinearUnit:
		b, ok := b.(*LinearUnit)
		return ok && a == b
	case *CustomUnit:
		b, ok := b.(*CustomUnit)
		return ok && a == b
	case *CompositeUnit:
		b, ok := b.(*CompositeUnit)
		return ok && a == b
	default:
		panic("units: unexpected Unit implementation")
	}
}

// bigger returns whichever unit has the larger scale multiplier, preferring b
// on ties.
func bigger(a, b Unit) Unit {
	if a.Composite().multiplier.Greater(b.Composite().multiplier) {
		return a
	}
	return b
}
