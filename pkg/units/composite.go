package units

import (
	"slices"

	"github.com/leapstack-labs/leapunits/pkg/rational"
)

// Part is one factor of a composite unit. Exp is never zero.
type Part struct {
	Unit NamedUnit
	Exp  int
}

// CompositeUnit is a product of named units raised to integer exponents,
// with the aggregate multiplier relative to SI base units and the aggregate
// kind. Parts keep the order in which units were first multiplied in, which
// keeps formatting deterministic.
type CompositeUnit struct {
	parts      []Part
	multiplier rational.Rational
	encoded    string
	pretty     string
	kind       Kind
}

func newComposite(parts []Part, multiplier rational.Rational, kind Kind) *CompositeUnit {
	return &CompositeUnit{
		parts:      parts,
		multiplier: multiplier,
		encoded:    encodeParts(parts),
		pretty:     prettyParts(parts),
		kind:       kind,
	}
}

func (c *CompositeUnit) Encoded() string          { return c.encoded }
func (c *CompositeUnit) Pretty() string           { return c.pretty }
func (c *CompositeUnit) Kind() Kind               { return c.kind }
func (c *CompositeUnit) String() string           { return c.pretty }
func (c *CompositeUnit) Composite() *CompositeUnit { return c }

// Multiplier returns the aggregate scale relative to SI base units.
func (c *CompositeUnit) Multiplier() rational.Rational { return c.multiplier }

// Parts returns a copy of the parts.
func (c *CompositeUnit) Parts() []Part {
	return slices.Clone(c.parts)
}

// Exponent returns the exponent of u, or 0 if u is not a part.
func (c *CompositeUnit) Exponent(u NamedUnit) int {
	if i := c.index(u); i >= 0 {
		return c.parts[i].Exp
	}
	return 0
}

func (c *CompositeUnit) index(u NamedUnit) int {
	for i, p := range c.parts {
		if p.Unit == u {
			return i
		}
	}
	return -1
}

// Times merges both part lists, adding exponents of shared units and dropping
// units whose exponent reaches zero.
func (c *CompositeUnit) Times(other Unit) Unit {
	o := other.Composite()
	return newComposite(
		mergeParts(c.parts, o.parts, 1),
		c.multiplier.Mul(o.multiplier),
		c.kind.Mul(o.kind),
	)
}

// Div is Times with the exponents of other negated.
func (c *CompositeUnit) Div(other Unit) Unit {
	o := other.Composite()
	return newComposite(
		mergeParts(c.parts, o.parts, -1),
		c.multiplier.Div(o.multiplier),
		c.kind.Div(o.kind),
	)
}

func mergeParts(left, right []Part, sign int) []Part {
	merged := slices.Clone(left)
	for _, r := range right {
		i := slices.IndexFunc(merged, func(p Part) bool { return p.Unit == r.Unit })
		if i < 0 {
			merged = append(merged, Part{Unit: r.Unit, Exp: sign * r.Exp})
			continue
		}
		if exp := merged[i].Exp + sign*r.Exp; exp != 0 {
			merged[i].Exp = exp
		} else {
			merged = slices.Delete(merged, i, i+1)
		}
	}
	return merged
}

func (c *CompositeUnit) sealed() {}
