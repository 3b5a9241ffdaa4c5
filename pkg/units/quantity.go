package units

import (
	"math"
	"strconv"
)

// divisionEpsilon is the magnitude below which a divisor counts as zero.
const divisionEpsilon = 1e-30

// Quantity is a value on the scale of a unit. When Interval is false the
// value is an absolute point (37 °C, a temperature); when true it is a
// difference (5 °C, a temperature change).
type Quantity struct {
	Value    float64
	Unit     Unit
	Interval bool
}

// New returns a point quantity.
func New(value float64, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// NewInterval returns an interval quantity.
func NewInterval(value float64, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit, Interval: true}
}

// ConvertTo expresses q in unit. Conversion between units of different kinds
// fails with ErrIncompatibleUnits.
func (q Quantity) ConvertTo(unit Unit) (Quantity, error) {
	if Equal(q.Unit, unit) {
		return q, nil
	}
	if q.Unit.Kind() != unit.Kind() {
		return Quantity{}, &IncompatibleUnitsError{From: q.Unit, To: unit}
	}

	linear := q
	if c, ok := q.Unit.(*CustomUnit); ok {
		linear = c.ToLinear(q.Value, q.Interval)
		if Equal(linear.Unit, unit) {
			return linear, nil
		}
	}

	if c, ok := unit.(*CustomUnit); ok {
		return c.FromLinear(linear)
	}

	// The exact ratio becomes a float exactly once, here.
	ratio := linear.Unit.Composite().multiplier.Div(unit.Composite().multiplier)
	return Quantity{Value: ratio.Float64() * linear.Value, Unit: unit, Interval: q.Interval}, nil
}

// Neg returns -q, keeping unit and interval flag.
func (q Quantity) Neg() Quantity {
	return Quantity{Value: -q.Value, Unit: q.Unit, Interval: q.Interval}
}

// Add returns q + other.
//
// With identical units the values are summed directly. Otherwise the result
// unit is chosen as follows:
//   - if one operand is an interval and the other a point, the point's unit
//   - else, if exactly one unit is custom, that unit
//   - else, the bigger unit
//
// The sum is always computed in linear space. The result is an interval only
// if both operands are intervals.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if q.Unit.Kind() != other.Unit.Kind() {
		return Quantity{}, &IncompatibleUnitsError{From: q.Unit, To: other.Unit}
	}

	interval := q.Interval && other.Interval
	if Equal(q.Unit, other.Unit) {
		return Quantity{Value: q.Value + other.Value, Unit: q.Unit, Interval: interval}, nil
	}

	var target Unit
	switch {
	case q.Interval && !other.Interval:
		target = other.Unit
	case !q.Interval && other.Interval:
		target = q.Unit
	default:
		target = preferredUnit(q.Unit, other.Unit)
	}

	sum, err := combineLinear(toLinear(q), toLinear(other), interval, func(a, b float64) float64 { return a + b })
	if err != nil {
		return Quantity{}, err
	}
	return project(sum, target)
}

// Sub returns q - other.
//
//	interval - interval -> interval
//	interval - point    -> point (computed as -point + interval)
//	point    - interval -> point (computed as point + -interval)
//	point    - point    -> interval
//
// The difference of two points is the distance between them: 37 °C - 86 °F
// is 7 °C (an interval), not 37 °C minus an 86 °F step. Subtracting an
// amount requires an interval operand.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if q.Unit.Kind() != other.Unit.Kind() {
		return Quantity{}, &IncompatibleUnitsError{From: q.Unit, To: other.Unit}
	}

	if Equal(q.Unit, other.Unit) {
		return Quantity{Value: q.Value - other.Value, Unit: q.Unit, Interval: q.Interval == other.Interval}, nil
	}

	if other.Interval {
		return q.Add(other.Neg())
	}
	if q.Interval {
		return other.Neg().Add(q)
	}

	// Both are points with different units.
	target := preferredUnit(q.Unit, other.Unit)

	diff, err := combineLinear(toLinear(q), toLinear(other), true, func(a, b float64) float64 { return a - b })
	if err != nil {
		return Quantity{}, err
	}
	return project(diff, target)
}

// Mul returns q * other. Custom units are first mapped to their linear
// equivalents; the result unit is the product of the linear units.
func (q Quantity) Mul(other Quantity) Quantity {
	left, right := toLinear(q), toLinear(other)
	return Quantity{
		Value:    left.Value * right.Value,
		Unit:     left.Unit.Times(right.Unit),
		Interval: q.Interval && other.Interval,
	}
}

// Div returns q / other. Divisors with a magnitude below 1e-30 fail with
// ErrDivisionByZero.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	if math.Abs(other.Value) < divisionEpsilon {
		return Quantity{}, ErrDivisionByZero
	}

	left, right := toLinear(q), toLinear(other)
	return Quantity{
		Value:    left.Value / right.Value,
		Unit:     left.Unit.Div(right.Unit),
		Interval: q.Interval && other.Interval,
	}, nil
}

// Equal reports whether value, unit and interval flag are all equal.
func (q Quantity) Equal(other Quantity) bool {
	return q.Value == other.Value && q.Interval == other.Interval && Equal(q.Unit, other.Unit)
}

// ApproxEqual is Equal with an absolute tolerance on the value.
func (q Quantity) ApproxEqual(other Quantity, tolerance float64) bool {
	return math.Abs(q.Value-other.Value) <= tolerance && q.Interval == other.Interval && Equal(q.Unit, other.Unit)
}

// String renders the bare number for dimensionless quantities and
// "<value> <symbol>" otherwise.
func (q Quantity) String() string {
	value := strconv.FormatFloat(q.Value, 'g', -1, 64)
	if q.Unit == nil || Equal(q.Unit, NoUnit) {
		return value
	}
	return value + " " + q.Unit.Pretty()
}

// preferredUnit picks the custom unit if exactly one is custom, otherwise the
// bigger one.
func preferredUnit(a, b Unit) Unit {
	ac, bc := IsCustom(a), IsCustom(b)
	switch {
	case ac && !bc:
		return a
	case bc && !ac:
		return b
	default:
		return bigger(a, b)
	}
}

// toLinear maps a custom-unit quantity through its own ToLinear and returns
// other quantities unchanged.
func toLinear(q Quantity) Quantity {
	if c, ok := q.Unit.(*CustomUnit); ok {
		return c.ToLinear(q.Value, q.Interval)
	}
	return q
}

// combineLinear applies op to two linear quantities, promoting both to the
// bigger unit when they differ.
func combineLinear(left, right Quantity, interval bool, op func(a, b float64) float64) (Quantity, error) {
	if Equal(left.Unit, right.Unit) {
		return Quantity{Value: op(left.Value, right.Value), Unit: left.Unit, Interval: interval}, nil
	}

	unit := bigger(left.Unit, right.Unit)
	l, err := left.ConvertTo(unit)
	if err != nil {
		return Quantity{}, err
	}
	r, err := right.ConvertTo(unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: op(l.Value, r.Value), Unit: unit, Interval: interval}, nil
}

// project expresses a linear result in the target unit.
func project(q Quantity, target Unit) (Quantity, error) {
	if c, ok := target.(*CustomUnit); ok {
		return c.FromLinear(q)
	}
	return q.ConvertTo(target)
}
