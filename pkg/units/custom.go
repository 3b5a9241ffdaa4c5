package units

import "github.com/leapstack-labs/leapunits/pkg/rational"

type customID int

const (
	customCelsius customID = iota
	customFahrenheit
)

// CustomUnit is a named unit related to its base unit by an affine transform
// (scale and offset), such as degrees Celsius. The set of custom units is
// fixed: Celsius and Fahrenheit.
//
// The offset only applies to points; intervals are converted by scale alone.
type CustomUnit struct {
	id        customID
	encoded   string
	pretty    string
	kind      Kind
	composite *CompositeUnit
}

func newCustomUnit(id customID, encoded, pretty string, kind Kind, scale rational.Rational) *CustomUnit {
	u := &CustomUnit{id: id, encoded: encoded, pretty: pretty, kind: kind}
	u.composite = &CompositeUnit{
		parts:      []Part{{Unit: u, Exp: 1}},
		multiplier: scale,
		encoded:    encoded,
		pretty:     pretty,
		kind:       kind,
	}
	return u
}

func (u *CustomUnit) Encoded() string { return u.encoded }
func (u *CustomUnit) Pretty() string  { return u.pretty }
func (u *CustomUnit) Kind() Kind      { return u.kind }
func (u *CustomUnit) String() string  { return u.pretty }

// Composite returns a single-part composite carrying only the scale of the
// unit; the offset is discarded. It ranks unit size and is never used for
// exact conversion.
func (u *CustomUnit) Composite() *CompositeUnit { return u.composite }

func (u *CustomUnit) Times(other Unit) Unit { return u.composite.Times(other) }
func (u *CustomUnit) Div(other Unit) Unit   { return u.composite.Div(other) }

// ToLinear maps value on this scale to kelvin.
func (u *CustomUnit) ToLinear(value float64, interval bool) Quantity {
	switch u.id {
	case customCelsius:
		if interval {
			return Quantity{Value: value, Unit: Kelvin, Interval: true}
		}
		return Quantity{Value: value + 273.15, Unit: Kelvin}
	case customFahrenheit:
		if interval {
			return Quantity{Value: value * 5 / 9, Unit: Kelvin, Interval: true}
		}
		return Quantity{Value: (value + 459.67) * 5 / 9, Unit: Kelvin}
	default:
		panic("units: unknown custom unit " + u.encoded)
	}
}

// FromLinear maps a linear temperature quantity onto this scale. The result
// keeps the interval flag of q.
func (u *CustomUnit) FromLinear(q Quantity) (Quantity, error) {
	kelvins, err := q.ConvertTo(Kelvin)
	if err != nil {
		return Quantity{}, err
	}

	switch u.id {
	case customCelsius:
		if q.Interval {
			return Quantity{Value: kelvins.Value, Unit: u, Interval: true}, nil
		}
		return Quantity{Value: kelvins.Value - 273.15, Unit: u}, nil
	case customFahrenheit:
		if q.Interval {
			return Quantity{Value: kelvins.Value * 9 / 5, Unit: u, Interval: true}, nil
		}
		return Quantity{Value: kelvins.Value*9/5 - 459.67, Unit: u}, nil
	default:
		panic("units: unknown custom unit " + u.encoded)
	}
}

func (u *CustomUnit) sealed() {}
func (u *CustomUnit) named()  {}
