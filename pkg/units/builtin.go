package units

import "github.com/leapstack-labs/leapunits/pkg/rational"

// Dimensionless units.
var (
	NoUnit  = NewLinearUnit("", "", KindNumber, rational.One)
	Count   = NoUnit
	Percent = NewLinearUnit("%", "%", KindNumber, rational.MustOf(1, 100))
)

// SI base units.
var (
	Meter    = NewLinearUnit("m", "m", KindLength, rational.One)
	Second   = NewLinearUnit("s", "s", KindTime, rational.One)
	Kelvin   = NewLinearUnit("K", "K", KindTemperature, rational.One)
	Kilogram = NewLinearUnit("kg", "kg", KindMass, rational.One)
)

// Mass.
var (
	Gram      = NewLinearUnit("g", "g", KindMass, rational.MustOf(1, 1000))
	Milligram = NewLinearUnit("mg", "mg", KindMass, rational.MustOf(1, 1000000))
	Tonne     = NewLinearUnit("t", "t", KindMass, rational.MustOf(1000, 1))
	Pound     = NewLinearUnit("lb", "lb", KindMass, rational.MustOf(45359237, 100000000))
	Ounce     = NewLinearUnit("oz", "oz", KindMass, rational.MustOf(45359237, 1600000000))
)

// Time.
var (
	Millisecond = NewLinearUnit("ms", "ms", KindTime, rational.MustOf(1, 1000))
	Minute      = NewLinearUnit("min", "min", KindTime, rational.MustOf(60, 1))
	Hour        = NewLinearUnit("h", "h", KindTime, rational.MustOf(60*60, 1))
	Day         = NewLinearUnit("d", "d", KindTime, rational.MustOf(24*60*60, 1))
	Week        = NewLinearUnit("wk", "wk", KindTime, rational.MustOf(7*24*60*60, 1))
)

// Length.
var (
	Millimeter = NewLinearUnit("mm", "mm", KindLength, rational.MustOf(1, 1000))
	Centimeter = NewLinearUnit("cm", "cm", KindLength, rational.MustOf(1, 100))
	Decimeter  = NewLinearUnit("dm", "dm", KindLength, rational.MustOf(1, 10))
	Kilometer  = NewLinearUnit("km", "km", KindLength, rational.MustOf(1000, 1))
	Inch       = NewLinearUnit("in", "in", KindLength, rational.MustOf(254, 10000))
	Foot       = NewLinearUnit("ft", "ft", KindLength, rational.MustOf(3048, 10000))
	Yard       = NewLinearUnit("yd", "yd", KindLength, rational.MustOf(9144, 10000))
	Mile       = NewLinearUnit("mi", "mi", KindLength, rational.MustOf(1609344, 1000))
)

// Temperature scales with an offset.
var (
	Celsius    = newCustomUnit(customCelsius, "degC", "°C", KindTemperature, rational.One)
	Fahrenheit = newCustomUnit(customFahrenheit, "degF", "°F", KindTemperature, rational.MustOf(5, 9))
)

// Common derived units.
var (
	MeterPerSecond   = Meter.Div(Second)
	KilometerPerHour = Kilometer.Div(Hour)
)

// builtinUnits lists the named units in registration order.
func builtinUnits() []NamedUnit {
	return []NamedUnit{
		NoUnit, Percent,
		Meter, Second, Kelvin, Kilogram,
		Gram, Milligram,
		Minute, Hour, Day, Millisecond,
		Millimeter, Centimeter, Decimeter, Kilometer, Inch, Foot, Yard,
		Celsius, Fahrenheit,
		Mile, Pound, Ounce, Tonne, Week,
	}
}
