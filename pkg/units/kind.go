package units

import (
	"fmt"
	"strings"
)

// Kind holds the exponents of the base dimensions of a unit. Two units can be
// converted into each other, or added, only if their kinds are equal.
//
// For example ft/h and m/s are both length¹ time⁻¹.
type Kind struct {
	Mass        int
	Time        int
	Length      int
	Temperature int
}

// Well-known kinds.
var (
	KindNumber       = Kind{}
	KindMass         = Kind{Mass: 1}
	KindTime         = Kind{Time: 1}
	KindLength       = Kind{Length: 1}
	KindTemperature  = Kind{Temperature: 1}
	KindSpeed        = KindLength.Div(KindTime)
	KindFrequency    = KindNumber.Div(KindTime)
	KindAcceleration = KindSpeed.Div(KindTime)
	KindArea         = KindLength.Pow(2)
	KindVolume       = KindLength.Pow(3)
)

var kindNames = map[Kind]string{
	KindNumber:       "number",
	KindMass:         "mass",
	KindTime:         "time",
	KindLength:       "length",
	KindTemperature:  "temperature",
	KindSpeed:        "speed",
	KindFrequency:    "frequency",
	KindAcceleration: "acceleration",
	KindArea:         "area",
	KindVolume:       "volume",
}

// Mul adds the exponents componentwise.
func (k Kind) Mul(other Kind) Kind {
	return Kind{
		Mass:        k.Mass + other.Mass,
		Time:        k.Time + other.Time,
		Length:      k.Length + other.Length,
		Temperature: k.Temperature + other.Temperature,
	}
}

// Div subtracts the exponents componentwise.
func (k Kind) Div(other Kind) Kind {
	return Kind{
		Mass:        k.Mass - other.Mass,
		Time:        k.Time - other.Time,
		Length:      k.Length - other.Length,
		Temperature: k.Temperature - other.Temperature,
	}
}

// Pow scales all exponents by exp.
func (k Kind) Pow(exp int) Kind {
	return Kind{
		Mass:        k.Mass * exp,
		Time:        k.Time * exp,
		Length:      k.Length * exp,
		Temperature: k.Temperature * exp,
	}
}

// IsNumber reports whether k is dimensionless.
func (k Kind) IsNumber() bool {
	return k == KindNumber
}

// Name returns the well-known name of k ("speed", "mass", ...) or, for other
// kinds, the exponent notation returned by String.
func (k Kind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return k.String()
}

// String renders the non-zero exponents, e.g. "length¹ time⁻²".
func (k Kind) String() string {
	dims := []struct {
		name string
		exp  int
	}{
		{"mass", k.Mass},
		{"time", k.Time},
		{"length", k.Length},
		{"temperature", k.Temperature},
	}

	var parts []string
	for _, d := range dims {
		if d.exp != 0 {
			parts = append(parts, d.name+Superscript(d.exp))
		}
	}
	if len(parts) == 0 {
		return "number"
	}
	return strings.Join(parts, " ")
}

// GoString implements fmt.GoStringer.
func (k Kind) GoString() string {
	return fmt.Sprintf("units.Kind{Mass: %d, Time: %d, Length: %d, Temperature: %d}", k.Mass, k.Time, k.Length, k.Temperature)
}
