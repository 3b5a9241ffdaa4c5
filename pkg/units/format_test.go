package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuperscript(t *testing.T) {
	assert.Equal(t, "⁰", Superscript(0))
	assert.Equal(t, "²", Superscript(2))
	assert.Equal(t, "¹²", Superscript(12))
	assert.Equal(t, "⁻³", Superscript(-3))
	assert.Equal(t, "⁻⁹⁹", Superscript(-99))
}

func TestFormatPower(t *testing.T) {
	assert.Equal(t, "s", FormatPower("s", 1))
	assert.Equal(t, "/s", FormatPower("s", -1))
	assert.Equal(t, "m³", FormatPower("m", 3))
	assert.Equal(t, "/s²", FormatPower("s", -2))
}

func TestUnitFormatting(t *testing.T) {
	tests := []struct {
		name    string
		unit    Unit
		pretty  string
		encoded string
	}{
		{"count times meter", Count.Times(Meter), "m", "m"},
		{"percent", Percent, "%", "%"},
		{"speed", Meter.Div(Second), "m/s", "m s^-1"},
		{"acceleration", Kilogram.Times(Meter).Div(Second).Div(Second), "kg m/s²", "kg m s^-2"},
		{"only negative", NoUnit.Div(Second), "/s", "s^-1"},
		{"several negative", Meter.Div(Second.Times(Kilogram)), "m/s kg", "m s^-1 kg^-1"},
		{"power", Meter.Pow(3), "m³", "m^3"},
		{"negative power", Second.Pow(-2), "/s²", "s^-2"},
		{"celsius", Celsius, "°C", "degC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pretty, tt.unit.String())
			assert.Equal(t, tt.pretty, tt.unit.Pretty())
			assert.Equal(t, tt.encoded, tt.unit.Encoded())
		})
	}
}
