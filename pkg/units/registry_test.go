package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapunits/pkg/rational"
)

func TestBuiltinRegistry(t *testing.T) {
	r := NewBuiltinRegistry()
	assert.False(t, r.Sealed())
	assert.Equal(t, len(builtinUnits()), r.Count())

	all := r.All()
	require.NotEmpty(t, all)
	assert.Same(t, NoUnit, all[0])

	// All returns a copy.
	all[0] = Meter
	assert.Same(t, NoUnit, r.All()[0])
}

func TestRegistry_Lookup(t *testing.T) {
	tests := []struct {
		symbol string
		want   NamedUnit
	}{
		{"m", Meter},
		{"degC", Celsius},
		{"°C", Celsius},
		{"degF", Fahrenheit},
		{"°F", Fahrenheit},
		{"%", Percent},
		{"", NoUnit},
		{"dm", Decimeter},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, ok := Lookup(tt.symbol)
			require.True(t, ok)
			assert.Same(t, tt.want, got)
		})
	}

	_, ok := Lookup("furlong")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Meter))
	require.NoError(t, r.Register(Celsius))

	err := r.Register(Meter)
	assert.ErrorIs(t, err, ErrDuplicateUnit)

	// A pretty symbol may not reuse an encoded one either.
	clash := NewLinearUnit("metre", "m", KindLength, rational.One)
	assert.ErrorIs(t, r.Register(clash), ErrDuplicateUnit)

	clash = NewLinearUnit("°C", "celsius", KindTemperature, rational.One)
	assert.ErrorIs(t, r.Register(clash), ErrDuplicateUnit)

	assert.Equal(t, 2, r.Count())
}

func TestRegistry_Sealed(t *testing.T) {
	assert.True(t, Default().Sealed())

	err := Default().Register(NewLinearUnit("furlong", "furlong", KindLength, rational.MustOf(201168, 1000)))
	assert.ErrorIs(t, err, ErrRegistrySealed)

	_, err = Default().Define("kn", "kn", "m/s", rational.MustOf(1852, 3600))
	assert.ErrorIs(t, err, ErrRegistrySealed)

	_, ok := Lookup("kn")
	assert.False(t, ok)
}

func TestRegistry_Define(t *testing.T) {
	r := NewBuiltinRegistry()

	knot, err := r.Define("kn", "kn", "m/s", rational.MustOf(1852, 3600))
	require.NoError(t, err)
	assert.Equal(t, KindSpeed, knot.Kind())
	assert.Equal(t, "463/900", knot.Multiplier().String())

	r.Seal()

	parsed, err := r.Parse("kn")
	require.NoError(t, err)
	assert.Same(t, knot, parsed)

	kph, err := New(1, knot).ConvertTo(KilometerPerHour)
	require.NoError(t, err)
	assert.InDelta(t, 1.852, kph.Value, tolerance)

	// The process-wide registry is unaffected.
	_, ok := Lookup("kn")
	assert.False(t, ok)
}

func TestRegistry_DefineErrors(t *testing.T) {
	r := NewBuiltinRegistry()

	_, err := r.Define("rankine", "°R", "degF", rational.One)
	assert.ErrorIs(t, err, ErrInvalidUnitSyntax)

	_, err = r.Define("ly", "ly", "parsec", rational.MustOf(3066, 10000))
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = r.Define("metre", "metre", "m^0", rational.One)
	assert.ErrorIs(t, err, ErrInvalidUnitSyntax)

	_, err = r.Define("km", "kilometre", "m", rational.MustOf(1000, 1))
	assert.ErrorIs(t, err, ErrDuplicateUnit)
}

func TestRegistry_RegisterRejectsUnparsableSymbols(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		pretty  string
	}{
		{"superscript digit suffix", "mx", "m²x²"},
		{"superscript minus suffix", "xm", "x⁻"},
		{"encoded superscript", "x²", "x"},
		{"caret", "x^2", "x2"},
		{"slash", "m/x", "mx"},
		{"whitespace", "x y", "xy"},
		{"tab in pretty", "xy", "x\ty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewBuiltinRegistry()
			count := r.Count()

			err := r.Register(NewLinearUnit(tt.encoded, tt.pretty, KindLength, rational.One))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidUnitSyntax)
			assert.Equal(t, count, r.Count())

			_, err = r.Define(tt.encoded, tt.pretty, "m", rational.One)
			assert.ErrorIs(t, err, ErrInvalidUnitSyntax)
		})
	}
}

func TestRegistry_RegisteredSymbolsRoundTrip(t *testing.T) {
	r := NewBuiltinRegistry()
	_, err := r.Define("x2", "x₂", "m", rational.MustOf(2, 1))
	require.NoError(t, err)
	_, err = r.Define("deg2", "°2", "K", rational.One)
	require.NoError(t, err)
	r.Seal()

	for _, u := range r.All() {
		for _, symbol := range []string{u.Encoded(), u.Pretty()} {
			got, err := r.Parse(symbol)
			require.NoError(t, err, "symbol %q", symbol)
			assert.True(t, Equal(u, got), "symbol %q", symbol)
		}
	}
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := Default()

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			for _, u := range r.All() {
				got, err := r.Parse(u.Encoded())
				if err != nil {
					return err
				}
				if !Equal(u, got) {
					return assert.AnError
				}
			}
			_, err := r.ParseQuantity("9.81 m/s²")
			return err
		})
	}
	require.NoError(t, g.Wait())
}
