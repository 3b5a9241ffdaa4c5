package units

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/leapstack-labs/leapunits/pkg/rational"
)

// Registry maps unit symbols to named unit singletons. Each unit is known by
// its encoded and its pretty symbol, and no symbol maps to two units.
//
// A Registry is populated once and then sealed. Register is not safe for
// concurrent use; after Seal the registry is read-only and may be shared
// between goroutines without locking.
type Registry struct {
	byEncoded map[string]NamedUnit
	byPretty  map[string]NamedUnit
	all       []NamedUnit
	sealed    bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byEncoded: make(map[string]NamedUnit),
		byPretty:  make(map[string]NamedUnit),
	}
}

// NewBuiltinRegistry creates an unsealed registry holding the built-in
// units. Callers may register additional units before sealing it.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, u := range builtinUnits() {
		if err := r.Register(u); err != nil {
			panic(err)
		}
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry of built-in units. It is built on
// first use and sealed.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewBuiltinRegistry()
		r.Seal()
		defaultRegistry = r
	})
	return defaultRegistry
}

// Register adds u under its encoded and pretty symbols. It fails with
// ErrDuplicateUnit if either symbol is already taken, with
// ErrInvalidUnitSyntax if Parse could not read a symbol back, and with
// ErrRegistrySealed after Seal.
func (r *Registry) Register(u NamedUnit) error {
	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, u.Encoded())
	}
	for _, symbol := range []string{u.Encoded(), u.Pretty()} {
		if msg := checkSymbol(symbol); msg != "" {
			return &SyntaxError{Input: symbol, Msg: msg}
		}
	}
	for _, symbol := range []string{u.Encoded(), u.Pretty()} {
		if _, ok := r.byEncoded[symbol]; ok {
			return fmt.Errorf("%w: a unit with symbol %q is already defined", ErrDuplicateUnit, symbol)
		}
		if _, ok := r.byPretty[symbol]; ok {
			return fmt.Errorf("%w: a unit with symbol %q is already defined", ErrDuplicateUnit, symbol)
		}
	}

	r.byEncoded[u.Encoded()] = u
	r.byPretty[u.Pretty()] = u
	r.all = append(r.all, u)
	return nil
}

// checkSymbol reports why symbol cannot be parsed back as a single part, or
// "" if it can. The empty symbol is the dimensionless unit.
func checkSymbol(symbol string) string {
	if symbol == "" {
		return ""
	}
	if strings.IndexFunc(symbol, unicode.IsSpace) >= 0 {
		return "symbol contains whitespace"
	}
	if strings.ContainsAny(symbol, "/^") {
		return `symbol contains "/" or "^"`
	}
	runes := []rune(symbol)
	if isSuperscript(runes[len(runes)-1]) {
		return "symbol ends in a superscript exponent"
	}
	return ""
}

// Define registers a linear unit given as scale times a base unit
// expression, e.g. Define("kn", "kn", "m/s", 1852/3600). The base may not
// contain custom units, which have no exact multiplier.
func (r *Registry) Define(encoded, pretty, base string, scale rational.Rational) (*LinearUnit, error) {
	baseUnit, err := r.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("base of %q: %w", encoded, err)
	}
	for _, p := range baseUnit.Composite().parts {
		if IsCustom(p.Unit) {
			return nil, &SyntaxError{Input: base, Part: p.Unit.Encoded(), Msg: "base unit must be linear"}
		}
	}

	u := NewLinearUnit(encoded, pretty, baseUnit.Kind(), scale.Mul(baseUnit.Composite().multiplier))
	if err := r.Register(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal was called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Lookup returns the unit registered under symbol, trying encoded symbols
// first and pretty symbols second.
func (r *Registry) Lookup(symbol string) (NamedUnit, bool) {
	if u, ok := r.byEncoded[symbol]; ok {
		return u, true
	}
	u, ok := r.byPretty[symbol]
	return u, ok
}

// All returns the registered units in registration order.
func (r *Registry) All() []NamedUnit {
	return slices.Clone(r.all)
}

// Count returns the number of registered units.
func (r *Registry) Count() int {
	return len(r.all)
}

// Parse parses a unit expression using the process-wide registry.
func Parse(expr string) (Unit, error) {
	return Default().Parse(expr)
}

// MustParse is like Parse but panics on error.
func MustParse(expr string) Unit {
	u, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return u
}

// ParseQuantity parses "<number> <unit expression>" using the process-wide
// registry.
func ParseQuantity(s string) (Quantity, error) {
	return Default().ParseQuantity(s)
}

// Lookup finds a unit in the process-wide registry.
func Lookup(symbol string) (NamedUnit, bool) {
	return Default().Lookup(symbol)
}

// All returns the units of the process-wide registry.
func All() []NamedUnit {
	return Default().All()
}
