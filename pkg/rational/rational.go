// Package rational implements exact, strictly positive fractions used as unit
// scale multipliers.
//
// A Rational is always stored reduced (gcd(num, den) == 1) with num > 0 and
// den > 0. Values are immutable: the underlying big.Int values are never
// mutated after construction, so a Rational may be copied and shared freely.
package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidRational is returned when a numerator or denominator is not
// strictly positive.
var ErrInvalidRational = errors.New("invalid rational")

// approxDigits is the number of significant decimal digits kept when
// approximating a Rational as a float64 (the IEEE 754 decimal128 context).
const approxDigits = 34

var bigOne = big.NewInt(1)

// One is the multiplicative identity.
var One = Rational{num: bigOne, den: bigOne, approx: 1}

// Rational is a reduced, strictly positive fraction num/den.
type Rational struct {
	num    *big.Int
	den    *big.Int
	approx float64
}

// Of returns the reduced form of mul/div.
func Of(mul, div int64) (Rational, error) {
	if mul <= 0 || div <= 0 {
		return Rational{}, fmt.Errorf("%w: %d/%d", ErrInvalidRational, mul, div)
	}
	return newReduced(big.NewInt(mul), big.NewInt(div)), nil
}

// MustOf is like Of but panics on invalid input. Intended for package-level
// unit definitions.
func MustOf(mul, div int64) Rational {
	r, err := Of(mul, div)
	if err != nil {
		panic(err)
	}
	return r
}

// Int returns n/1.
func Int(n int64) (Rational, error) {
	return Of(n, 1)
}

// OfBig returns the reduced form of mul/div. The arguments are copied.
func OfBig(mul, div *big.Int) (Rational, error) {
	if mul == nil || div == nil || mul.Sign() <= 0 || div.Sign() <= 0 {
		return Rational{}, fmt.Errorf("%w: %v/%v", ErrInvalidRational, mul, div)
	}
	return newReduced(new(big.Int).Set(mul), new(big.Int).Set(div)), nil
}

// Parse parses "n" or "n/d" where n and d are positive integers.
func Parse(s string) (Rational, error) {
	numStr, denStr, found := strings.Cut(strings.TrimSpace(s), "/")
	if !found {
		denStr = "1"
	}
	num, ok := new(big.Int).SetString(strings.TrimSpace(numStr), 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q is not an integer fraction", ErrInvalidRational, s)
	}
	den, ok := new(big.Int).SetString(strings.TrimSpace(denStr), 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q is not an integer fraction", ErrInvalidRational, s)
	}
	return OfBig(num, den)
}

// newReduced takes ownership of num and den, which must both be positive.
func newReduced(num, den *big.Int) Rational {
	switch {
	case num.Cmp(den) == 0:
		return One
	case num.Cmp(bigOne) == 0 || den.Cmp(bigOne) == 0:
		return build(num, den)
	}

	gcd := new(big.Int).GCD(nil, nil, num, den)
	if gcd.Cmp(bigOne) != 0 {
		num.Quo(num, gcd)
		den.Quo(den, gcd)
	}
	return build(num, den)
}

// build assembles an already reduced fraction and derives its approximation.
func build(num, den *big.Int) Rational {
	return Rational{num: num, den: den, approx: approximate(num, den)}
}

func approximate(num, den *big.Int) float64 {
	if den.Cmp(bigOne) == 0 && num.IsInt64() {
		return float64(num.Int64())
	}
	// Enough fractional places to keep approxDigits significant digits.
	places := approxDigits + len(den.String()) - len(num.String())
	if places < 0 {
		places = 0
	}
	q := decimal.NewFromBigInt(num, 0).DivRound(decimal.NewFromBigInt(den, 0), int32(places))
	f, _ := q.Float64()
	return f
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.numerator())
}

// Denom returns a copy of the denominator.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.denominator())
}

// numerator and denominator treat the zero value as One.
func (r Rational) numerator() *big.Int {
	if r.num == nil {
		return bigOne
	}
	return r.num
}

func (r Rational) denominator() *big.Int {
	if r.den == nil {
		return bigOne
	}
	return r.den
}

// Float64 returns the float approximation computed at construction.
func (r Rational) Float64() float64 {
	if r.num == nil {
		return 1
	}
	return r.approx
}

// IsOne reports whether r is the multiplicative identity.
func (r Rational) IsOne() bool {
	return r.numerator().Cmp(bigOne) == 0 && r.denominator().Cmp(bigOne) == 0
}

// Equal reports whether r and other denote the same fraction.
func (r Rational) Equal(other Rational) bool {
	return r.numerator().Cmp(other.numerator()) == 0 && r.denominator().Cmp(other.denominator()) == 0
}

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	a, b := r.numerator(), r.denominator()
	c, d := other.numerator(), other.denominator()
	if b.Cmp(d) == 0 {
		return newReduced(new(big.Int).Add(a, c), new(big.Int).Set(b))
	}
	num := new(big.Int).Mul(a, d)
	num.Add(num, new(big.Int).Mul(c, b))
	return newReduced(num, new(big.Int).Mul(b, d))
}

// Sub returns r - other. The result must stay strictly positive, otherwise
// ErrInvalidRational is returned.
func (r Rational) Sub(other Rational) (Rational, error) {
	a, b := r.numerator(), r.denominator()
	c, d := other.numerator(), other.denominator()
	var num, den *big.Int
	if b.Cmp(d) == 0 {
		num, den = new(big.Int).Sub(a, c), new(big.Int).Set(b)
	} else {
		num = new(big.Int).Mul(a, d)
		num.Sub(num, new(big.Int).Mul(c, b))
		den = new(big.Int).Mul(b, d)
	}
	if num.Sign() <= 0 {
		return Rational{}, fmt.Errorf("%w: %s - %s is not positive", ErrInvalidRational, r, other)
	}
	return newReduced(num, den), nil
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	switch {
	case r.IsOne():
		return other
	case other.IsOne():
		return r
	}
	return newReduced(
		new(big.Int).Mul(r.numerator(), other.numerator()),
		new(big.Int).Mul(r.denominator(), other.denominator()),
	)
}

// Div returns r / other.
func (r Rational) Div(other Rational) Rational {
	switch {
	case other.IsOne():
		return r
	case r.IsOne():
		return other.inverse()
	}
	return newReduced(
		new(big.Int).Mul(r.numerator(), other.denominator()),
		new(big.Int).Mul(r.denominator(), other.numerator()),
	)
}

// inverse swaps numerator and denominator. A reduced fraction stays reduced.
func (r Rational) inverse() Rational {
	return build(r.denominator(), r.numerator())
}

// Pow returns r raised to exp. Negative exponents invert the fraction.
func (r Rational) Pow(exp int) Rational {
	switch {
	case exp == 0:
		return One
	case exp == 1:
		return r
	case exp == -1:
		return r.inverse()
	}

	num, den := r.numerator(), r.denominator()
	if exp < 0 {
		num, den = den, num
		exp = -exp
	}
	e := big.NewInt(int64(exp))
	return build(new(big.Int).Exp(num, e, nil), new(big.Int).Exp(den, e, nil))
}

// Cmp compares r and other by cross-multiplication and returns -1, 0 or +1.
func (r Rational) Cmp(other Rational) int {
	// a/b <=> c/d  is  ad <=> cb
	ad := new(big.Int).Mul(r.numerator(), other.denominator())
	cb := new(big.Int).Mul(other.numerator(), r.denominator())
	return ad.Cmp(cb)
}

// Less reports whether r < other.
func (r Rational) Less(other Rational) bool {
	return r.Cmp(other) < 0
}

// Greater reports whether r > other.
func (r Rational) Greater(other Rational) bool {
	return r.Cmp(other) > 0
}

// String returns "num/den".
func (r Rational) String() string {
	return r.numerator().String() + "/" + r.denominator().String()
}
