package units

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// maxExponent bounds the absolute value of exponents in unit expressions.
const maxExponent = 99

// Parse parses a unit expression:
//
//	expr     := half ("/" half)?
//	half     := part (whitespace part)*
//	part     := symbol exponent?
//	exponent := "^" "-"? digit{1,3} | "⁻"? superscript-digit{1,3}
//
// An exponent is a non-zero integer between -99 and 99. Leading zeros are
// accepted, so "m^007" is "m^7"; "+" signs are not. A unit with exponent 1
// may carry it explicitly ("degC^1"), but a custom unit takes no other.
//
// The slash negates every exponent after it, so "m s^-1", "m/s" and
// "s^-1/m⁻¹" all parse to the same unit. A part with exponent 1 parses to the
// registered singleton itself. Unknown symbols fail with ErrUnknownUnit,
// everything else malformed with ErrInvalidUnitSyntax.
func (r *Registry) Parse(expr string) (Unit, error) {
	halves := strings.Split(expr, "/")
	switch len(halves) {
	case 1:
		return r.parseHalf(expr, halves[0])
	case 2:
		if strings.TrimSpace(halves[1]) == "" {
			return nil, &SyntaxError{Input: expr, Msg: `missing units after "/"`}
		}
		num, err := r.parseHalf(expr, halves[0])
		if err != nil {
			return nil, err
		}
		den, err := r.parseHalf(expr, halves[1])
		if err != nil {
			return nil, err
		}
		return num.Div(den), nil
	default:
		return nil, &SyntaxError{Input: expr, Msg: `more than one "/"`}
	}
}

// ParseQuantity parses "<number>" or "<number> <unit expression>" into a
// point quantity. It accepts the output of Quantity.String.
func (r *Registry) ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	number, unitExpr := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		number, unitExpr = s[:i], s[i:]
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	unit, err := r.Parse(unitExpr)
	if err != nil {
		return Quantity{}, err
	}
	return New(value, unit), nil
}

func (r *Registry) parseHalf(expr, half string) (Unit, error) {
	var result Unit = NoUnit
	for _, part := range strings.Fields(half) {
		u, err := r.parsePart(expr, part)
		if err != nil {
			return nil, err
		}
		result = result.Times(u)
	}
	return result, nil
}

func (r *Registry) parsePart(expr, part string) (Unit, error) {
	symbol, exp, msg := splitExponent(part)
	if msg != "" {
		return nil, &SyntaxError{Input: expr, Part: part, Msg: msg}
	}
	if exp == 0 || exp < -maxExponent || exp > maxExponent {
		return nil, &SyntaxError{Input: expr, Part: part, Msg: fmt.Sprintf("%d is not a valid exponent", exp)}
	}
	if symbol == "" {
		return nil, &SyntaxError{Input: expr, Part: part, Msg: "missing unit symbol"}
	}

	base, ok := r.Lookup(symbol)
	if !ok {
		return nil, &UnknownUnitError{Symbol: symbol}
	}
	if exp == 1 {
		return base, nil
	}

	switch b := base.(type) {
	case *LinearUnit:
		return b.Pow(exp), nil
	case *CustomUnit:
		return nil, &SyntaxError{Input: expr, Part: part, Msg: fmt.Sprintf("non-linear unit %s cannot be raised to a power", b.Pretty())}
	default:
		panic("units: unexpected NamedUnit implementation")
	}
}

// splitExponent separates a part into its symbol and exponent. A non-empty
// msg describes a malformed exponent.
func splitExponent(part string) (symbol string, exp int, msg string) {
	if strings.Contains(part, "^") {
		pieces := strings.Split(part, "^")
		if len(pieces) != 2 {
			return "", 0, `more than one "^"`
		}
		exp, msg = parseCaretExponent(pieces[1])
		return pieces[0], exp, msg
	}

	runes := []rune(part)
	n := 0
	for n < len(runes) && isSuperscript(runes[len(runes)-1-n]) {
		n++
	}
	if n == 0 {
		return part, 1, ""
	}

	exp, msg = parseSuperscriptExponent(runes[len(runes)-n:])
	return string(runes[:len(runes)-n]), exp, msg
}

func parseCaretExponent(s string) (int, string) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || strings.IndexFunc(digits, func(c rune) bool { return c < '0' || c > '9' }) >= 0 {
		return 0, fmt.Sprintf("%q is not a valid exponent", s)
	}
	if len(digits) > 3 {
		return 0, fmt.Sprintf("%s is not a valid exponent", s)
	}
	n, _ := strconv.Atoi(digits)
	if digits != s {
		n = -n
	}
	return n, ""
}

func parseSuperscriptExponent(sup []rune) (int, string) {
	negative := false
	n := 0
	digits := 0
	for i, c := range sup {
		if c == superscriptMinus {
			if i != 0 {
				return 0, fmt.Sprintf("%q is not a valid exponent", string(sup))
			}
			negative = true
			continue
		}
		if digits == 3 {
			return 0, fmt.Sprintf("%q is not a valid exponent", string(sup))
		}
		n = n*10 + superscriptValue(c)
		digits++
	}
	if digits == 0 {
		return 0, fmt.Sprintf("%q is not a valid exponent", string(sup))
	}
	if negative {
		n = -n
	}
	return n, ""
}

func isSuperscript(c rune) bool {
	return c == superscriptMinus || superscriptValue(c) >= 0
}

func superscriptValue(c rune) int {
	for i, d := range superscriptRunes {
		if d == c {
			return i
		}
	}
	return -1
}
