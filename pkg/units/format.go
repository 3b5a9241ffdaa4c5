package units

import (
	"strconv"
	"strings"
)

const (
	superscriptDigits = "⁰¹²³⁴⁵⁶⁷⁸⁹"
	superscriptMinus  = '⁻'
)

var superscriptRunes = []rune(superscriptDigits)

// Superscript renders n with Unicode superscript digits, using "⁻" for a
// negative sign.
func Superscript(n int) string {
	var sb strings.Builder
	for _, c := range strconv.Itoa(n) {
		if c == '-' {
			sb.WriteRune(superscriptMinus)
		} else {
			sb.WriteRune(superscriptRunes[c-'0'])
		}
	}
	return sb.String()
}

// FormatPower renders symbol raised to exp in display form. Negative
// exponents are written as a division: FormatPower("s", -2) is "/s²".
func FormatPower(symbol string, exp int) string {
	switch {
	case exp == 1:
		return symbol
	case exp == -1:
		return "/" + symbol
	case exp > 0:
		return symbol + Superscript(exp)
	default:
		return "/" + symbol + Superscript(-exp)
	}
}

// encodeParts renders parts in the ASCII form accepted by Parse, e.g.
// "kg m s^-2".
func encodeParts(parts []Part) string {
	var sb strings.Builder
	for _, p := range parts {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Unit.Encoded())
		if p.Exp != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(p.Exp))
		}
	}
	return sb.String()
}

// prettyParts renders parts in display form: positive exponents first, then a
// single "/" followed by the negative exponents, e.g. "kg m/s²".
func prettyParts(parts []Part) string {
	var sb strings.Builder

	first := true
	for _, p := range parts {
		if p.Exp <= 0 {
			continue
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(p.Unit.Pretty())
		if p.Exp != 1 {
			sb.WriteString(Superscript(p.Exp))
		}
	}

	first = true
	for _, p := range parts {
		if p.Exp >= 0 {
			continue
		}
		if first {
			sb.WriteByte('/')
			first = false
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Unit.Pretty())
		if p.Exp != -1 {
			sb.WriteString(Superscript(-p.Exp))
		}
	}

	return sb.String()
}
