package units

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below wrap them, so callers can match with
// errors.Is and still inspect details with errors.As.
var (
	ErrIncompatibleUnits = errors.New("incompatible units")
	ErrInvalidUnitSyntax = errors.New("invalid unit syntax")
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrDuplicateUnit     = errors.New("duplicate unit registration")
	ErrRegistrySealed    = errors.New("unit registry is sealed")
)

// IncompatibleUnitsError reports an operation across units of different kinds.
type IncompatibleUnitsError struct {
	From Unit
	To   Unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("%s: %s (%s) vs %s (%s)",
		ErrIncompatibleUnits, symbolOrNumber(e.From), e.From.Kind().Name(), symbolOrNumber(e.To), e.To.Kind().Name())
}

func (e *IncompatibleUnitsError) Unwrap() error {
	return ErrIncompatibleUnits
}

// SyntaxError reports a malformed unit expression.
type SyntaxError struct {
	Input string // the whole expression
	Part  string // the offending part, if known
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("%s in %q: %s (at %q)", ErrInvalidUnitSyntax, e.Input, e.Msg, e.Part)
	}
	return fmt.Sprintf("%s in %q: %s", ErrInvalidUnitSyntax, e.Input, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidUnitSyntax
}

// UnknownUnitError reports a symbol that is not registered.
type UnknownUnitError struct {
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownUnit, e.Symbol)
}

func (e *UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}

func symbolOrNumber(u Unit) string {
	if s := u.Pretty(); s != "" {
		return s
	}
	return "1"
}
