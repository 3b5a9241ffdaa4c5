// Package calc evaluates quantity expressions such as
//
//	3 km + 141 m + 592 mm to km
//	Δ 5 degC + 20 degC
//	100.8 km/h to m/s
//
// Fields are separated by whitespace. A field that is exactly "+", "-", "*"
// or "/" is an operator; "*" and "/" bind tighter than "+" and "-". An
// operand is a number optionally preceded by "Δ" or "delta" (marking an
// interval) and followed by unit fields. A trailing "to <unit>" or
// "in <unit>" converts the result.
package calc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/leapstack-labs/leapunits/pkg/units"
)

var (
	// ErrEmptyExpression is returned for blank input.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrSyntax is wrapped by every FieldError.
	ErrSyntax = errors.New("invalid expression")
)

// FieldError reports the field at which an expression could not be parsed.
type FieldError struct {
	Field string
	Index int // zero-based field position, -1 at end of input
	Msg   string
	Err   error // underlying library error, if any
}

func (e *FieldError) Error() string {
	where := "at end of expression"
	if e.Index >= 0 {
		where = fmt.Sprintf("at %q (field %d)", e.Field, e.Index+1)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", ErrSyntax, where, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", ErrSyntax, where, e.Msg)
}

// Unwrap exposes both ErrSyntax and the underlying error to errors.Is.
func (e *FieldError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrSyntax, e.Err}
	}
	return []error{ErrSyntax}
}

// Evaluator evaluates expressions against a unit registry. It holds no
// mutable state and may be shared between goroutines once the registry is
// sealed.
type Evaluator struct {
	registry *units.Registry
	logger   *slog.Logger
}

// New creates an Evaluator. A nil registry selects units.Default(); a nil
// logger discards the trace.
func New(registry *units.Registry, logger *slog.Logger) *Evaluator {
	if registry == nil {
		registry = units.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Evaluator{registry: registry, logger: logger}
}

// Eval evaluates input and returns the resulting quantity.
func (e *Evaluator) Eval(ctx context.Context, input string) (units.Quantity, error) {
	fields := strings.Fields(norm.NFC.String(input))
	if len(fields) == 0 {
		return units.Quantity{}, ErrEmptyExpression
	}

	fields, target, err := e.splitTarget(fields)
	if err != nil {
		return units.Quantity{}, err
	}

	p := &parser{eval: e, ctx: ctx, fields: fields}
	result, err := p.sum()
	if err != nil {
		return units.Quantity{}, err
	}
	if !p.done() {
		return units.Quantity{}, p.errorf("unexpected %q, expected an operator", p.peek())
	}

	if target == nil {
		return result, nil
	}
	converted, err := result.ConvertTo(target)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("convert %s: %w", result, err)
	}
	e.logger.DebugContext(ctx, "convert",
		slog.String("from", result.String()),
		slog.String("to", converted.String()))
	return converted, nil
}

// splitTarget separates a trailing conversion clause. The keyword is the
// last "to" or "in" field that has fields on both sides and no operator
// field after it; any other "in" is the inch.
func (e *Evaluator) splitTarget(fields []string) ([]string, units.Unit, error) {
	for i := len(fields) - 2; i > 0; i-- {
		if fields[i] != "to" && fields[i] != "in" {
			continue
		}
		if slices.ContainsFunc(fields[i+1:], isOperator) {
			continue
		}
		expr := strings.Join(fields[i+1:], " ")
		target, err := e.registry.Parse(expr)
		if err != nil {
			return nil, nil, &FieldError{Field: expr, Index: i + 1, Err: err}
		}
		return fields[:i], target, nil
	}
	return fields, nil, nil
}

type parser struct {
	eval   *Evaluator
	ctx    context.Context
	fields []string
	pos    int
}

func (p *parser) done() bool { return p.pos >= len(p.fields) }

func (p *parser) peek() string {
	if p.done() {
		return ""
	}
	return p.fields[p.pos]
}

func (p *parser) errorf(format string, args ...any) error {
	index := p.pos
	if p.done() {
		index = -1
	}
	return &FieldError{Field: p.peek(), Index: index, Msg: fmt.Sprintf(format, args...)}
}

// sum := product (("+" | "-") product)*
func (p *parser) sum() (units.Quantity, error) {
	left, err := p.product()
	if err != nil {
		return units.Quantity{}, err
	}

	for op := p.peek(); op == "+" || op == "-"; op = p.peek() {
		p.pos++
		right, err := p.product()
		if err != nil {
			return units.Quantity{}, err
		}

		var result units.Quantity
		if op == "+" {
			result, err = left.Add(right)
		} else {
			result, err = left.Sub(right)
		}
		if err != nil {
			return units.Quantity{}, fmt.Errorf("%s %s %s: %w", left, op, right, err)
		}
		p.trace(op, left, right, result)
		left = result
	}
	return left, nil
}

// product := operand (("*" | "/") operand)*
func (p *parser) product() (units.Quantity, error) {
	left, err := p.operand()
	if err != nil {
		return units.Quantity{}, err
	}

	for op := p.peek(); op == "*" || op == "/"; op = p.peek() {
		p.pos++
		right, err := p.operand()
		if err != nil {
			return units.Quantity{}, err
		}

		var result units.Quantity
		if op == "*" {
			result = left.Mul(right)
		} else {
			result, err = left.Div(right)
			if err != nil {
				return units.Quantity{}, fmt.Errorf("%s / %s: %w", left, right, err)
			}
		}
		p.trace(op, left, right, result)
		left = result
	}
	return left, nil
}

// operand := ["Δ" | "delta"] number unitfield*
func (p *parser) operand() (units.Quantity, error) {
	if p.done() {
		return units.Quantity{}, p.errorf("expected a number")
	}

	interval := false
	field := p.peek()
	switch {
	case field == "Δ" || field == "delta":
		interval = true
		p.pos++
		if p.done() {
			return units.Quantity{}, p.errorf("expected a number after %q", field)
		}
		field = p.peek()
	case strings.HasPrefix(field, "Δ"):
		interval = true
		field = strings.TrimPrefix(field, "Δ")
	}

	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return units.Quantity{}, p.errorf("expected a number")
	}
	p.pos++

	start := p.pos
	for !p.done() && !isOperator(p.peek()) {
		if _, err := strconv.ParseFloat(p.peek(), 64); err == nil {
			return units.Quantity{}, p.errorf("unexpected number, expected an operator")
		}
		p.pos++
	}

	unit := units.Unit(units.NoUnit)
	if p.pos > start {
		expr := strings.Join(p.fields[start:p.pos], " ")
		unit, err = p.eval.registry.Parse(expr)
		if err != nil {
			return units.Quantity{}, &FieldError{Field: expr, Index: start, Err: err}
		}
	}

	return units.Quantity{Value: value, Unit: unit, Interval: interval}, nil
}

func (p *parser) trace(op string, left, right, result units.Quantity) {
	p.eval.logger.DebugContext(p.ctx, "reduce",
		slog.String("op", op),
		slog.String("left", left.String()),
		slog.String("right", right.String()),
		slog.String("result", result.String()),
		slog.Bool("interval", result.Interval))
}

func isOperator(field string) bool {
	switch field {
	case "+", "-", "*", "/":
		return true
	}
	return false
}
