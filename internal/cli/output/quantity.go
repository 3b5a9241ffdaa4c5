package output

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapunits/pkg/units"
)

// QuantityOutput is the structured form of a quantity.
type QuantityOutput struct {
	Value    float64 `json:"value" yaml:"value"`
	Unit     string  `json:"unit" yaml:"unit"`
	Pretty   string  `json:"pretty" yaml:"pretty"`
	Kind     string  `json:"kind" yaml:"kind"`
	Interval bool    `json:"interval" yaml:"interval"`
	Text     string  `json:"text" yaml:"text"`
}

// PartOutput is one factor of a composite unit.
type PartOutput struct {
	Unit     string `json:"unit" yaml:"unit"`
	Pretty   string `json:"pretty" yaml:"pretty"`
	Exponent int    `json:"exponent" yaml:"exponent"`
}

// UnitOutput is the structured form of a unit.
type UnitOutput struct {
	Encoded    string       `json:"encoded" yaml:"encoded"`
	Pretty     string       `json:"pretty" yaml:"pretty"`
	Kind       string       `json:"kind" yaml:"kind"`
	Dimension  string       `json:"dimension" yaml:"dimension"`
	Multiplier string       `json:"multiplier" yaml:"multiplier"`
	Custom     bool         `json:"custom" yaml:"custom"`
	Parts      []PartOutput `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// UnitsOutput is the structured form of a unit listing.
type UnitsOutput struct {
	Count int          `json:"count" yaml:"count"`
	Units []UnitOutput `json:"units" yaml:"units"`
}

// FormatQuantity renders q like Quantity.String, with the value formatted at
// precision.
func FormatQuantity(q units.Quantity, precision int) string {
	value := FormatValue(q.Value, precision)
	if pretty := q.Unit.Pretty(); pretty != "" {
		return value + " " + pretty
	}
	return value
}

// NewQuantityOutput converts q for structured output.
func NewQuantityOutput(q units.Quantity, precision int) QuantityOutput {
	return QuantityOutput{
		Value:    q.Value,
		Unit:     q.Unit.Encoded(),
		Pretty:   q.Unit.Pretty(),
		Kind:     q.Unit.Kind().Name(),
		Interval: q.Interval,
		Text:     FormatQuantity(q, precision),
	}
}

// NewUnitOutput converts u for structured output.
func NewUnitOutput(u units.Unit) UnitOutput {
	composite := u.Composite()
	out := UnitOutput{
		Encoded:    u.Encoded(),
		Pretty:     u.Pretty(),
		Kind:       u.Kind().Name(),
		Dimension:  u.Kind().String(),
		Multiplier: composite.Multiplier().String(),
		Custom:     units.IsCustom(u),
	}
	for _, p := range composite.Parts() {
		out.Parts = append(out.Parts, PartOutput{Unit: p.Unit.Encoded(), Pretty: p.Unit.Pretty(), Exponent: p.Exp})
	}
	return out
}

// Quantity renders a single result.
func (r *Renderer) Quantity(q units.Quantity) error {
	if ok, err := r.Structured(NewQuantityOutput(q, r.precision)); ok {
		return err
	}

	value := FormatValue(q.Value, r.precision)
	pretty := q.Unit.Pretty()

	if r.EffectiveMode() == ModeMarkdown {
		line := "`" + strings.TrimSpace(value+" "+pretty) + "`"
		if q.Interval {
			line += " (interval)"
		}
		r.Println(line)
		return nil
	}

	line := r.styles.Value.Render(value)
	if pretty != "" {
		line += " " + r.styles.Unit.Render(pretty)
	}
	if q.Interval {
		line += " " + r.styles.Interval.Render("Δ")
	}
	r.Println(line)
	return nil
}

// Unit renders the details of a unit.
func (r *Renderer) Unit(u units.Unit) error {
	out := NewUnitOutput(u)
	if ok, err := r.Structured(out); ok {
		return err
	}

	name := out.Pretty
	if name == "" {
		name = "(dimensionless)"
	}
	r.Header(1, name)

	pairs := [][2]string{
		{"Encoded", out.Encoded},
		{"Pretty", out.Pretty},
		{"Kind", Title(out.Kind)},
		{"Dimension", out.Dimension},
		{"Multiplier", out.Multiplier},
	}
	if out.Custom {
		pairs = append(pairs, [2]string{"Custom", "yes (affine, not a pure multiple of its base)"})
	}

	for _, kv := range pairs {
		if r.EffectiveMode() == ModeMarkdown {
			r.Println(FormatKeyValue(kv[0], kv[1]))
		} else {
			r.Printf("  %s %s\n", r.styles.Muted.Render(kv[0]+":"), kv[1])
		}
	}

	if len(out.Parts) > 0 {
		r.Println()
		rows := make([][]string, 0, len(out.Parts))
		for _, p := range out.Parts {
			rows = append(rows, []string{p.Unit, units.FormatPower(p.Pretty, p.Exponent), strconv.Itoa(p.Exponent)})
		}
		r.Table([]string{"Unit", "Power", "Exponent"}, rows)
	}
	return nil
}

// Units renders a unit listing.
func (r *Renderer) Units(list []units.NamedUnit) error {
	out := UnitsOutput{Count: len(list), Units: make([]UnitOutput, 0, len(list))}
	for _, u := range list {
		out.Units = append(out.Units, NewUnitOutput(u))
	}
	if ok, err := r.Structured(out); ok {
		return err
	}

	r.Header(1, "Units ("+strconv.Itoa(out.Count)+" registered)")
	rows := make([][]string, 0, len(out.Units))
	for _, u := range out.Units {
		rows = append(rows, []string{u.Encoded, u.Pretty, Title(u.Kind), u.Multiplier})
	}
	r.Table([]string{"Encoded", "Pretty", "Kind", "Multiplier"}, rows)
	return nil
}
