package params

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Panel is the in-process control surface: one textual value per parameter,
// adjusted by keyboard bindings and read by the Registry each frame. It is
// only touched from the render thread.
type Panel struct {
	schema   []Param
	values   map[string]string
	selected int
	onChange []func(p Param, raw string)
}

func NewPanel(schema []Param) *Panel {
	p := &Panel{
		schema: schema,
		values: make(map[string]string, len(schema)),
	}
	for _, param := range schema {
		p.values[param.Name] = param.Default
	}
	return p
}

// Read implements Reader.
func (p *Panel) Read(name string) string {
	return p.values[name]
}

// OnChange registers a listener called after any value changes.
func (p *Panel) OnChange(fn func(param Param, raw string)) {
	p.onChange = append(p.onChange, fn)
}

// Set stores raw as the control's value without validation, the way a text
// field would.
func (p *Panel) Set(name, raw string) error {
	param, ok := p.lookup(name)
	if !ok {
		return fmt.Errorf("unknown parameter %q", name)
	}
	p.update(param, raw)
	return nil
}

// Step moves a parameter by n increments of its domain step, snapping to the
// step grid and clamping to the domain.
func (p *Panel) Step(name string, n int) {
	param, ok := p.lookup(name)
	if !ok {
		return
	}
	d := param.Domain
	cur := float64(ParseFloat(p.values[name]))
	if math.IsNaN(cur) {
		cur = float64(ParseFloat(param.Default))
	}
	next := cur + float64(n)*d.Step
	if d.Step > 0 {
		next = d.Min + math.Round((next-d.Min)/d.Step)*d.Step
	}
	next = math.Max(d.Min, math.Min(d.Max, next))
	p.update(param, formatStep(next, d.Step))
}

// Cycle advances an enum parameter, wrapping from max back to min.
func (p *Panel) Cycle(name string) {
	param, ok := p.lookup(name)
	if !ok {
		return
	}
	d := param.Domain
	next := float64(ParseInt(p.values[name])) + 1
	if next > d.Max || next < d.Min {
		next = d.Min
	}
	p.update(param, strconv.Itoa(int(next)))
}

// Reset restores every parameter to its default value.
func (p *Panel) Reset() {
	for _, param := range p.schema {
		p.update(param, param.Default)
	}
}

// Selected returns the parameter currently targeted by Step bindings.
func (p *Panel) Selected() Param {
	return p.schema[p.selected]
}

// Select moves the selection by delta, wrapping around the schema.
func (p *Panel) Select(delta int) Param {
	n := len(p.schema)
	p.selected = ((p.selected+delta)%n + n) % n
	return p.schema[p.selected]
}

// Values returns a copy of all raw control values keyed by name.
func (p *Panel) Values() map[string]string {
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

func (p *Panel) lookup(name string) (Param, bool) {
	for _, param := range p.schema {
		if param.Name == name {
			return param, true
		}
	}
	return Param{}, false
}

func (p *Panel) update(param Param, raw string) {
	if p.values[param.Name] == raw {
		return
	}
	p.values[param.Name] = raw
	for _, fn := range p.onChange {
		fn(param, raw)
	}
}

// formatStep renders v with as many decimals as the step carries.
func formatStep(v, step float64) string {
	decimals := 0
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		decimals = len(s) - i - 1
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
