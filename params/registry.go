package params

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Reader exposes the current textual value of each parameter control.
type Reader interface {
	Read(name string) string
}

// Values is one frame's worth of coerced parameter values.
type Values struct {
	Mode         int32
	Octaves      int32
	Lacunarity   float32
	Gain         float32
	FBMScale     float32
	VoroScale    float32
	CrackWidth   float32
	WarpStrength float32
	FlowSpeed    float32
	Palette      int32
}

// Registry is a read-through view over the parameter controls. It holds no
// values of its own.
type Registry struct {
	reader Reader
	schema []Param
	byName map[string]int
}

func NewRegistry(reader Reader, schema []Param) *Registry {
	r := &Registry{
		reader: reader,
		schema: schema,
		byName: make(map[string]int, len(schema)),
	}
	for i, p := range schema {
		r.byName[p.Name] = i
	}
	return r
}

// Params returns the schema in display order.
func (r *Registry) Params() []Param {
	return r.schema
}

func (r *Registry) Lookup(name string) (Param, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Param{}, false
	}
	return r.schema[i], true
}

// Snapshot reads every control once and coerces it to its declared kind.
// Values outside a parameter's domain are passed through unchanged.
func (r *Registry) Snapshot() Values {
	return Values{
		Mode:         ParseInt(r.reader.Read(Mode)),
		Octaves:      ParseInt(r.reader.Read(Octaves)),
		Lacunarity:   ParseFloat(r.reader.Read(Lacunarity)),
		Gain:         ParseFloat(r.reader.Read(Gain)),
		FBMScale:     ParseFloat(r.reader.Read(FBMScale)),
		VoroScale:    ParseFloat(r.reader.Read(VoroScale)),
		CrackWidth:   ParseFloat(r.reader.Read(CrackWidth)),
		WarpStrength: ParseFloat(r.reader.Read(WarpStrength)),
		FlowSpeed:    ParseFloat(r.reader.Read(FlowSpeed)),
		Palette:      ParseInt(r.reader.Read(Palette)),
	}
}

// Describe formats the named parameter's current value for display.
func (r *Registry) Describe(name string) string {
	p, ok := r.Lookup(name)
	if !ok {
		return ""
	}
	return Describe(p, r.reader.Read(name))
}

// Describe formats a raw control value: integers as plain decimal, floats
// fixed to two decimal places.
func Describe(p Param, raw string) string {
	if p.Kind.Integral() {
		return strconv.Itoa(int(ParseInt(raw)))
	}
	return strconv.FormatFloat(float64(ParseFloat(raw)), 'f', 2, 32)
}

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
)

// ParseInt reads the leading integer of s, truncating any fractional part.
// Text without a leading integer yields 0, which is what an integer uniform
// receives for a NaN value.
func ParseInt(s string) int32 {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	// out of range values come back saturated alongside ErrRange
	v, _ := strconv.ParseInt(m, 10, 64)
	return int32(v)
}

// ParseFloat reads the leading decimal number of s. Text without one yields NaN.
func ParseFloat(s string) float32 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return float32(math.NaN())
	}
	// bitSize 32 rounds once, straight to the uniform's precision
	v, _ := strconv.ParseFloat(m, 32)
	return float32(v)
}
