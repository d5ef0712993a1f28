package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapReader is a canned control surface.
type mapReader map[string]string

func (m mapReader) Read(name string) string { return m[name] }

func defaultsReader() mapReader {
	r := mapReader{}
	for _, p := range DefaultSchema() {
		r[p.Name] = p.Default
	}
	return r
}

func TestSnapshotTruncatesIntegers(t *testing.T) {
	r := defaultsReader()
	r[Octaves] = "5.7"
	r[Mode] = "1.99"
	r[Palette] = "-2.9"

	v := NewRegistry(r, DefaultSchema()).Snapshot()
	assert.Equal(t, int32(5), v.Octaves)
	assert.Equal(t, int32(1), v.Mode)
	assert.Equal(t, int32(-2), v.Palette)
}

func TestSnapshotReadsEveryControl(t *testing.T) {
	r := mapReader{
		Mode:         "2",
		Octaves:      "7",
		Lacunarity:   "2.25",
		Gain:         "0.55",
		FBMScale:     "3.5",
		VoroScale:    "8",
		CrackWidth:   "0.12",
		WarpStrength: "1.75",
		FlowSpeed:    "0.4",
		Palette:      "3",
	}
	want := Values{
		Mode:         2,
		Octaves:      7,
		Lacunarity:   2.25,
		Gain:         0.55,
		FBMScale:     3.5,
		VoroScale:    8,
		CrackWidth:   0.12,
		WarpStrength: 1.75,
		FlowSpeed:    0.4,
		Palette:      3,
	}
	assert.Equal(t, want, NewRegistry(r, DefaultSchema()).Snapshot())
}

func TestSnapshotDoesNotClamp(t *testing.T) {
	r := defaultsReader()
	r[Octaves] = "42"
	r[Gain] = "9.5"
	r[CrackWidth] = "-1"

	v := NewRegistry(r, DefaultSchema()).Snapshot()
	assert.Equal(t, int32(42), v.Octaves)
	assert.Equal(t, float32(9.5), v.Gain)
	assert.Equal(t, float32(-1), v.CrackWidth)
}

func TestSnapshotIsReadThrough(t *testing.T) {
	r := defaultsReader()
	reg := NewRegistry(r, DefaultSchema())

	require.Equal(t, int32(5), reg.Snapshot().Octaves)
	r[Octaves] = "3"
	assert.Equal(t, int32(3), reg.Snapshot().Octaves, "after control change")
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"5", 5},
		{"5.7", 5},
		{"-2.9", -2},
		{"  7 ", 7},
		{"+3", 3},
		{"12abc", 12},
		{"1e3", 1},
		{"abc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseInt(tt.in), "ParseInt(%q)", tt.in)
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float32
	}{
		{"0.25", 0.25},
		{"2", 2},
		{".5", 0.5},
		{"-1.5", -1.5},
		{"1e2", 100},
		{"3.5px", 3.5},
		{" 0.75\n", 0.75},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFloat(tt.in), "ParseFloat(%q)", tt.in)
	}

	for _, in := range []string{"", "abc", "-", "."} {
		assert.True(t, math.IsNaN(float64(ParseFloat(in))), "ParseFloat(%q) should be NaN", in)
	}
	assert.True(t, math.IsInf(float64(ParseFloat("Infinity")), 1))
}

func TestDescribe(t *testing.T) {
	reg := NewRegistry(mapReader{
		Octaves:    "5.7",
		Gain:       "0.5",
		Lacunarity: "1.234",
		Mode:       "2",
		FlowSpeed:  "oops",
	}, DefaultSchema())

	tests := []struct {
		name string
		want string
	}{
		{Octaves, "5"},
		{Gain, "0.50"},
		{Lacunarity, "1.23"},
		{Mode, "2"},
		{FlowSpeed, "NaN"},
		{"missing", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reg.Describe(tt.name), "Describe(%s)", tt.name)
	}
}

func TestDefaultSchemaUniforms(t *testing.T) {
	want := map[string]Kind{
		"uMode":         Enum,
		"uOctaves":      Int,
		"uLacunarity":   Float,
		"uGain":         Float,
		"uFBMScale":     Float,
		"uVoroScale":    Float,
		"uCrackWidth":   Float,
		"uWarpStrength": Float,
		"uFlowSpeed":    Float,
		"uPalette":      Enum,
	}
	schema := DefaultSchema()
	require.Len(t, schema, len(want))
	for _, p := range schema {
		kind, ok := want[p.Uniform]
		if !assert.True(t, ok, "unexpected uniform %q", p.Uniform) {
			continue
		}
		assert.Equal(t, kind, p.Kind, p.Uniform)
		def := float64(ParseFloat(p.Default))
		assert.True(t, def >= p.Domain.Min && def <= p.Domain.Max, "%s: default %s outside domain", p.Name, p.Default)
	}
}
