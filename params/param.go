package params

// Kind is the declared type a control value is coerced to.
type Kind int

const (
	Int Kind = iota
	Float
	Enum
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Enum:
		return "enum"
	default:
		return "unknown"
	}
}

// Integral reports whether values of this kind are pushed as integer uniforms.
func (k Kind) Integral() bool {
	return k == Int || k == Enum
}

// Domain is the numeric range a control enforces on its own value.
type Domain struct {
	Min  float64
	Max  float64
	Step float64
}

// Param describes one user-adjustable shader parameter.
type Param struct {
	Name    string
	Uniform string
	Label   string
	Kind    Kind
	Domain  Domain
	Default string
}

// Parameter names, as used by the control surface and presets.
const (
	Mode         = "mode"
	Octaves      = "octaves"
	Lacunarity   = "lacunarity"
	Gain         = "gain"
	FBMScale     = "fbmScale"
	VoroScale    = "voroScale"
	CrackWidth   = "crackWidth"
	WarpStrength = "warpStrength"
	FlowSpeed    = "flowSpeed"
	Palette      = "palette"
)

// DefaultSchema returns the fixed parameter schema in display order.
func DefaultSchema() []Param {
	return []Param{
		{Name: Mode, Uniform: "uMode", Label: "Mode", Kind: Enum, Domain: Domain{0, 2, 1}, Default: "0"},
		{Name: Octaves, Uniform: "uOctaves", Label: "Octaves", Kind: Int, Domain: Domain{1, 8, 1}, Default: "5"},
		{Name: Lacunarity, Uniform: "uLacunarity", Label: "Lacunarity", Kind: Float, Domain: Domain{1.5, 3.0, 0.01}, Default: "2.0"},
		{Name: Gain, Uniform: "uGain", Label: "Gain", Kind: Float, Domain: Domain{0.3, 0.8, 0.01}, Default: "0.5"},
		{Name: FBMScale, Uniform: "uFBMScale", Label: "FBM scale", Kind: Float, Domain: Domain{0.5, 6.0, 0.01}, Default: "2.0"},
		{Name: VoroScale, Uniform: "uVoroScale", Label: "Voronoi scale", Kind: Float, Domain: Domain{1.0, 12.0, 0.01}, Default: "4.0"},
		{Name: CrackWidth, Uniform: "uCrackWidth", Label: "Crack width", Kind: Float, Domain: Domain{0.0, 0.2, 0.01}, Default: "0.05"},
		{Name: WarpStrength, Uniform: "uWarpStrength", Label: "Warp strength", Kind: Float, Domain: Domain{0.0, 3.0, 0.01}, Default: "1.0"},
		{Name: FlowSpeed, Uniform: "uFlowSpeed", Label: "Flow speed", Kind: Float, Domain: Domain{0.0, 2.0, 0.01}, Default: "0.3"},
		{Name: Palette, Uniform: "uPalette", Label: "Palette", Kind: Enum, Domain: Domain{0, 3, 1}, Default: "0"},
	}
}
