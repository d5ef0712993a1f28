package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/golava/graphics"
	"github.com/richinsley/golava/params"
)

// Uniforms is the per-frame record pushed to the effect program.
type Uniforms struct {
	Resolution mgl32.Vec2
	Time       float32
	params.Values
}

func updateUniforms(dev graphics.Device, p *Program, u *Uniforms) {
	set2f(dev, p.Slot("iResolution"), u.Resolution.X(), u.Resolution.Y())
	set1f(dev, p.Slot("iTime"), u.Time)
	set1i(dev, p.Slot("uMode"), u.Mode)
	set1i(dev, p.Slot("uOctaves"), u.Octaves)
	set1f(dev, p.Slot("uLacunarity"), u.Lacunarity)
	set1f(dev, p.Slot("uGain"), u.Gain)
	set1f(dev, p.Slot("uFBMScale"), u.FBMScale)
	set1f(dev, p.Slot("uVoroScale"), u.VoroScale)
	set1f(dev, p.Slot("uCrackWidth"), u.CrackWidth)
	set1f(dev, p.Slot("uWarpStrength"), u.WarpStrength)
	set1f(dev, p.Slot("uFlowSpeed"), u.FlowSpeed)
	set1i(dev, p.Slot("uPalette"), u.Palette)
}

func set1i(dev graphics.Device, loc int32, v int32) {
	if loc != AbsentSlot {
		dev.Uniform1i(loc, v)
	}
}

func set1f(dev graphics.Device, loc int32, v float32) {
	if loc != AbsentSlot {
		dev.Uniform1f(loc, v)
	}
}

func set2f(dev graphics.Device, loc int32, x, y float32) {
	if loc != AbsentSlot {
		dev.Uniform2f(loc, x, y)
	}
}
