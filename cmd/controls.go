package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/golava/glfwcontext"
	"github.com/richinsley/golava/params"
	"github.com/richinsley/golava/renderer"
)

// bindControls maps the keyboard onto the panel:
//
//	Up/Down       select parameter
//	Left/Right    step the selected parameter (Shift: x10)
//	M / P         cycle mode / palette
//	R             reset to defaults
//	F             toggle fullscreen
//	S             save a screenshot
//	Esc           quit
func bindControls(win *glfwcontext.Context, panel *params.Panel, registry *params.Registry, r *renderer.Renderer, screenshotDir string) {
	showTitle := func() {
		sel := panel.Selected()
		win.SetTitle(fmt.Sprintf("golava - %s: %s", sel.Label, registry.Describe(sel.Name)))
	}
	step := func(dir int) func(glfw.ModifierKey) {
		return func(mods glfw.ModifierKey) {
			n := dir
			if mods&glfw.ModShift != 0 {
				n *= 10
			}
			panel.Step(panel.Selected().Name, n)
		}
	}

	panel.OnChange(func(p params.Param, raw string) {
		log.Printf("%s = %s", p.Name, params.Describe(p, raw))
		showTitle()
	})

	win.RegisterKeyCallback(glfw.KeyUp, func(glfw.ModifierKey) {
		panel.Select(-1)
		showTitle()
	})
	win.RegisterKeyCallback(glfw.KeyDown, func(glfw.ModifierKey) {
		panel.Select(1)
		showTitle()
	})
	win.RegisterKeyCallback(glfw.KeyLeft, step(-1))
	win.RegisterKeyCallback(glfw.KeyRight, step(1))
	win.RegisterKeyCallback(glfw.KeyM, func(glfw.ModifierKey) { panel.Cycle(params.Mode) })
	win.RegisterKeyCallback(glfw.KeyP, func(glfw.ModifierKey) { panel.Cycle(params.Palette) })
	win.RegisterKeyCallback(glfw.KeyR, func(glfw.ModifierKey) { panel.Reset() })
	win.RegisterKeyCallback(glfw.KeyF, func(glfw.ModifierKey) { win.ToggleFullscreen() })
	win.RegisterKeyCallback(glfw.KeyS, func(glfw.ModifierKey) {
		name := fmt.Sprintf("lava-%s.png", time.Now().Format("20060102-150405.000"))
		r.RequestScreenshot(filepath.Join(screenshotDir, name))
	})

	showTitle()
}
