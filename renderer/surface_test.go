package renderer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncClampsDensity(t *testing.T) {
	dev := newFakeDevice()
	s := &fakeSurface{layoutW: 800, layoutH: 600, density: 3.0}

	require.True(t, NewSurfaceManager(dev, false).Sync(s))
	assert.Equal(t, 1600, s.bufW)
	assert.Equal(t, 1200, s.bufH)
	assert.Equal(t, [][4]int32{{0, 0, 1600, 1200}}, dev.viewports)
}

func TestSyncIdempotent(t *testing.T) {
	dev := newFakeDevice()
	s := &fakeSurface{layoutW: 1024, layoutH: 768, density: 1.25}
	m := NewSurfaceManager(dev, false)

	require.True(t, m.Sync(s), "first sync should resize")
	assert.False(t, m.Sync(s), "second sync with identical inputs should not resize")
	assert.Equal(t, 1, s.sets)
	assert.Len(t, dev.viewports, 1)
}

func TestSyncFollowsLayoutChanges(t *testing.T) {
	dev := newFakeDevice()
	s := &fakeSurface{layoutW: 640, layoutH: 480, density: 1}
	m := NewSurfaceManager(dev, false)
	m.Sync(s)

	s.density = 2
	require.True(t, m.Sync(s), "density change should resize")
	assert.Equal(t, 1280, s.bufW)
	assert.Equal(t, 960, s.bufH)

	s.layoutW = 500
	require.True(t, m.Sync(s), "layout change should resize")
	assert.Equal(t, [4]int32{0, 0, 1000, 960}, dev.viewports[len(dev.viewports)-1])
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         float64
		density      float64
		wantW, wantH int
	}{
		{"unit", 800, 600, 1, 800, 600},
		{"retina", 800, 600, 2, 1600, 1200},
		{"clamped", 800, 600, 3, 1600, 1200},
		{"fractional floors", 333, 101, 1.5, 499, 151},
		{"fractional layout", 100.7, 50.9, 1, 100, 50},
		{"zero density", 640, 480, 0, 640, 480},
		{"negative density", 640, 480, -2, 640, 480},
		{"nan density", 640, 480, math.NaN(), 640, 480},
		{"minimized", 0, 0, 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := TargetSize(tt.w, tt.h, tt.density)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
