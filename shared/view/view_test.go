package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
)

var lens = Lens{BaseWidth: 1366, BaseHeight: 768, Factor: 2}

func TestLensScale(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		zoom float64
		want float64
	}{
		{"base resolution", 1366, 768, 1, 2},
		{"double resolution", 2732, 1536, 1, 4},
		{"zoomed out", 1366, 768, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, lens.Scale(tt.w, tt.h, tt.zoom), 1e-9)
		})
	}
}

func TestEffectiveTruncates(t *testing.T) {
	assert.Equal(t, terrain.Viewport{EffWidth: 683, EffHeight: 384}, Effective(1366, 768, 2))
	assert.Equal(t, terrain.Viewport{EffWidth: 333, EffHeight: 233}, Effective(1000, 700, 3))
}

func TestFocus(t *testing.T) {
	got := Focus(gamemath.Point3D{X: 320, Y: 16, Z: 320}, 16)
	assert.Equal(t, gamemath.Point{X: 320, Y: 296}, got)
}

func TestClamp(t *testing.T) {
	w := terrain.NewWorld(50, 50)
	vp := terrain.Viewport{EffWidth: 683, EffHeight: 384}

	tests := []struct {
		name  string
		focus gamemath.Point
		want  gamemath.Point
	}{
		{"near origin", gamemath.Point{X: 10, Y: 10}, gamemath.Point{X: 341.5, Y: 192}},
		{"past far edge", gamemath.Point{X: 2000, Y: 2000}, gamemath.Point{X: 1258.5, Y: 1408}},
		{"inside", gamemath.Point{X: 800, Y: 700}, gamemath.Point{X: 800, Y: 700}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.focus, w, vp))
		})
	}
}

func TestClampSmallWorldCentres(t *testing.T) {
	w := terrain.NewWorld(4, 4)
	vp := terrain.Viewport{EffWidth: 683, EffHeight: 384}
	assert.Equal(t, gamemath.Point{X: 64, Y: 64}, Clamp(gamemath.Point{X: 5, Y: 100}, w, vp))
}

func TestSpriteOrigin(t *testing.T) {
	vp := terrain.Viewport{EffWidth: 683, EffHeight: 384}

	centred := gamemath.Point{X: 500, Y: 500}
	assert.Equal(t, gamemath.Point{X: 333.5, Y: 184}, SpriteOrigin(centred, centred, vp, 16, 16))

	focus := gamemath.Point{X: 10, Y: 10}
	centre := gamemath.Point{X: 341.5, Y: 192}
	assert.Equal(t, gamemath.Point{X: 2, Y: 2}, SpriteOrigin(focus, centre, vp, 16, 16))
}

func TestCell(t *testing.T) {
	z, y := Cell(gamemath.Point3D{X: 5, Y: 16, Z: 40})
	assert.Equal(t, 1, z)
	assert.Equal(t, 1, y)

	z, y = Cell(gamemath.Point3D{Y: -1, Z: -1})
	assert.Equal(t, -1, z)
	assert.Equal(t, -1, y)
}

func TestStepZoom(t *testing.T) {
	tests := []struct {
		name       string
		zoom, step float64
		want       float64
	}{
		{"in", 1, 0.25, 1.25},
		{"out", 1, -0.25, 0.75},
		{"capped at max", 2.9, 0.25, 3},
		{"capped at min", 0.6, -0.25, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, StepZoom(tt.zoom, tt.step, 0.5, 3), 1e-9)
		})
	}
}
