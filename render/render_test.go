package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-emitter/emitter"
	"github.com/lixenwraith/particle-emitter/vmath"
)

type cell struct {
	ch    rune
	style tcell.Style
}

type fakeCanvas struct {
	w, h  int
	cells map[[2]int]cell
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (c *fakeCanvas) SetContent(x, y int, mainc rune, _ []rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = cell{ch: mainc, style: style}
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func TestFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer()
	fb.Submit(emitter.Drawable{Alpha: 0.1})
	fb.Submit(emitter.Drawable{Alpha: 0.2})

	if fb.Len() != 2 {
		t.Fatalf("Expected 2 drawables, got %d", fb.Len())
	}
	if fb.Drawables()[1].Alpha != 0.2 {
		t.Error("Expected submission order preserved")
	}
	fb.Reset()
	if fb.Len() != 0 {
		t.Errorf("Expected empty buffer after Reset, got %d", fb.Len())
	}
}

func TestCameraMapping(t *testing.T) {
	cam := NewCamera(10)
	cam.Origin = vmath.Vec2F{X: -100, Y: -100}

	tests := []struct {
		p    vmath.Vec3F
		x, y int
	}{
		{vmath.Vec3F{X: -100, Y: -100}, 0, 0},
		{vmath.Vec3F{X: -91, Y: -81}, 0, 0},
		{vmath.Vec3F{X: -90, Y: -80}, 1, 1},
		{vmath.Vec3F{X: 0, Y: 0}, 10, 5},
		{vmath.Vec3F{X: -101, Y: -101}, -1, -1},
	}
	for _, tt := range tests {
		x, y := cam.ToCell(tt.p)
		if x != tt.x || y != tt.y {
			t.Errorf("ToCell(%+v) = (%d,%d), want (%d,%d)", tt.p, x, y, tt.x, tt.y)
		}
	}

	vis := cam.Visible(20, 10)
	if vis.Max != (vmath.Vec2F{X: 100, Y: 100}) {
		t.Errorf("Expected visible max (100,100), got %+v", vis.Max)
	}

	cam.CenterOn(vmath.Vec3F{}, 20, 10)
	if x, y := cam.ToCell(vmath.Vec3F{}); x != 10 || y != 5 {
		t.Errorf("Expected centered point at (10,5), got (%d,%d)", x, y)
	}
	if x, y := cam.ToCell(cam.ToWorld(3, 4)); x != 3 || y != 4 {
		t.Errorf("Expected ToWorld round trip to (3,4), got (%d,%d)", x, y)
	}
}

func TestFootprint(t *testing.T) {
	cam := NewCamera(10)
	if w, h := cam.Footprint(32, 16); w != 3 || h != 1 {
		t.Errorf("Expected 3x1 cells, got %dx%d", w, h)
	}
	if w, h := cam.Footprint(0, 0); w != 1 || h != 1 {
		t.Errorf("Expected minimum 1x1, got %dx%d", w, h)
	}
}

func TestDrawClipsInvalidAlpha(t *testing.T) {
	canvas := newFakeCanvas(10, 10)
	r := NewTerminalRenderer(canvas, NewCamera(10))

	frame := []emitter.Drawable{
		{Position: vmath.Vec3F{X: 5, Y: 5}, Alpha: 0},
		{Position: vmath.Vec3F{X: 15, Y: 5}, Alpha: -2},
		{Position: vmath.Vec3F{X: 25, Y: 5}, Alpha: math.NaN()},
		{Position: vmath.Vec3F{X: 35, Y: 5}, Alpha: 0.5},
	}
	if n := r.Draw(frame); n != 1 {
		t.Errorf("Expected 1 visible drawable, got %d", n)
	}
	if len(canvas.cells) != 1 {
		t.Errorf("Expected a single painted cell, got %d", len(canvas.cells))
	}
	if _, ok := canvas.cells[[2]int{3, 0}]; !ok {
		t.Error("Expected cell (3,0) painted")
	}
}

func TestDrawClampsAlphaAndUsesTint(t *testing.T) {
	canvas := newFakeCanvas(10, 10)
	r := NewTerminalRenderer(canvas, NewCamera(10))
	r.SetTint(2, TintFire)

	r.Draw([]emitter.Drawable{{Position: vmath.Vec3F{X: 5, Y: 5}, Alpha: 4, Texture: 2}})

	c, ok := canvas.cells[[2]int{0, 0}]
	if !ok {
		t.Fatal("Expected cell (0,0) painted")
	}
	if c.ch != glyphRamp[len(glyphRamp)-1] {
		t.Errorf("Expected densest glyph for clamped alpha, got %q", c.ch)
	}
	want := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(255, 140, 30)).
		Background(tcell.NewRGBColor(0, 0, 0))
	if c.style != want {
		t.Errorf("Expected full fire tint over black, got %v", c.style)
	}
}

func TestDrawOffscreenAndFootprint(t *testing.T) {
	canvas := newFakeCanvas(4, 4)
	r := NewTerminalRenderer(canvas, NewCamera(10))

	n := r.Draw([]emitter.Drawable{
		{Position: vmath.Vec3F{X: -500, Y: 5}, Alpha: 1},
		{Position: vmath.Vec3F{X: 15, Y: 25}, Width: 30, Height: 20, Alpha: 1},
	})
	if n != 1 {
		t.Errorf("Expected only on-screen drawable counted, got %d", n)
	}
	// 30x20 world units is 3x1 cells centered on cell (1,1)
	for _, x := range []int{0, 1, 2} {
		if _, ok := canvas.cells[[2]int{x, 1}]; !ok {
			t.Errorf("Expected cell (%d,1) painted", x)
		}
	}
	if len(canvas.cells) != 3 {
		t.Errorf("Expected 3 painted cells, got %d", len(canvas.cells))
	}
}

func TestGlyphRampMonotonic(t *testing.T) {
	prev := -1
	for a := 0.05; a <= 1.0; a += 0.05 {
		idx := -1
		g := glyphFor(a)
		for i, r := range glyphRamp {
			if r == g {
				idx = i
			}
		}
		if idx < prev {
			t.Fatalf("Expected non-decreasing glyph density, alpha %f gave index %d after %d", a, idx, prev)
		}
		prev = idx
	}
}

func TestDrawText(t *testing.T) {
	canvas := newFakeCanvas(5, 2)
	r := NewTerminalRenderer(canvas, NewCamera(10))
	r.DrawText(2, 1, "alive", tcell.StyleDefault)

	if len(canvas.cells) != 3 {
		t.Errorf("Expected text truncated to 3 cells, got %d", len(canvas.cells))
	}
	if canvas.cells[[2]int{2, 1}].ch != 'a' {
		t.Error("Expected 'a' at (2,1)")
	}
}
