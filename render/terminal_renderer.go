package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-emitter/emitter"
	"github.com/lixenwraith/particle-emitter/vmath"
)

// Canvas is the subset of tcell.Screen the renderer draws onto
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
}

// Tint is a texture's base color at full alpha
type Tint struct {
	R, G, B uint8
}

var (
	TintFog  = Tint{R: 190, G: 200, B: 210}
	TintFire = Tint{R: 255, G: 140, B: 30}
)

// glyphRamp orders glyphs by visual density, indexed by alpha
var glyphRamp = []rune{'.', ':', '░', '▒', '▓', '█'}

// TerminalRenderer draws particle frames onto a Canvas
type TerminalRenderer struct {
	canvas     Canvas
	camera     Camera
	tints      map[emitter.TextureHandle]Tint
	background Tint
}

func NewTerminalRenderer(canvas Canvas, camera Camera) *TerminalRenderer {
	return &TerminalRenderer{
		canvas: canvas,
		camera: camera,
		tints:  make(map[emitter.TextureHandle]Tint),
	}
}

// SetTint assigns a base color to a texture handle; unassigned handles draw as fog
func (r *TerminalRenderer) SetTint(h emitter.TextureHandle, t Tint) {
	r.tints[h] = t
}

func (r *TerminalRenderer) Camera() *Camera { return &r.camera }

// Draw renders frame in order, later drawables overwrite earlier ones
// Returns the number of drawables that produced at least one visible cell
func (r *TerminalRenderer) Draw(frame []emitter.Drawable) int {
	sw, sh := r.canvas.Size()
	drawn := 0

	for _, d := range frame {
		alpha, ok := visibleAlpha(d.Alpha)
		if !ok {
			continue
		}

		tint, ok := r.tints[d.Texture]
		if !ok {
			tint = TintFog
		}
		style := tcell.StyleDefault.
			Foreground(r.blend(tint, alpha)).
			Background(r.blend(r.background, 1))
		glyph := glyphFor(alpha)

		cx, cy := r.camera.ToCell(d.Position)
		fw, fh := r.camera.Footprint(d.Width, d.Height)
		x0, y0 := cx-fw/2, cy-fh/2

		visible := false
		for y := y0; y < y0+fh; y++ {
			if y < 0 || y >= sh {
				continue
			}
			for x := x0; x < x0+fw; x++ {
				if x < 0 || x >= sw {
					continue
				}
				r.canvas.SetContent(x, y, glyph, nil, style)
				visible = true
			}
		}
		if visible {
			drawn++
		}
	}
	return drawn
}

// DrawText writes a single line at row y, truncated to the canvas width
func (r *TerminalRenderer) DrawText(x, y int, text string, style tcell.Style) {
	sw, sh := r.canvas.Size()
	if y < 0 || y >= sh {
		return
	}
	for _, ch := range text {
		if x >= sw {
			return
		}
		if x >= 0 {
			r.canvas.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// Clear fills the canvas with blank background cells
func (r *TerminalRenderer) Clear() {
	sw, sh := r.canvas.Size()
	style := tcell.StyleDefault.Background(r.blend(r.background, 1))
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			r.canvas.SetContent(x, y, ' ', nil, style)
		}
	}
}

// visibleAlpha clips non-positive and NaN alpha and clamps above 1
func visibleAlpha(a float64) (float64, bool) {
	if math.IsNaN(a) || a <= 0 {
		return 0, false
	}
	return vmath.Clamp(a, 0, 1), true
}

func glyphFor(alpha float64) rune {
	idx := int(alpha * float64(len(glyphRamp)))
	if idx >= len(glyphRamp) {
		idx = len(glyphRamp) - 1
	}
	return glyphRamp[idx]
}

// blend mixes tint over the background by alpha
func (r *TerminalRenderer) blend(t Tint, alpha float64) tcell.Color {
	c := func(bg, fg uint8) int32 {
		return int32(math.Round(vmath.Lerp(float64(bg), float64(fg), alpha)))
	}
	return tcell.NewRGBColor(c(r.background.R, t.R), c(r.background.G, t.G), c(r.background.B, t.B))
}
