package render

import (
	"math"

	"github.com/lixenwraith/particle-emitter/parameter"
	"github.com/lixenwraith/particle-emitter/vmath"
)

// Camera maps world units to terminal cells
// Origin is the world point at the top-left corner of cell (0,0)
type Camera struct {
	Origin       vmath.Vec2F
	UnitsPerCell float64
	Aspect       float64 // cell height/width
}

func NewCamera(unitsPerCell float64) Camera {
	return Camera{UnitsPerCell: unitsPerCell, Aspect: parameter.CellAspect}
}

func (c Camera) cellW() float64 { return c.UnitsPerCell }
func (c Camera) cellH() float64 { return c.UnitsPerCell * c.Aspect }

// ToCell returns the cell containing world point p
func (c Camera) ToCell(p vmath.Vec3F) (x, y int) {
	return int(math.Floor((p.X - c.Origin.X) / c.cellW())),
		int(math.Floor((p.Y - c.Origin.Y) / c.cellH()))
}

// ToWorld returns the world point at the center of cell (x, y)
func (c Camera) ToWorld(x, y int) vmath.Vec3F {
	return vmath.Vec3F{
		X: c.Origin.X + (float64(x)+0.5)*c.cellW(),
		Y: c.Origin.Y + (float64(y)+0.5)*c.cellH(),
	}
}

// Visible is the world rectangle covered by a width x height cell viewport
func (c Camera) Visible(width, height int) vmath.Rect {
	return vmath.Rect{
		Min: c.Origin,
		Max: vmath.Vec2F{
			X: c.Origin.X + float64(width)*c.cellW(),
			Y: c.Origin.Y + float64(height)*c.cellH(),
		},
	}
}

// CenterOn moves the origin so p sits in the middle of the viewport
func (c *Camera) CenterOn(p vmath.Vec3F, width, height int) {
	c.Origin = vmath.Vec2F{
		X: p.X - float64(width)*c.cellW()/2,
		Y: p.Y - float64(height)*c.cellH()/2,
	}
}

// Footprint returns the cell extent of a drawable size, at least one cell each way
func (c Camera) Footprint(width, height int) (w, h int) {
	w = int(math.Round(float64(width) / c.cellW()))
	h = int(math.Round(float64(height) / c.cellH()))
	return max(w, 1), max(h, 1)
}
