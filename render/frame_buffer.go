package render

import "github.com/lixenwraith/particle-emitter/emitter"

// FrameBuffer collects drawables submitted during one simulation tick
// Reset between ticks; the backing array is reused
type FrameBuffer struct {
	items []emitter.Drawable
}

var _ emitter.Renderer = (*FrameBuffer)(nil)

func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{items: make([]emitter.Drawable, 0, 256)}
}

func (b *FrameBuffer) Submit(d emitter.Drawable) {
	b.items = append(b.items, d)
}

// Drawables returns the submitted drawables in submission order
// The slice is only valid until the next Reset
func (b *FrameBuffer) Drawables() []emitter.Drawable {
	return b.items
}

func (b *FrameBuffer) Len() int { return len(b.items) }

func (b *FrameBuffer) Reset() {
	b.items = b.items[:0]
}
