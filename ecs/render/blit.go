package render

import "github.com/charmbracelet/log"

// DefaultScale is the blit scale factor used when none is configured.
const DefaultScale = 0.5

// BlitCompositor copies the active frame, scaled nearest-neighbor, into one
// reusable destination surface each tick. Cost is O(destination area) per tick
// but only a single surface is resident.
type BlitCompositor struct {
	viewport Viewport
	scale    float64
	anchor   Anchor
	dest     *Surface
	skips    skipLog
}

func NewBlitCompositor(vp Viewport, scale float64, anchor Anchor, logger *log.Logger) *BlitCompositor {
	if scale <= 0 {
		scale = DefaultScale
	}
	b := &BlitCompositor{
		viewport: vp,
		scale:    scale,
		anchor:   anchor,
		skips:    newSkipLog(logger, StrategyBlit),
	}
	if vp != nil {
		w, h := vp.Size()
		b.dest = NewSurface(w, h)
	}
	return b
}

// Destination returns the surface written by Compose.
func (b *BlitCompositor) Destination() *Surface {
	if b == nil {
		return nil
	}
	return b.dest
}

func (b *BlitCompositor) SetScale(scale float64) {
	if b == nil || scale <= 0 {
		return
	}
	b.scale = scale
}

func (b *BlitCompositor) SetAnchor(a Anchor) {
	if b == nil {
		return
	}
	b.anchor = a
}

func (b *BlitCompositor) Scale() float64 { return b.scale }

func (b *BlitCompositor) Show(frames []*Frame, current int) {
	b.Compose(frames, current)
}

// FrameChanged needs no bookkeeping; the next Compose samples the new frame.
func (b *BlitCompositor) FrameChanged(frames []*Frame, prev, next int) {}

func (b *BlitCompositor) Compose(frames []*Frame, current int) {
	if b == nil {
		return
	}
	if b.viewport != nil && b.dest != nil {
		b.dest.Resize(b.viewport.Size())
	}
	if b.dest == nil || len(b.dest.Pix) == 0 {
		b.skips.skip("no destination surface")
		return
	}
	b.dest.Clear()

	if len(frames) == 0 {
		b.skips.skip("no frames")
		return
	}
	f := activeFrame(frames, current)
	if f == nil || f.Pixels == nil {
		b.skips.skip("no active frame")
		return
	}
	BlitScaled(b.dest, f.Pixels, b.scale, b.anchor)
}

func (b *BlitCompositor) Present(p Painter) {
	if b == nil || p == nil || b.dest == nil {
		return
	}
	p.DrawSurface(b.dest, 0, 0)
}

// BlitScaled copies src into dst scaled by scale with nearest-neighbor
// sampling, anchored in dst. Pixels are overwritten verbatim. The written
// region is clamped to dst.
func BlitScaled(dst, src *Surface, scale float64, anchor Anchor) {
	if dst == nil || src == nil || scale <= 0 || src.Width == 0 || src.Height == 0 {
		return
	}
	w := int(float64(src.Width) * scale)
	h := int(float64(src.Height) * scale)
	if w <= 0 || h <= 0 {
		return
	}
	ox, oy := anchor.Origin(dst.Width, dst.Height, w, h)

	x0, y0 := max(0, -ox), max(0, -oy)
	x1, y1 := min(w, dst.Width-ox), min(h, dst.Height-oy)
	for y := y0; y < y1; y++ {
		sy := min(int(float64(y)/scale), src.Height-1)
		drow := dst.Pix[(oy+y)*dst.Width : (oy+y+1)*dst.Width]
		srow := src.Pix[sy*src.Width : (sy+1)*src.Width]
		for x := x0; x < x1; x++ {
			sx := min(int(float64(x)/scale), src.Width-1)
			drow[ox+x] = srow[sx]
		}
	}
}
