package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/raycaster/ecs/render"
)

// FrameImages uploads loaded frames to ebiten images. It implements
// render.Registry.
type FrameImages struct {
	images map[*render.Frame]*ebiten.Image
	buf    []byte
}

func NewFrameImages() *FrameImages {
	return &FrameImages{images: make(map[*render.Frame]*ebiten.Image)}
}

func (fi *FrameImages) Register(f *render.Frame) error {
	if f == nil || f.Pixels == nil {
		return nil
	}
	if old, ok := fi.images[f]; ok {
		old.Deallocate()
	}
	img := ebiten.NewImage(f.Width, f.Height)
	fi.buf = f.Pixels.WriteRGBA(fi.buf)
	img.WritePixels(fi.buf)
	fi.images[f] = img
	return nil
}

// Image returns the uploaded image for f, uploading it on first use.
func (fi *FrameImages) Image(f *render.Frame) *ebiten.Image {
	if img, ok := fi.images[f]; ok {
		return img
	}
	if err := fi.Register(f); err != nil {
		return nil
	}
	return fi.images[f]
}

// Close releases every uploaded image.
func (fi *FrameImages) Close() {
	for f, img := range fi.images {
		img.Deallocate()
		delete(fi.images, f)
	}
}

type surfaceImage struct {
	img  *ebiten.Image
	w, h int
}

// Painter draws frames and surfaces onto the current screen. Surfaces are
// re-uploaded on every draw since the engine rewrites them each tick.
type Painter struct {
	frames   *FrameImages
	surfaces map[*render.Surface]*surfaceImage
	screen   *ebiten.Image
	buf      []byte
}

func NewPainter(frames *FrameImages) *Painter {
	if frames == nil {
		frames = NewFrameImages()
	}
	return &Painter{frames: frames, surfaces: make(map[*render.Surface]*surfaceImage)}
}

// Begin sets the target for subsequent draws.
func (p *Painter) Begin(screen *ebiten.Image) {
	p.screen = screen
}

func (p *Painter) DrawFrame(f *render.Frame, x, y int) {
	if p.screen == nil || f == nil {
		return
	}
	img := p.frames.Image(f)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterNearest
	p.screen.DrawImage(img, op)
}

func (p *Painter) DrawSurface(s *render.Surface, x, y int) {
	if p.screen == nil || s == nil || s.Width == 0 || s.Height == 0 {
		return
	}
	si := p.surfaces[s]
	if si == nil || si.w != s.Width || si.h != s.Height {
		if si != nil {
			si.img.Deallocate()
		}
		si = &surfaceImage{img: ebiten.NewImage(s.Width, s.Height), w: s.Width, h: s.Height}
		p.surfaces[s] = si
	}
	p.buf = s.WriteRGBA(p.buf)
	si.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	p.screen.DrawImage(si.img, op)
}

// Close releases surface images and the frame images.
func (p *Painter) Close() {
	for s, si := range p.surfaces {
		si.img.Deallocate()
		delete(p.surfaces, s)
	}
	p.frames.Close()
}
