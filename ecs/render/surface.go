package render

import (
	"image"
	"image/color"
)

// Transparent is the cleared pixel value.
const Transparent uint32 = 0

// Surface is a width×height grid of 32-bit pixels packed as 0xRRGGBBAA
// (premultiplied alpha), stored row-major.
type Surface struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewSurface allocates a cleared surface. Non-positive sizes yield an empty
// surface.
func NewSurface(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Surface{Width: w, Height: h, Pix: make([]uint32, w*h)}
}

// Pack builds a pixel from premultiplied 8-bit channels.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// Unpack splits a pixel into its channels.
func Unpack(p uint32) (r, g, b, a uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// In reports whether (x, y) lies inside the surface.
func (s *Surface) In(x, y int) bool {
	return s != nil && x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// At returns the pixel at (x, y), or Transparent outside the surface.
func (s *Surface) At(x, y int) uint32 {
	if !s.In(x, y) {
		return Transparent
	}
	return s.Pix[y*s.Width+x]
}

// Set writes a pixel; writes outside the surface are dropped.
func (s *Surface) Set(x, y int, p uint32) {
	if !s.In(x, y) {
		return
	}
	s.Pix[y*s.Width+x] = p
}

// Fill sets every pixel to p.
func (s *Surface) Fill(p uint32) {
	if s == nil {
		return
	}
	for i := range s.Pix {
		s.Pix[i] = p
	}
}

// Clear resets the surface to Transparent.
func (s *Surface) Clear() {
	if s == nil {
		return
	}
	clear(s.Pix)
}

// FillRect fills the rectangle [x0,x1)×[y0,y1), clamped to the surface.
func (s *Surface) FillRect(x0, y0, x1, y1 int, p uint32) {
	if s == nil {
		return
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, s.Width), min(y1, s.Height)
	for y := y0; y < y1; y++ {
		row := s.Pix[y*s.Width : (y+1)*s.Width]
		for x := x0; x < x1; x++ {
			row[x] = p
		}
	}
}

// Resize reallocates the pixel store only when the size actually changes.
// It reports whether it did.
func (s *Surface) Resize(w, h int) bool {
	if s == nil || (w == s.Width && h == s.Height) {
		return false
	}
	w, h = max(w, 0), max(h, 0)
	s.Width, s.Height = w, h
	if cap(s.Pix) >= w*h {
		s.Pix = s.Pix[:w*h]
		clear(s.Pix)
	} else {
		s.Pix = make([]uint32, w*h)
	}
	return true
}

// WriteRGBA encodes the surface as RGBA bytes into dst, growing it only when
// too small, and returns the slice that holds the pixels.
func (s *Surface) WriteRGBA(dst []byte) []byte {
	if s == nil {
		return dst[:0]
	}
	n := len(s.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range s.Pix {
		j := i * 4
		dst[j] = uint8(p >> 24)
		dst[j+1] = uint8(p >> 16)
		dst[j+2] = uint8(p >> 8)
		dst[j+3] = uint8(p)
	}
	return dst
}

// SurfaceFromImage converts a decoded image into a surface. The source is not
// retained.
func SurfaceFromImage(img image.Image) *Surface {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < s.Height; y++ {
			off := rgba.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < s.Width; x++ {
				p := rgba.Pix[off+x*4 : off+x*4+4 : off+x*4+4]
				s.Pix[y*s.Width+x] = Pack(p[0], p[1], p[2], p[3])
			}
		}
		return s
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			s.Pix[y*s.Width+x] = Pack(c.R, c.G, c.B, c.A)
		}
	}
	return s
}
