package render

import (
	"image"
	"image/color"
	"testing"
)

func TestSurfaceFillRectClamps(t *testing.T) {
	s := NewSurface(4, 3)
	s.FillRect(-2, 1, 10, 2, Pack(1, 2, 3, 255))
	for x := 0; x < 4; x++ {
		if s.At(x, 1) != Pack(1, 2, 3, 255) {
			t.Fatalf("row 1 pixel %d not filled", x)
		}
		if s.At(x, 0) != Transparent || s.At(x, 2) != Transparent {
			t.Fatalf("rows outside the rect changed at x=%d", x)
		}
	}
	if s.At(-1, 0) != Transparent || s.At(4, 0) != Transparent {
		t.Fatalf("out of range reads should be transparent")
	}
}

func TestSurfaceResize(t *testing.T) {
	s := NewSurface(4, 4)
	s.Fill(Pack(9, 9, 9, 255))
	if s.Resize(4, 4) {
		t.Fatalf("same size should not reallocate")
	}
	if s.At(3, 3) == Transparent {
		t.Fatalf("same-size resize cleared pixels")
	}
	if !s.Resize(2, 3) || len(s.Pix) != 6 || s.At(1, 2) != Transparent {
		t.Fatalf("shrink should resize and clear, got %dx%d len=%d", s.Width, s.Height, len(s.Pix))
	}
}

func TestWriteRGBAReusesBuffer(t *testing.T) {
	s := NewSurface(2, 1)
	s.Set(0, 0, Pack(10, 20, 30, 40))
	s.Set(1, 0, Pack(50, 60, 70, 80))
	buf := make([]byte, 0, 64)
	out := s.WriteRGBA(buf)
	want := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	if string(out) != string(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
	if &out[0] != &buf[:1][0] {
		t.Fatalf("buffer with enough capacity should be reused")
	}
}

func TestSurfaceFromImage(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.SetRGBA(1, 0, color.RGBA{R: 200, A: 255})
	s := SurfaceFromImage(rgba)
	if s.Width != 2 || s.Height != 2 || s.At(1, 0) != Pack(200, 0, 0, 255) || s.At(0, 0) != Transparent {
		t.Fatalf("unexpected surface from RGBA: %+v", s.Pix)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	nrgba.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})
	r, _, _, a := Unpack(SurfaceFromImage(nrgba).At(0, 0))
	if a != 128 || r != 128 {
		t.Fatalf("expected premultiplied red 128 alpha 128, got r=%d a=%d", r, a)
	}

	if SurfaceFromImage(nil) != nil {
		t.Fatalf("nil image should yield nil surface")
	}
}
