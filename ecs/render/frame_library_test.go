package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"golang.org/x/image/bmp"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// tagImage returns a w×h image whose (0,0) pixel encodes tag in its red
// channel so tests can tell frames apart after decoding.
func tagImage(w, h int, tag uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	img.SetRGBA(0, 0, color.RGBA{R: tag, A: 255})
	return img
}

func pngBytes(t *testing.T, tag uint8) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, tagImage(3, 2, tag)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func bmpBytes(t *testing.T, tag uint8) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, tagImage(3, 2, tag)); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}
	return buf.Bytes()
}

func TestLoadStopsAtFirstGap(t *testing.T) {
	fsys := fstest.MapFS{}
	for i := 1; i <= 5; i++ {
		fsys[fmt.Sprintf("frame%d.png", i)] = &fstest.MapFile{Data: pngBytes(t, uint8(i))}
	}
	fsys["frame7.png"] = &fstest.MapFile{Data: pngBytes(t, 7)}

	frames, err := Load(fsys, DefaultLoadOptions("frames"), nil, quietLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(frames))
	}
	for i, f := range frames {
		want := i + 1
		if f.Index != want {
			t.Fatalf("frame %d: expected index %d, got %d", i, want, f.Index)
		}
		if r, _, _, _ := Unpack(f.Pixels.At(0, 0)); int(r) != want {
			t.Fatalf("frame %d: expected tag %d, got %d", i, want, r)
		}
		if f.Width != 3 || f.Height != 2 {
			t.Fatalf("frame %d: expected 3x2, got %dx%d", i, f.Width, f.Height)
		}
		if f.Path != filepath.Join("frames", fmt.Sprintf("frame%d.png", want)) {
			t.Fatalf("frame %d: unexpected path %q", i, f.Path)
		}
	}
}

func TestLoadEmptyDirIsLoadError(t *testing.T) {
	fsys := fstest.MapFS{
		"other.png":  &fstest.MapFile{Data: pngBytes(t, 1)},
		"frame0.png": &fstest.MapFile{Data: pngBytes(t, 1)},
	}
	frames, err := Load(fsys, DefaultLoadOptions("assets/frames"), nil, quietLogger())
	if err == nil {
		t.Fatalf("expected error, got %d frames", len(frames))
	}
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Dir != "assets/frames" {
		t.Fatalf("expected LoadError naming the directory, got %#v", err)
	}
}

func TestLoadOptionsVariants(t *testing.T) {
	cases := []struct {
		name  string
		files map[string][]byte
		opts  LoadOptions
		want  []int
	}{
		{
			name: "zero_based",
			files: map[string][]byte{
				"frame0.png": pngBytes(t, 0),
				"frame1.png": pngBytes(t, 1),
			},
			opts: LoadOptions{BaseIndex: 0},
			want: []int{0, 1},
		},
		{
			name: "max_frames",
			files: map[string][]byte{
				"frame1.png": pngBytes(t, 1),
				"frame2.png": pngBytes(t, 2),
				"frame3.png": pngBytes(t, 3),
			},
			opts: LoadOptions{BaseIndex: 1, MaxFrames: 2},
			want: []int{1, 2},
		},
		{
			name: "unreadable_ends_scan",
			files: map[string][]byte{
				"frame1.png": pngBytes(t, 1),
				"frame2.png": []byte("not an image"),
				"frame3.png": pngBytes(t, 3),
			},
			opts: LoadOptions{BaseIndex: 1},
			want: []int{1},
		},
		{
			name: "mixed_extensions",
			files: map[string][]byte{
				"sprite1.png": pngBytes(t, 1),
				"sprite2.bmp": bmpBytes(t, 2),
			},
			opts: LoadOptions{Prefix: "sprite", Extensions: []string{"png", ".bmp"}, BaseIndex: 1},
			want: []int{1, 2},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for name, data := range c.files {
				fsys[name] = &fstest.MapFile{Data: data}
			}
			frames, err := Load(fsys, c.opts, nil, quietLogger())
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(frames) != len(c.want) {
				t.Fatalf("expected %d frames, got %d", len(c.want), len(frames))
			}
			for i, f := range frames {
				if f.Index != c.want[i] {
					t.Fatalf("frame %d: expected index %d, got %d", i, c.want[i], f.Index)
				}
				if r, _, _, _ := Unpack(f.Pixels.At(0, 0)); int(r) != c.want[i] {
					t.Fatalf("frame %d: expected tag %d, got %d", i, c.want[i], r)
				}
			}
		})
	}
}

func TestLoadRegistersEachFrame(t *testing.T) {
	fsys := fstest.MapFS{
		"frame1.png": &fstest.MapFile{Data: pngBytes(t, 1)},
		"frame2.png": &fstest.MapFile{Data: pngBytes(t, 2)},
		"frame3.png": &fstest.MapFile{Data: pngBytes(t, 3)},
	}

	t.Run("all_registered", func(t *testing.T) {
		var got []int
		reg := RegistryFunc(func(f *Frame) error {
			got = append(got, f.Index)
			return nil
		})
		frames, err := Load(fsys, DefaultLoadOptions(""), reg, quietLogger())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(got) != len(frames) || got[0] != 1 || got[2] != 3 {
			t.Fatalf("expected registrations [1 2 3], got %v", got)
		}
	})

	t.Run("register_failure_ends_scan", func(t *testing.T) {
		reg := RegistryFunc(func(f *Frame) error {
			if f.Index == 3 {
				return errors.New("no texture slots")
			}
			return nil
		})
		frames, err := Load(fsys, DefaultLoadOptions(""), reg, quietLogger())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(frames) != 2 {
			t.Fatalf("expected 2 frames, got %d", len(frames))
		}
	})
}

func TestLoadDirReadsDisk(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 2; i++ {
		name := filepath.Join(dir, fmt.Sprintf("frame%d.png", i))
		if err := os.WriteFile(name, pngBytes(t, uint8(i)), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	frames, err := LoadDir(DefaultLoadOptions(dir), nil, quietLogger())
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}

	_, err = LoadDir(DefaultLoadOptions(filepath.Join(dir, "missing")), nil, quietLogger())
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames for missing dir, got %v", err)
	}
}
