package render

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var errFrameMissing = errors.New("render: frame file missing")

// decodeFile opens and decodes one image from fsys. A file that does not exist
// yields errFrameMissing so callers can tell a gap from a broken file.
func decodeFile(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errFrameMissing
		}
		return nil, fmt.Errorf("render: open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", name, err)
	}
	return img, nil
}
