package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrNoFrames is matched by every LoadError.
var ErrNoFrames = errors.New("render: no frames found")

// LoadError reports that a scan found zero frames.
type LoadError struct {
	Dir     string
	Pattern string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("render: no frames found in %s (expected %s)", e.Dir, e.Pattern)
}

func (e *LoadError) Is(target error) bool {
	return target == ErrNoFrames
}

// Frame is one decoded, renderable image of the sequence. Frames are immutable
// after load.
type Frame struct {
	Index  int
	Path   string
	Width  int
	Height int
	Pixels *Surface
}

// LoadOptions control frame enumeration. Files are named
// <Prefix><index>.<ext>, contiguous from BaseIndex.
type LoadOptions struct {
	Dir        string
	Prefix     string
	Extensions []string
	BaseIndex  int
	// MaxFrames caps the scan; 0 means no cap.
	MaxFrames int
}

// DefaultLoadOptions returns the 1-based frame<i>.png convention.
func DefaultLoadOptions(dir string) LoadOptions {
	return LoadOptions{
		Dir:        dir,
		Prefix:     "frame",
		Extensions: []string{"png"},
		BaseIndex:  1,
	}
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.Prefix == "" {
		o.Prefix = "frame"
	}
	if len(o.Extensions) == 0 {
		o.Extensions = []string{"png"}
	}
	if o.BaseIndex < 0 {
		o.BaseIndex = 0
	}
	if o.MaxFrames < 0 {
		o.MaxFrames = 0
	}
	return o
}

func (o LoadOptions) pattern() string {
	return fmt.Sprintf("%s<%d..>.%s", o.Prefix, o.BaseIndex, strings.Join(o.Extensions, "|"))
}

// LoadDir scans opts.Dir on the local filesystem.
func LoadDir(opts LoadOptions, reg Registry, logger *log.Logger) ([]*Frame, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	return Load(os.DirFS(dir), opts, reg, logger)
}

// Load enumerates frames in fsys root. The scan stops at the first index with
// no readable file; only an empty result is an error. Each decoded image is
// converted into a Surface and dropped, then registered with reg when reg is
// non-nil.
func Load(fsys fs.FS, opts LoadOptions, reg Registry, logger *log.Logger) ([]*Frame, error) {
	opts = opts.withDefaults()
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("component", "frames", "dir", opts.Dir)

	var frames []*Frame
	for i := opts.BaseIndex; opts.MaxFrames == 0 || len(frames) < opts.MaxFrames; i++ {
		f, err := loadFrame(fsys, opts, i)
		if err != nil {
			if !errors.Is(err, errFrameMissing) {
				logger.Warn("stopping frame scan at unreadable file", "index", i, "err", err)
			}
			break
		}
		if reg != nil {
			if err := reg.Register(f); err != nil {
				logger.Warn("stopping frame scan, register failed", "index", i, "path", f.Path, "err", err)
				break
			}
		}
		frames = append(frames, f)
	}

	if len(frames) == 0 {
		return nil, &LoadError{Dir: opts.Dir, Pattern: opts.pattern()}
	}
	logger.Info("loaded frames", "count", len(frames), "first", frames[0].Path, "last", frames[len(frames)-1].Path)
	return frames, nil
}

// loadFrame tries each extension for index i. errFrameMissing means no
// candidate exists; any other error means a candidate exists but is broken.
func loadFrame(fsys fs.FS, opts LoadOptions, i int) (*Frame, error) {
	for _, ext := range opts.Extensions {
		name := fmt.Sprintf("%s%d.%s", opts.Prefix, i, strings.TrimPrefix(ext, "."))
		img, err := decodeFile(fsys, name)
		if errors.Is(err, errFrameMissing) {
			continue
		}
		if err != nil {
			return nil, err
		}
		px := SurfaceFromImage(img)
		return &Frame{
			Index:  i,
			Path:   filepath.Join(opts.Dir, name),
			Width:  px.Width,
			Height: px.Height,
			Pixels: px,
		}, nil
	}
	return nil, errFrameMissing
}
