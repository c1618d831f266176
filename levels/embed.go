package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrNoSpawn       = errors.New("levels: no spawn")
	ErrMultipleSpawn = errors.New("levels: more than one spawn")
	ErrEmpty         = errors.New("levels: empty grid")
	ErrBadTile       = errors.New("levels: unknown tile")
)

// Level is a grid map. Rows use '1' for walls, '0' for floor, ' ' for void
// (solid) and one of N, S, E, W for the player spawn and facing.
type Level struct {
	Name    string   `json:"name"`
	Rows    []string `json:"rows"`
	Floor   [3]uint8 `json:"floor"`
	Ceiling [3]uint8 `json:"ceiling"`

	Width  int `json:"-"`
	Height int `json:"-"`
	walls  []bool
	spawn  Spawn
}

// Spawn is the player start, centered in its tile.
type Spawn struct {
	X, Y  float64
	Angle float64
}

// Load reads levels/<name>.json from disk when present, else the embedded
// copy.
func Load(name string) (*Level, error) {
	clean := cleanLevelName(name)
	if data, err := os.ReadFile(filepath.Join("levels", clean)); err == nil {
		return Parse(data)
	}
	return LoadLevelFromFS(clean)
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, cleanLevelName(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a level.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.build(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) build() error {
	l.Height = len(l.Rows)
	for _, row := range l.Rows {
		l.Width = max(l.Width, len(row))
	}
	if l.Width == 0 || l.Height == 0 {
		return ErrEmpty
	}

	l.walls = make([]bool, l.Width*l.Height)
	spawns := 0
	for y, row := range l.Rows {
		for x := 0; x < l.Width; x++ {
			c := byte(' ')
			if x < len(row) {
				c = row[x]
			}
			switch c {
			case '0':
			case '1', ' ':
				l.walls[y*l.Width+x] = true
			case 'N', 'S', 'E', 'W':
				spawns++
				l.spawn = Spawn{X: float64(x) + 0.5, Y: float64(y) + 0.5, Angle: facing(c)}
			default:
				return fmt.Errorf("%w %q at %d,%d", ErrBadTile, c, x, y)
			}
		}
	}
	switch {
	case spawns == 0:
		return ErrNoSpawn
	case spawns > 1:
		return fmt.Errorf("%w: found %d", ErrMultipleSpawn, spawns)
	}
	return nil
}

// facing maps a spawn letter to an angle; screen Y grows downward so north is
// -π/2.
func facing(c byte) float64 {
	switch c {
	case 'N':
		return -math.Pi / 2
	case 'S':
		return math.Pi / 2
	case 'W':
		return math.Pi
	}
	return 0
}

// IsWall reports whether tile (x, y) blocks movement and rays. Anything
// outside the grid is solid.
func (l *Level) IsWall(x, y int) bool {
	if l == nil || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return true
	}
	return l.walls[y*l.Width+x]
}

func (l *Level) Spawn() Spawn {
	if l == nil {
		return Spawn{}
	}
	return l.spawn
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
