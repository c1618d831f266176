package system

import (
	"math"

	"github.com/milk9111/raycaster/ecs"
	"github.com/milk9111/raycaster/ecs/render"
)

var (
	minimapWall   = render.Pack(30, 30, 30, 255)
	minimapFloor  = render.Pack(200, 200, 200, 255)
	minimapPlayer = render.Pack(220, 40, 40, 255)
)

// MinimapSystem draws a top-down view of the level over the top-left corner
// of the scene. It must run after the world render.
type MinimapSystem struct {
	Tile   int
	Margin int
}

func NewMinimapSystem(tile, margin int) *MinimapSystem {
	if tile <= 0 {
		tile = 8
	}
	return &MinimapSystem{Tile: tile, Margin: max(margin, 0)}
}

func (m *MinimapSystem) Update(c *ecs.Context) {
	if m == nil || c == nil || c.World.Scene == nil || c.World.Level == nil {
		return
	}
	scene := c.World.Scene
	lvl := c.World.Level
	t := m.Tile

	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			col := minimapFloor
			if lvl.IsWall(x, y) {
				col = minimapWall
			}
			x0 := m.Margin + x*t
			y0 := m.Margin + y*t
			scene.FillRect(x0, y0, x0+t, y0+t, col)
		}
	}

	p := &c.Player
	cx := m.Margin + int(p.X*float64(t))
	cy := m.Margin + int(p.Y*float64(t))
	r := max(t/4, 1)
	scene.FillRect(cx-r, cy-r, cx+r+1, cy+r+1, minimapPlayer)

	// heading line, one tile long
	dx, dy := p.Dir()
	for i := 0; i <= t; i++ {
		scene.Set(cx+int(math.Round(dx*float64(i))), cy+int(math.Round(dy*float64(i))), minimapPlayer)
	}
}
