package system

import (
	"math"

	"github.com/milk9111/raycaster/ecs"
	"github.com/milk9111/raycaster/ecs/render"
	"github.com/milk9111/raycaster/levels"
)

// maxRaySteps bounds the DDA walk for levels with open edges.
const maxRaySteps = 256

// Hit is the result of one ray cast.
type Hit struct {
	Dist  float64 // perpendicular distance, in tiles
	Side  int     // 0 crossed an X grid line, 1 a Y grid line
	TileX int
	TileY int
}

// RaycastSystem renders the first-person view into the scene surface, one
// wall slice per screen column.
type RaycastSystem struct{}

func NewRaycastSystem() *RaycastSystem {
	return &RaycastSystem{}
}

func (r *RaycastSystem) Update(c *ecs.Context) {
	if c == nil || c.World.Scene == nil || c.World.Level == nil {
		return
	}
	scene := c.World.Scene
	lvl := c.World.Level
	scene.Resize(c.ViewportSize())
	w, h := scene.Width, scene.Height
	if w == 0 || h == 0 {
		return
	}

	ceil := render.Pack(lvl.Ceiling[0], lvl.Ceiling[1], lvl.Ceiling[2], 255)
	floor := render.Pack(lvl.Floor[0], lvl.Floor[1], lvl.Floor[2], 255)
	scene.FillRect(0, 0, w, h/2, ceil)
	scene.FillRect(0, h/2, w, h, floor)

	p := &c.Player
	dirX, dirY := p.Dir()
	planeX, planeY := p.Plane()
	for x := 0; x < w; x++ {
		camX := 2*float64(x)/float64(w) - 1
		hit := CastRay(lvl, p.X, p.Y, dirX+planeX*camX, dirY+planeY*camX)

		lineH := int(float64(h) / hit.Dist)
		start := max(h/2-lineH/2, 0)
		end := min(h/2+lineH/2, h)
		col := wallShade(hit)
		for y := start; y < end; y++ {
			scene.Pix[y*w+x] = col
		}
	}
}

// CastRay walks the grid from (px, py) along (rx, ry) until it enters a wall.
func CastRay(lvl *levels.Level, px, py, rx, ry float64) Hit {
	mapX, mapY := int(math.Floor(px)), int(math.Floor(py))

	deltaX, deltaY := math.Inf(1), math.Inf(1)
	if rx != 0 {
		deltaX = math.Abs(1 / rx)
	}
	if ry != 0 {
		deltaY = math.Abs(1 / ry)
	}

	stepX, stepY := 1, 1
	sideX := (float64(mapX) + 1 - px) * deltaX
	if rx < 0 {
		stepX = -1
		sideX = (px - float64(mapX)) * deltaX
	}
	sideY := (float64(mapY) + 1 - py) * deltaY
	if ry < 0 {
		stepY = -1
		sideY = (py - float64(mapY)) * deltaY
	}

	side := 0
	for i := 0; i < maxRaySteps; i++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = 0
		} else {
			sideY += deltaY
			mapY += stepY
			side = 1
		}
		if lvl.IsWall(mapX, mapY) {
			break
		}
	}

	dist := sideY - deltaY
	if side == 0 {
		dist = sideX - deltaX
	}
	return Hit{Dist: max(dist, 1e-4), Side: side, TileX: mapX, TileY: mapY}
}

func wallShade(hit Hit) uint32 {
	base := 210.0
	if hit.Side == 1 {
		base = 150.0
	}
	v := uint8(base / (1 + hit.Dist*0.12))
	return render.Pack(v, v, uint8(float64(v)*0.9), 255)
}
