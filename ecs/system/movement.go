package system

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raycaster/common"
	"github.com/milk9111/raycaster/ecs"
	"github.com/milk9111/raycaster/levels"
)

// unitsPerTile scales map tiles into physics units so chipmunk's default
// collision slop stays small relative to a tile.
const unitsPerTile = 64.0

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypePlayer
)

var ErrNoLevel = errors.New("system: no level loaded")

// MovementSystem moves the player through a chipmunk space built from the
// level's wall tiles and applies turning.
type MovementSystem struct {
	space  *cp.Space
	body   *cp.Body
	level  *levels.Level
	radius float64
	dt     float64
	// intent is the desired velocity, applied during the step's velocity
	// integration so contact impulses can still cancel it.
	intent cp.Vector
}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Install(c *ecs.Context) error {
	if c == nil || c.World.Level == nil {
		return ErrNoLevel
	}
	tps := c.TickRate
	if tps <= 0 {
		tps = common.DefaultTPS
	}
	m.dt = 1.0 / float64(tps)

	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	buildWallShapes(space, c.World.Level)

	radius := c.Player.Radius
	if radius <= 0 {
		radius = 0.2
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: c.Player.X * unitsPerTile, Y: c.Player.Y * unitsPerTile})
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		b.SetVelocity(m.intent.X, m.intent.Y)
	})
	shape := cp.NewCircle(body, radius*unitsPerTile, cp.Vector{})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypePlayer)
	space.AddBody(body)
	space.AddShape(shape)

	m.space = space
	m.body = body
	m.level = c.World.Level
	m.radius = radius
	return nil
}

func (m *MovementSystem) Update(c *ecs.Context) {
	if m == nil || m.space == nil || c == nil {
		return
	}
	p := &c.Player
	p.Angle = common.WrapAngle(p.Angle + p.Turn*p.TurnSpeed*m.dt)

	dx, dy := p.Dir()
	// right-hand vector; screen Y grows downward
	rx, ry := -dy, dx
	vx := dx*p.Forward + rx*p.Strafe
	vy := dy*p.Forward + ry*p.Strafe
	if l := math.Hypot(vx, vy); l > 1 {
		vx, vy = vx/l, vy/l
	}
	speed := p.MoveSpeed * unitsPerTile
	m.intent = cp.Vector{X: vx * speed, Y: vy * speed}
	m.space.Step(m.dt)

	pos := m.body.Position()
	x, y := pos.X/unitsPerTile, pos.Y/unitsPerTile
	// chipmunk leaves up to its collision slop of overlap; the grid has the
	// final say
	nx, ny := pushOutOfWalls(m.level, x, y, m.radius)
	if nx != x || ny != y {
		m.body.SetPosition(cp.Vector{X: nx * unitsPerTile, Y: ny * unitsPerTile})
	}
	p.X, p.Y = nx, ny
}

// pushOutOfWalls moves a circle at (x, y) with radius r out of every wall
// tile it overlaps. Coordinates are in tiles.
func pushOutOfWalls(lvl *levels.Level, x, y, r float64) (float64, float64) {
	if lvl == nil || r <= 0 {
		return x, y
	}
	const eps = 1e-9
	for iter := 0; iter < 4; iter++ {
		moved := false
		for ty := int(math.Floor(y - r)); ty <= int(math.Floor(y+r)); ty++ {
			for tx := int(math.Floor(x - r)); tx <= int(math.Floor(x+r)); tx++ {
				if !lvl.IsWall(tx, ty) {
					continue
				}
				l, t := float64(tx), float64(ty)
				cx := math.Max(l, math.Min(x, l+1))
				cy := math.Max(t, math.Min(y, t+1))
				dx, dy := x-cx, y-cy
				d := math.Hypot(dx, dy)
				if d >= r-eps {
					continue
				}
				if d == 0 {
					// center inside the tile: leave through the nearest face
					x, y = exitNearestFace(x, y, l, t, r)
				} else {
					x += dx / d * (r - d)
					y += dy / d * (r - d)
				}
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return x, y
}

func exitNearestFace(x, y, l, t, r float64) (float64, float64) {
	left, right := x-l, l+1-x
	top, bottom := y-t, t+1-y
	switch min(left, right, top, bottom) {
	case left:
		return l - r, y
	case right:
		return l + 1 + r, y
	case top:
		return x, t - r
	}
	return x, t + 1 + r
}

// buildWallShapes merges contiguous wall tiles into boxes, row run first then
// downward, so the space holds few static shapes.
func buildWallShapes(space *cp.Space, lvl *levels.Level) {
	if space == nil || lvl == nil {
		return
	}
	processed := make([]bool, lvl.Width*lvl.Height)
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			idx := y*lvl.Width + x
			if processed[idx] || !lvl.IsWall(x, y) {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < lvl.Width && !processed[y*lvl.Width+x+w] && lvl.IsWall(x+w, y) {
				w++
			}
			h := 1
		heightLoop:
			for y+h < lvl.Height {
				for xi := x; xi < x+w; xi++ {
					if processed[(y+h)*lvl.Width+xi] || !lvl.IsWall(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}

			bb := cp.BB{
				L: float64(x) * unitsPerTile,
				B: float64(y) * unitsPerTile,
				R: float64(x+w) * unitsPerTile,
				T: float64(y+h) * unitsPerTile,
			}
			shape := cp.NewBox2(space.StaticBody, bb, 0)
			shape.SetFriction(0)
			shape.SetCollisionType(collisionTypeWall)
			space.AddShape(shape)

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*lvl.Width+xx] = true
				}
			}
		}
	}
}
