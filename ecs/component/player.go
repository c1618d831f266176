package component

import "math"

// Player is the camera/movement state. Positions are in map tiles.
type Player struct {
	X, Y  float64
	Angle float64 // radians, 0 faces +X
	FOV   float64 // radians

	// Intents written by input each tick, consumed by movement.
	Forward float64 // -1..1
	Strafe  float64 // -1..1, positive is right
	Turn    float64 // -1..1, positive is clockwise

	MoveSpeed float64 // tiles per second
	TurnSpeed float64 // radians per second
	Radius    float64 // collision radius in tiles
}

// Dir returns the unit view direction.
func (p *Player) Dir() (float64, float64) {
	return math.Cos(p.Angle), math.Sin(p.Angle)
}

// Plane returns the camera plane perpendicular to Dir whose length sets the
// field of view.
func (p *Player) Plane() (float64, float64) {
	dx, dy := p.Dir()
	k := math.Tan(p.FOV / 2)
	return -dy * k, dx * k
}

// ClearIntents resets the per-tick intents.
func (p *Player) ClearIntents() {
	p.Forward, p.Strafe, p.Turn = 0, 0, 0
}
