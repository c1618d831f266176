package component

// Mouse stores capture mode and the last cursor sample used for mouse-look.
type Mouse struct {
	Captured    bool
	LastX       int
	LastY       int
	HasLast     bool
	Sensitivity float64 // radians per pixel
}

// Delta returns the horizontal/vertical movement since the last sample and
// records (x, y). The first sample after a reset yields zero.
func (m *Mouse) Delta(x, y int) (int, int) {
	if m == nil {
		return 0, 0
	}
	if !m.HasLast {
		m.LastX, m.LastY, m.HasLast = x, y, true
		return 0, 0
	}
	dx, dy := x-m.LastX, y-m.LastY
	m.LastX, m.LastY = x, y
	return dx, dy
}

// Reset forgets the last sample, e.g. after the capture mode changed.
func (m *Mouse) Reset() {
	if m == nil {
		return
	}
	m.HasLast = false
}
