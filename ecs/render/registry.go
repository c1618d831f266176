package render

// Registry is the platform's presentation registry. Every frame the library
// loads is registered once so the platform can later draw it.
type Registry interface {
	Register(f *Frame) error
}

// RegistryFunc adapts a function to Registry.
type RegistryFunc func(f *Frame) error

func (fn RegistryFunc) Register(f *Frame) error {
	if fn == nil {
		return nil
	}
	return fn(f)
}

// Painter is what a compositor presents through. The platform implements it
// against the real screen.
type Painter interface {
	// DrawFrame draws a registered frame with its top-left corner at (x, y).
	DrawFrame(f *Frame, x, y int)
	// DrawSurface uploads and draws a CPU surface at (x, y).
	DrawSurface(s *Surface, x, y int)
}
