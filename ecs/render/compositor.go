package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	ErrUnknownStrategy = errors.New("render: unknown compositor strategy")
	ErrUnknownAnchor   = errors.New("render: unknown anchor")
)

// Compositor renders the active frame into the presented output.
type Compositor interface {
	// Show makes the current frame visible. Called once when the animation
	// is initialized.
	Show(frames []*Frame, current int)
	// FrameChanged is signalled by the animation tick when the active frame
	// advanced from prev to next.
	FrameChanged(frames []*Frame, prev, next int)
	// Compose runs every tick.
	Compose(frames []*Frame, current int)
	// Present hands the composited output to the platform.
	Present(p Painter)
}

// Viewport reports the current destination size.
type Viewport interface {
	Size() (w, h int)
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct{ W, H int }

func (v FixedViewport) Size() (int, int) { return v.W, v.H }

type Strategy string

const (
	StrategyToggle Strategy = "toggle"
	StrategyBlit   Strategy = "blit"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyToggle:
		return StrategyToggle, nil
	case StrategyBlit:
		return StrategyBlit, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Anchor places a w×h image inside the viewport.
type Anchor int

const (
	AnchorBottomLeft Anchor = iota
	AnchorBottomCenter
)

func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bottom-left":
		return AnchorBottomLeft, nil
	case "bottom-center":
		return AnchorBottomCenter, nil
	}
	return AnchorBottomLeft, fmt.Errorf("%w: %q", ErrUnknownAnchor, s)
}

func (a Anchor) String() string {
	if a == AnchorBottomCenter {
		return "bottom-center"
	}
	return "bottom-left"
}

// Origin returns the top-left corner of a w×h image anchored in a
// viewW×viewH viewport.
func (a Anchor) Origin(viewW, viewH, w, h int) (x, y int) {
	y = viewH - h
	if a == AnchorBottomCenter {
		x = (viewW - w) / 2
	}
	return x, y
}

// Options configure a compositor.
type Options struct {
	Anchor Anchor
	// Scale only applies to the blit strategy.
	Scale float64
}

// New builds the compositor for strategy.
func New(strategy Strategy, vp Viewport, opts Options, logger *log.Logger) (Compositor, error) {
	switch strategy {
	case StrategyToggle, "":
		return NewToggleCompositor(vp, opts.Anchor, logger), nil
	case StrategyBlit:
		return NewBlitCompositor(vp, opts.Scale, opts.Anchor, logger), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

func activeFrame(frames []*Frame, i int) *Frame {
	if i < 0 || i >= len(frames) {
		return nil
	}
	return frames[i]
}

// skipLog reports each skip reason once at debug level.
type skipLog struct {
	logger *log.Logger
	seen   map[string]bool
}

func newSkipLog(logger *log.Logger, strategy Strategy) skipLog {
	if logger == nil {
		logger = log.Default()
	}
	return skipLog{
		logger: logger.With("component", "compositor", "strategy", string(strategy)),
		seen:   make(map[string]bool),
	}
}

func (s *skipLog) skip(reason string) {
	if s.seen[reason] {
		return
	}
	s.seen[reason] = true
	s.logger.Debug("composite skipped", "reason", reason)
}
