package ecs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHook   = errors.New("ecs: invalid hook")
	ErrDuplicateHook = errors.New("ecs: duplicate hook")
	ErrSealed        = errors.New("ecs: scheduler already installed")
)

// System is one per-tick callback.
type System interface {
	Update(c *Context)
}

// Installer is implemented by systems that need setup before the loop starts,
// such as switching the cursor mode.
type Installer interface {
	Install(c *Context) error
}

// SystemFunc adapts a function to System.
type SystemFunc func(c *Context)

func (f SystemFunc) Update(c *Context) { f(c) }

type hook struct {
	name   string
	system System
	once   bool
	done   bool
}

// Scheduler runs named hooks in registration order once per tick.
type Scheduler struct {
	hooks  []hook
	names  map[string]struct{}
	sealed bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{names: make(map[string]struct{})}
}

// Register appends a hook that runs every tick.
func (s *Scheduler) Register(name string, system System) error {
	return s.add(name, system, false)
}

// RegisterOnce appends a hook that runs on the first tick only.
func (s *Scheduler) RegisterOnce(name string, system System) error {
	return s.add(name, system, true)
}

func (s *Scheduler) add(name string, system System, once bool) error {
	if s == nil {
		return fmt.Errorf("%w %q: nil scheduler", ErrInvalidHook, name)
	}
	if s.sealed {
		return fmt.Errorf("register hook %q: %w", name, ErrSealed)
	}
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidHook)
	}
	if system == nil {
		return fmt.Errorf("%w %q: nil system", ErrInvalidHook, name)
	}
	if s.names == nil {
		s.names = make(map[string]struct{})
	}
	if _, ok := s.names[name]; ok {
		return fmt.Errorf("%w %q", ErrDuplicateHook, name)
	}
	s.names[name] = struct{}{}
	s.hooks = append(s.hooks, hook{name: name, system: system, once: once})
	return nil
}

// Install seals the hook list and runs every Installer in order. The first
// failure is returned naming its hook.
func (s *Scheduler) Install(c *Context) error {
	if s == nil {
		return fmt.Errorf("%w: nil scheduler", ErrInvalidHook)
	}
	if s.sealed {
		return ErrSealed
	}
	s.sealed = true
	for _, h := range s.hooks {
		inst, ok := h.system.(Installer)
		if !ok {
			continue
		}
		if err := inst.Install(c); err != nil {
			return fmt.Errorf("install hook %q: %w", h.name, err)
		}
	}
	return nil
}

// Tick runs every due hook once, in order. Nothing runs after a quit request;
// a hook that requests quit still lets the remaining hooks of that tick run.
func (s *Scheduler) Tick(c *Context) {
	if s == nil || c == nil || c.QuitRequested() {
		return
	}
	for i := range s.hooks {
		h := &s.hooks[i]
		if h.done {
			continue
		}
		h.system.Update(c)
		if h.once {
			h.done = true
		}
	}
	c.ticks++
}

// Names returns hook names in execution order.
func (s *Scheduler) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.hooks))
	for _, h := range s.hooks {
		names = append(names, h.name)
	}
	return names
}
