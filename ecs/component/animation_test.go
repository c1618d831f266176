package component

import "testing"

func TestAnimationTickAdvancesOncePerDelay(t *testing.T) {
	cases := []struct {
		name  string
		total int
		delay int
		start int
	}{
		{"delay_one", 3, 1, 0},
		{"delay_six", 14, 6, 0},
		{"wraps_last_frame", 5, 4, 4},
		{"single_frame", 1, 3, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAnimation(c.total, c.delay)
			a.CurrentFrame = c.start

			for i := 0; i < c.delay-1; i++ {
				if a.Tick() {
					t.Fatalf("tick %d: advanced before the delay elapsed", i+1)
				}
				if a.CurrentFrame != c.start {
					t.Fatalf("tick %d: frame moved to %d", i+1, a.CurrentFrame)
				}
			}
			if !a.Tick() {
				t.Fatalf("expected advance on tick %d", c.delay)
			}
			want := (c.start + 1) % c.total
			if a.CurrentFrame != want {
				t.Fatalf("expected frame %d, got %d", want, a.CurrentFrame)
			}
			if a.Counter != 0 {
				t.Fatalf("expected counter reset, got %d", a.Counter)
			}
		})
	}
}

func TestAnimationPausedTickIsNoOp(t *testing.T) {
	a := NewAnimation(4, 3)
	a.Tick()
	a.Toggle()
	a.Counter = 2
	frame := a.CurrentFrame

	for i := 0; i < 50; i++ {
		if a.Tick() {
			t.Fatalf("paused animation advanced on tick %d", i)
		}
	}
	if a.CurrentFrame != frame || a.Counter != 2 {
		t.Fatalf("paused state changed: frame=%d counter=%d", a.CurrentFrame, a.Counter)
	}
}

func TestAnimationEmptyTickIsNoOp(t *testing.T) {
	a := NewAnimation(0, 1)
	for i := 0; i < 5; i++ {
		if a.Tick() {
			t.Fatalf("empty animation advanced")
		}
	}
	if a.Counter != 0 || a.CurrentFrame != 0 {
		t.Fatalf("empty animation mutated: %+v", *a)
	}
}

func TestAnimationToggleResetsCounter(t *testing.T) {
	for _, prior := range []int{0, 1, 4} {
		a := NewAnimation(3, 5)
		for i := 0; i < prior; i++ {
			a.Tick()
		}
		if a.Counter != prior {
			t.Fatalf("setup: expected counter %d, got %d", prior, a.Counter)
		}
		a.Toggle()
		if a.Playing || a.Counter != 0 {
			t.Fatalf("after pause: playing=%v counter=%d", a.Playing, a.Counter)
		}
		a.Toggle()
		if !a.Playing || a.Counter != 0 {
			t.Fatalf("after resume: playing=%v counter=%d", a.Playing, a.Counter)
		}
	}

	a := NewAnimation(3, 5)
	a.Counter = 3
	a.Pause()
	a.Counter = 3
	a.Resume()
	if !a.Playing || a.Counter != 0 {
		t.Fatalf("Resume: playing=%v counter=%d", a.Playing, a.Counter)
	}
}

func TestAnimationFrameStaysInRange(t *testing.T) {
	a := NewAnimation(7, 2)
	for i := 0; i < 1000; i++ {
		a.Tick()
		if i%37 == 0 {
			a.Toggle()
		}
		if a.CurrentFrame < 0 || a.CurrentFrame >= a.TotalFrames {
			t.Fatalf("tick %d: frame %d out of range", i, a.CurrentFrame)
		}
		if a.Counter < 0 || a.Counter >= a.FrameDelay {
			t.Fatalf("tick %d: counter %d out of range", i, a.Counter)
		}
	}
}

func TestAnimationSetFrameDelay(t *testing.T) {
	a := NewAnimation(3, 10)
	for i := 0; i < 7; i++ {
		a.Tick()
	}
	a.SetFrameDelay(4)
	if a.Counter != 0 || a.FrameDelay != 4 {
		t.Fatalf("expected counter reset with delay 4, got counter=%d delay=%d", a.Counter, a.FrameDelay)
	}
	a.SetFrameDelay(0)
	if a.FrameDelay != 1 {
		t.Fatalf("expected delay clamped to 1, got %d", a.FrameDelay)
	}

	if d := FrameDelayFor(60, 10); d != 6 {
		t.Fatalf("expected delay 6 at 60 TPS / 10 FPS, got %d", d)
	}
	if d := FrameDelayFor(60, 120); d != 1 {
		t.Fatalf("expected delay clamped to 1, got %d", d)
	}
}
