package game

import (
	"fmt"
	"time"

	"twenty48/internal/core"
	"twenty48/internal/input"
	"twenty48/internal/render"
)

// Stats summarises loop progress.
type Stats struct {
	Frames  uint64
	Updates uint64
	Lag     time.Duration
	Active  Kind
}

// Loop runs the machine on a fixed timestep: every iteration drains input,
// consumes accumulated time in FixedDT ticks and renders once.
type Loop struct {
	ctx     *Context
	clock   core.Clock
	machine *Machine
	step    *core.FixedStep

	last     time.Duration
	quitting bool
	done     bool
	stats    Stats
	events   []input.Event
}

// NewLoop validates ctx and starts on the intro screen.
func NewLoop(ctx *Context, clock core.Clock) (*Loop, error) {
	if err := ctx.validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		return nil, fmt.Errorf("%w: no clock", ErrNotReady)
	}
	l := &Loop{
		ctx:     ctx,
		clock:   clock,
		machine: NewMachine(ctx),
		step:    core.NewFixedStep(core.FixedDT),
		last:    clock.Now(),
	}
	l.machine.Push(NewIntro())
	return l, nil
}

// SetStep changes the tick length. Accumulated lag is kept.
func (l *Loop) SetStep(step time.Duration) {
	lag := l.step.Lag()
	l.step = core.NewFixedStep(step)
	l.step.Accumulate(lag)
}

// Machine exposes the state stack.
func (l *Loop) Machine() *Machine { return l.machine }

// Context returns the context shared by every state.
func (l *Loop) Context() *Context { return l.ctx }

// Advance routes events to the active state and runs as many fixed updates
// as the elapsed time allows. It returns the number of updates run.
func (l *Loop) Advance(events []input.Event) int {
	now := l.clock.Now()
	l.step.Accumulate(now - l.last)
	l.last = now

	for _, ev := range events {
		if ev.Kind == input.KindQuit {
			l.quitting = true
			continue
		}
		l.machine.HandleInput(ev)
	}

	n := 0
	for l.step.ShouldStep() {
		l.machine.Update(l.step.Step())
		n++
	}
	l.stats.Updates += uint64(n)
	l.stats.Lag = l.step.Lag()
	return n
}

// Render draws the active state. A quit seen by Advance takes effect here,
// and the music is stopped once.
func (l *Loop) Render(r render.Renderer) {
	l.machine.Render(r)
	l.stats.Frames++
	if l.quitting && !l.done {
		l.done = true
		l.ctx.stop()
	}
}

// Frame polls src and runs one full iteration. It reports whether the loop
// should keep going.
func (l *Loop) Frame(src input.Source, r render.Renderer) bool {
	l.events = src.Poll(l.events[:0])
	l.Advance(l.events)
	l.Render(r)
	return !l.done
}

// Done reports whether a quit has been rendered.
func (l *Loop) Done() bool { return l.done }

// Active returns the kind of the active state.
func (l *Loop) Active() Kind { return l.machine.Active() }

// Stats returns the loop counters.
func (l *Loop) Stats() Stats {
	s := l.stats
	s.Active = l.machine.Active()
	return s
}

// SpringProbes lists every animating cell of the active state.
func (l *Loop) SpringProbes() []core.SpringProbe {
	if g, ok := l.machine.Top().(*Gameplay); ok {
		return g.springProbes(nil)
	}
	return nil
}
