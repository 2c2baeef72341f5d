package game

import (
	"io"
	"log"
	"time"

	"twenty48/internal/assets"
	"twenty48/internal/input"
	"twenty48/internal/render"
)

// Kind names a state variant.
type Kind uint8

const (
	KindIntro Kind = iota
	KindGameplay
)

func (k Kind) String() string {
	switch k {
	case KindIntro:
		return "intro"
	case KindGameplay:
		return "gameplay"
	default:
		return "unknown"
	}
}

// State is one screen. The set is closed: *Intro and *Gameplay.
type State interface {
	Kind() Kind
	sealed()
}

func (*Intro) sealed()    {}
func (*Gameplay) sealed() {}

// Machine is a stack of states. Only the top one receives input, updates and
// renders.
type Machine struct {
	ctx   *Context
	stack []State
}

// NewMachine returns an empty machine bound to ctx.
func NewMachine(ctx *Context) *Machine {
	if ctx.Log == nil {
		ctx.Log = log.New(io.Discard, "", 0)
	}
	return &Machine{ctx: ctx}
}

// Push makes s the active state.
func (m *Machine) Push(s State) {
	m.stack = append(m.stack, s)
	m.enter(s)
}

// Pop removes and returns the active state and re-enters the one below it.
func (m *Machine) Pop() State {
	s := m.pop()
	if len(m.stack) > 0 {
		m.enter(m.Top())
	}
	return s
}

// Replace swaps the active state for s.
func (m *Machine) Replace(s State) {
	m.pop()
	m.Push(s)
}

// Top returns the active state. It panics on an empty stack.
func (m *Machine) Top() State {
	if len(m.stack) == 0 {
		panic("game: empty state stack")
	}
	return m.stack[len(m.stack)-1]
}

// Active returns the kind of the active state.
func (m *Machine) Active() Kind { return m.Top().Kind() }

// Depth returns the stack size.
func (m *Machine) Depth() int { return len(m.stack) }

// HandleInput routes ev to the active state.
func (m *Machine) HandleInput(ev input.Event) {
	switch s := m.Top().(type) {
	case *Intro:
		if s.handleInput(ev) {
			m.Replace(NewGameplay(m.ctx))
		}
	case *Gameplay:
		s.handleInput(m.ctx, ev)
	}
}

// Update advances the active state by one tick of length dt.
func (m *Machine) Update(dt time.Duration) {
	switch s := m.Top().(type) {
	case *Intro:
		s.update(dt)
	case *Gameplay:
		s.update(m.ctx, dt)
	}
}

// Render draws the active state. It does not modify any state.
func (m *Machine) Render(r render.Renderer) {
	switch s := m.Top().(type) {
	case *Intro:
		s.render(m.ctx, r)
	case *Gameplay:
		s.render(m.ctx, r)
	}
}

func (m *Machine) pop() State {
	s := m.Top()
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]
	if g, ok := s.(*Gameplay); ok {
		g.release()
	}
	return s
}

func (m *Machine) enter(s State) {
	switch s.(type) {
	case *Intro:
		m.ctx.play(assets.TrackIntro)
	case *Gameplay:
		m.ctx.play(assets.TrackGame)
	}
	m.ctx.Log.Printf("state: %s", s.Kind())
}
