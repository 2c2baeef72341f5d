package tui

import (
	"twenty48/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Input pumps tcell events into a buffered channel on its own goroutine so
// that Poll never blocks the loop.
type Input struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// NewInput starts pumping events from screen. The pump exits when Close is
// called or the screen is finalised.
func NewInput(screen tcell.Screen) *Input {
	in := &Input{
		screen: screen,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	go in.pump()
	return in
}

func (in *Input) pump() {
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		case <-in.done:
			return
		}
	}
}

// Poll implements input.Source.
func (in *Input) Poll(dst []input.Event) []input.Event {
	for {
		select {
		case ev := <-in.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				dst = appendKey(dst, ev)
			case *tcell.EventResize:
				in.screen.Sync()
			}
		default:
			return dst
		}
	}
}

// Close stops the pump.
func (in *Input) Close() { close(in.done) }

// appendKey translates one terminal key press. Terminals report no releases,
// so every press is followed by its release.
func appendKey(dst []input.Event, ev *tcell.EventKey) []input.Event {
	var k input.Key
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return append(dst, input.Quit())
	case tcell.KeyEnter:
		k = input.KeyEnter
	case tcell.KeyUp:
		k = input.KeyUp
	case tcell.KeyDown:
		k = input.KeyDown
	case tcell.KeyLeft:
		k = input.KeyLeft
	case tcell.KeyRight:
		k = input.KeyRight
	case tcell.KeyF1:
		k = input.KeyF1
	case tcell.KeyF2:
		k = input.KeyF2
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			k = input.KeySpace
		case 'r', 'R':
			k = input.KeyR
		default:
			k = input.KeyOther
		}
	default:
		k = input.KeyOther
	}
	return append(dst, input.Press(k), input.Release(k))
}
