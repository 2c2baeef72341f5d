// Package game holds the intro and gameplay screens, the stack machine that
// switches between them and the fixed-step loop that drives it.
package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"twenty48/internal/anim"
	"twenty48/internal/core"
	"twenty48/internal/render"
)

// ErrNotReady reports a loop built without its required collaborators.
var ErrNotReady = errors.New("game: not ready")

// Music plays background tracks by name. Implementations must not block.
type Music interface {
	Play(track string)
	Stop()
}

// Tuning groups the animation parameters adjustable at runtime.
type Tuning struct {
	Tile anim.Spring   // tile slide toward its cell
	Pop  time.Duration // spawn pop duration
}

// DefaultTuning returns the shipped animation feel.
func DefaultTuning() Tuning {
	return Tuning{Tile: anim.TileSpring, Pop: 200 * time.Millisecond}
}

// Context is everything a state may read or use while handling input,
// updating or rendering. It replaces any process-wide state.
type Context struct {
	Width, Height float64
	Atlas         render.Atlas
	Music         Music // nil plays nothing
	Log           *log.Logger
	Tuning        Tuning
	RNG           *core.RNG
}

func (c *Context) validate() error {
	switch {
	case c == nil:
		return fmt.Errorf("%w: nil context", ErrNotReady)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %vx%v", ErrNotReady, c.Width, c.Height)
	case c.Atlas == nil:
		return fmt.Errorf("%w: no texture atlas", ErrNotReady)
	case c.RNG == nil:
		return fmt.Errorf("%w: no random source", ErrNotReady)
	}
	if c.Log == nil {
		c.Log = log.New(io.Discard, "", 0)
	}
	return nil
}

func (c *Context) play(track string) {
	if c.Music != nil {
		c.Music.Play(track)
	}
}

func (c *Context) stop() {
	if c.Music != nil {
		c.Music.Stop()
	}
}
