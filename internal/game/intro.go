package game

import (
	"math"
	"time"

	"twenty48/internal/core"
	"twenty48/internal/input"
	"twenty48/internal/render"
)

const (
	pressY     = 490
	pressBlink = 0.0025 // rad per millisecond
)

// Intro is the title screen. Any key release starts a game.
type Intro struct {
	Ticks   uint64
	Elapsed time.Duration
}

// NewIntro returns a fresh title screen.
func NewIntro() *Intro { return &Intro{} }

// Kind implements State.
func (*Intro) Kind() Kind { return KindIntro }

func (s *Intro) handleInput(ev input.Event) bool {
	return ev.Kind == input.KindKeyUp
}

func (s *Intro) update(dt time.Duration) {
	s.Ticks++
	s.Elapsed += dt
}

// PromptAlpha is the opacity of the "press any key" prompt.
func (s *Intro) PromptAlpha() float64 {
	return math.Abs(math.Sin(pressBlink * float64(s.Elapsed.Milliseconds())))
}

func (s *Intro) render(ctx *Context, r render.Renderer) {
	r.DrawSprite(render.Sprite{
		Texture: "bg",
		Shader:  render.SpriteShader,
		Size:    core.Vec2{X: ctx.Width, Y: ctx.Height},
		Tint:    core.White,
	})

	size, ok := ctx.Atlas.TextureSize("press")
	if !ok {
		return
	}
	r.DrawSprite(render.Sprite{
		Texture:  "press",
		Shader:   render.SpriteShader,
		Position: core.Vec2{X: ctx.Width/2 - size.X/2, Y: pressY},
		Size:     size,
		Tint:     core.White.WithAlpha(s.PromptAlpha()),
	})
}
