package game

import (
	"time"

	"twenty48/internal/anim"
	"twenty48/internal/core"
	"twenty48/internal/input"
	"twenty48/internal/render"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	gridSize   = 4
	cellSize   = 80.0
	gutter     = 8.0
	gridTop    = 60.0
	startTiles = 2
	settleEps  = 0.01
)

var (
	backgroundColor = core.RGB8(250, 248, 239)
	panelColor      = core.RGB8(187, 173, 160)
	slotColor       = core.RGB8(205, 193, 180)
)

type phase uint8

const (
	phaseIdle phase = iota
	phaseMoving
)

// cellAnim tracks the motion of one cell toward its resting position.
type cellAnim struct {
	phase phase
	pop   *gween.Tween
	scale float64
}

// Gameplay is the board screen. It owns its grid.
type Gameplay struct {
	Grid    core.Grid
	anims   []cellAnim
	spawned int
	empty   []int
}

// NewGameplay lays out a centred board and spawns the opening tiles.
func NewGameplay(ctx *Context) *Gameplay {
	extent := core.Extent(gutter, cellSize, gridSize)
	origin := core.Vec2{X: ctx.Width/2 - extent/2, Y: gridTop}
	g := &Gameplay{}
	g.Grid.Init(core.NewLayout(origin, gridSize, gutter, cellSize))
	g.anims = make([]cellAnim, g.Grid.Len())
	ctx.Log.Printf("gameplay: %dx%d grid, extent %.0f at (%.0f, %.0f)",
		gridSize, gridSize, extent, origin.X, origin.Y)
	g.reset(ctx)
	return g
}

// Kind implements State.
func (*Gameplay) Kind() Kind { return KindGameplay }

// Spawned returns how many tiles have been spawned since the last reset.
func (g *Gameplay) Spawned() int { return g.spawned }

// Moving reports whether cell i is animating.
func (g *Gameplay) Moving(i int) bool { return g.anims[i].phase == phaseMoving }

func (g *Gameplay) handleInput(ctx *Context, ev input.Event) {
	if ev.Kind != input.KindKeyUp {
		return
	}
	switch ev.Key {
	case input.KeySpace:
		g.spawn(ctx)
	case input.KeyR:
		g.reset(ctx)
	}
}

func (g *Gameplay) reset(ctx *Context) {
	g.Grid.ClearAll()
	for i := range g.anims {
		g.anims[i] = cellAnim{}
	}
	g.spawned = 0
	for range startTiles {
		g.spawn(ctx)
	}
}

// spawn places a 2 (or rarely a 4) in a random empty cell. The tile starts at
// the centre of the board and springs into place while popping in.
func (g *Gameplay) spawn(ctx *Context) bool {
	g.empty = g.Grid.Empty(g.empty[:0])
	i, ok := core.Pick(ctx.RNG, g.empty)
	if !ok {
		ctx.Log.Printf("gameplay: board full")
		return false
	}
	value := 2
	if !ctx.RNG.Chance(0.9) {
		value = 4
	}

	c := g.Grid.Cell(i)
	c.Value = value
	l := g.Grid.Layout()
	extent := g.Grid.Extent()
	c.Position = l.Origin.Add(core.Vec2{X: extent / 2, Y: extent / 2}).Sub(c.Size.Scale(0.5))
	c.Velocity = core.Vec2{}

	pop := float32(ctx.Tuning.Pop.Seconds())
	g.anims[i] = cellAnim{
		phase: phaseMoving,
		pop:   gween.New(0, 1, pop, ease.OutBack),
	}
	g.spawned++
	return true
}

func (g *Gameplay) update(ctx *Context, dt time.Duration) {
	sec := dt.Seconds()
	for i := range g.anims {
		a := &g.anims[i]
		if a.phase != phaseMoving {
			continue
		}
		c := g.Grid.Cell(i)
		rest := g.Grid.RestAt(i)
		c.Position, c.Velocity = ctx.Tuning.Tile.Step2(c.Position, c.Velocity, rest, sec)

		popped := true
		if a.pop != nil {
			var s float32
			s, popped = a.pop.Update(float32(sec))
			a.scale = float64(s)
		}
		if popped {
			a.scale = 1
			a.pop = nil
		}
		if popped && anim.Settled2(c.Position, c.Velocity, rest, settleEps) {
			c.Position = rest
			c.Velocity = core.Vec2{}
			a.phase = phaseIdle
		}
	}
}

func (g *Gameplay) render(ctx *Context, r render.Renderer) {
	solid := func(pos, size core.Vec2, tint core.Color) {
		r.DrawSprite(render.Sprite{
			Texture:  render.SolidTexture,
			Shader:   render.SpriteShader,
			Position: pos,
			Size:     size,
			Tint:     tint,
		})
	}

	solid(core.Vec2{}, core.Vec2{X: ctx.Width, Y: ctx.Height}, backgroundColor)
	extent := g.Grid.Extent()
	solid(g.Grid.Layout().Origin, core.Vec2{X: extent, Y: extent}, panelColor)

	cells := g.Grid.Cells()
	for i := range cells {
		solid(g.Grid.RestAt(i), cells[i].Size, slotColor)
	}

	for i, c := range cells {
		if c.Empty() {
			continue
		}
		scale := 1.0
		if g.anims[i].phase == phaseMoving {
			scale = g.anims[i].scale
		}
		size := c.Size.Scale(scale)
		pos := c.Position.Add(c.Size.Sub(size).Scale(0.5))

		key := render.TileTexture(c.Value)
		tint := core.White
		if _, ok := ctx.Atlas.TextureSize(key); !ok {
			key = render.SolidTexture
			tint = render.TileColor(c.Value)
		}
		r.DrawSprite(render.Sprite{
			Texture:  key,
			Shader:   render.SpriteShader,
			Position: pos,
			Size:     size,
			Rotation: c.Rotation,
			Tint:     tint,
		})
	}
}

// springProbes lists every moving cell for the debug overlay.
func (g *Gameplay) springProbes(dst []core.SpringProbe) []core.SpringProbe {
	for i, a := range g.anims {
		if a.phase != phaseMoving {
			continue
		}
		c := g.Grid.Cell(i)
		dst = append(dst, core.SpringProbe{
			Position: c.Position,
			Velocity: c.Velocity,
			Target:   g.Grid.RestAt(i),
			Size:     c.Size,
		})
	}
	return dst
}

func (g *Gameplay) release() {
	g.Grid = core.Grid{}
	g.anims = nil
	g.empty = nil
}
