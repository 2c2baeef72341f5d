// Package tui runs the game in a terminal. Sprites are projected from window
// pixels onto character cells and drawn as colored blocks.
package tui

import (
	"math"
	"strconv"

	"twenty48/internal/core"
	"twenty48/internal/render"
	"twenty48/internal/xform"

	"github.com/gdamore/tcell/v2"
)

const pressText = "press any key"

var (
	introBackground = core.RGB8(250, 248, 239)
	promptColor     = core.RGB8(119, 110, 101)
)

// Atlas returns the texture table the terminal renderer understands, sized
// for a width x height window.
func Atlas(width, height float64) render.StaticAtlas {
	a := render.StaticAtlas{
		"bg":    {X: width, Y: height},
		"press": {X: float64(len(pressText)) * 10, Y: 40},
	}
	for v := 2; v <= 2048; v *= 2 {
		a[render.TileTexture(v)] = core.Vec2{X: 80, Y: 80}
	}
	return a
}

// Renderer draws sprites onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	proj   xform.Mat4
	cols   int
	rows   int
}

// NewRenderer maps a width x height logical window onto screen.
func NewRenderer(screen tcell.Screen, width, height float64) *Renderer {
	return &Renderer{
		screen: screen,
		proj:   xform.Ortho(0, width, height, 0, -1, 1),
	}
}

// Begin clears the screen for a new frame.
func (r *Renderer) Begin() {
	r.cols, r.rows = r.screen.Size()
	r.screen.Clear()
}

// End presents the frame.
func (r *Renderer) End() { r.screen.Show() }

// DrawSprite implements render.Renderer.
func (r *Renderer) DrawSprite(s render.Sprite) {
	x0, y0, x1, y1, ok := r.bounds(s)
	if !ok {
		return
	}

	switch s.Texture {
	case "bg":
		r.fill(x0, y0, x1, y1, modulate(introBackground, s.Tint))
	case "press":
		if s.Tint.A < 0.5 {
			return
		}
		style := tcell.StyleDefault.Foreground(toColor(promptColor)).Background(toColor(introBackground))
		r.label(x0, y0, x1, y1, pressText, style)
	case render.SolidTexture:
		if s.Tint.A <= 0 {
			return
		}
		r.fill(x0, y0, x1, y1, s.Tint)
	default:
		value, err := strconv.Atoi(s.Texture)
		if err != nil {
			r.fill(x0, y0, x1, y1, s.Tint)
			return
		}
		bg := modulate(render.TileColor(value), s.Tint)
		r.fill(x0, y0, x1, y1, bg)
		style := tcell.StyleDefault.Foreground(toColor(render.TextColor(value))).Background(toColor(bg)).Bold(true)
		r.label(x0, y0, x1, y1, s.Texture, style)
	}
}

// bounds projects the sprite's corners through Ortho and returns the
// covered cell rectangle [x0,x1)x[y0,y1), clipped to the screen.
func (r *Renderer) bounds(s render.Sprite) (x0, y0, x1, y1 int, ok bool) {
	if s.Size.X <= 0 || s.Size.Y <= 0 || r.cols <= 0 || r.rows <= 0 {
		return 0, 0, 0, 0, false
	}
	m := xform.Mul(r.proj, s.Model())
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [...]core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
		ndc := m.Apply(c)
		cx := (ndc.X + 1) / 2 * float64(r.cols)
		cy := (1 - ndc.Y) / 2 * float64(r.rows)
		minX, maxX = math.Min(minX, cx), math.Max(maxX, cx)
		minY, maxY = math.Min(minY, cy), math.Max(maxY, cy)
	}
	x0, y0 = int(math.Round(minX)), int(math.Round(minY))
	x1, y1 = int(math.Round(maxX)), int(math.Round(maxY))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, r.cols), min(y1, r.rows)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

func (r *Renderer) fill(x0, y0, x1, y1 int, c core.Color) {
	style := tcell.StyleDefault.Background(toColor(c))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// label centres text in the rectangle, truncating it to the width.
func (r *Renderer) label(x0, y0, x1, y1 int, text string, style tcell.Style) {
	runes := []rune(text)
	if w := x1 - x0; len(runes) > w {
		runes = runes[:w]
	}
	x := x0 + (x1-x0-len(runes))/2
	y := y0 + (y1-y0)/2
	for i, ch := range runes {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// modulate multiplies c by tint per channel. Terminals cannot blend, so the
// resulting alpha is only used for visibility checks.
func modulate(c, tint core.Color) core.Color {
	return core.Color{R: c.R * tint.R, G: c.G * tint.G, B: c.B * tint.B, A: c.A * tint.A}
}

func toColor(c core.Color) tcell.Color {
	ch := func(v float64) int32 {
		return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}
