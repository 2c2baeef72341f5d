//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws spring debugging visuals over the board: each animating
// cell's resting slot, its current centre and its velocity. F2 toggles it.
type Overlay struct {
	source  ProbeSource
	visible bool
	marks   []probeMark
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay reading from source.
func NewOverlay(source ProbeSource) *Overlay {
	o := &Overlay{source: source}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		o.Toggle()
	}
}

// Draw renders the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	o.marks = probeMarks(o.marks[:0], o.source.SpringProbes())
	slot := color.NRGBA{R: 255, G: 255, B: 255, A: 140}
	for _, m := range o.marks {
		x0, y0 := m.target.X, m.target.Y
		x1, y1 := x0+m.size.X, y0+m.size.Y
		o.drawLine(screen, x0, y0, x1, y0, 1, slot)
		o.drawLine(screen, x1, y0, x1, y1, 1, slot)
		o.drawLine(screen, x1, y1, x0, y1, 1, slot)
		o.drawLine(screen, x0, y1, x0, y0, 1, slot)

		col := heatColor(m.heat)
		o.drawLine(screen, m.centre.X, m.centre.Y, m.tip.X, m.tip.Y, 2, col)
		o.drawPoint(screen, m.centre.X, m.centre.Y, 5, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.Color) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.Color) {
	if thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
