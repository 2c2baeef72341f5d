//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD is a translucent parameter panel drawn over the right edge of the
// window. F1 toggles it.
type HUD struct {
	source  Tunable
	panel   *controlPanel
	width   int
	visible bool

	img   *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a hidden HUD of the given width for source.
func NewHUD(source Tunable, width int) *HUD {
	h := &HUD{source: source, panel: newControlPanel(source, width), width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Visible reports whether the panel is shown.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update toggles visibility, refreshes values and applies clicks. screenW is
// the logical window width the panel is anchored to.
func (h *HUD) Update(screenW int) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.Toggle()
	}
	if !h.visible {
		return
	}
	h.panel.refresh(h.source.Parameters())
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	offset := screenW - h.width
	if mx < offset {
		return
	}
	h.panel.click(mx-offset, my)
}

// Draw paints the panel when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible() || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.img == nil || h.img.Bounds().Dy() != height {
		h.img = ebiten.NewImage(h.width, height)
	}
	h.img.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-h.width), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.img, "Tuning", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	for i := range h.panel.controls {
		state := &h.panel.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.img, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.img, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.panel.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.panel.canAdjust(state, 1))
	}

	y := h.panel.readoutsTop()
	for _, p := range h.panel.readouts {
		text.Draw(h.img, p.Label+": "+p.Value, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += readoutHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.img.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}
