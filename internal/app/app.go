//go:build ebiten

package app

import (
	"errors"
	"log"

	"twenty48/internal/assets"
	"twenty48/internal/core"
	"twenty48/internal/game"
	"twenty48/internal/input"
	"twenty48/internal/render"
	"twenty48/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts the game loop to the ebiten.Game interface.
type Game struct {
	loop     *game.Loop
	renderer *render.EbitenRenderer
	hud      *ui.HUD
	overlay  *ui.Overlay

	width, height int
	events        []input.Event
	keys          []ebiten.Key
}

// New constructs a Game around loop. debug shows the HUD and overlay.
func New(loop *game.Loop, renderer *render.EbitenRenderer, width, height int, debug bool) *Game {
	g := &Game{
		loop:     loop,
		renderer: renderer,
		hud:      ui.NewHUD(loop, hudWidth),
		overlay:  ui.NewOverlay(loop),
		width:    width,
		height:   height,
	}
	if debug {
		g.hud.Toggle()
		g.overlay.Toggle()
	}
	return g
}

// Update feeds this frame's input to the loop and lets it catch up.
func (g *Game) Update() error {
	if g.loop.Done() {
		return ebiten.Termination
	}
	g.events = g.poll(g.events[:0])
	g.loop.Advance(g.events)
	g.hud.Update(g.width)
	g.overlay.Update()
	return nil
}

// Draw renders the active state and the debug layers.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.loop.Render(g.renderer)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) poll(dst []input.Event) []input.Event {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ebiten.KeyEscape {
			dst = append(dst, input.Quit())
			continue
		}
		dst = append(dst, input.Press(mapKey(k)))
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k != ebiten.KeyEscape {
			dst = append(dst, input.Release(mapKey(k)))
		}
	}
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, input.Quit())
	}
	return dst
}

func mapKey(k ebiten.Key) input.Key {
	switch k {
	case ebiten.KeyEnter:
		return input.KeyEnter
	case ebiten.KeySpace:
		return input.KeySpace
	case ebiten.KeyR:
		return input.KeyR
	case ebiten.KeyArrowUp:
		return input.KeyUp
	case ebiten.KeyArrowDown:
		return input.KeyDown
	case ebiten.KeyArrowLeft:
		return input.KeyLeft
	case ebiten.KeyArrowRight:
		return input.KeyRight
	case ebiten.KeyF1:
		return input.KeyF1
	case ebiten.KeyF2:
		return input.KeyF2
	default:
		return input.KeyOther
	}
}

// Run loads the assets, opens the window and blocks until the player quits.
func Run(cfg *Config, music game.Music, logger *log.Logger) error {
	fsys, err := assets.Open(cfg.Assets)
	if err != nil {
		return err
	}
	textures, err := assets.LoadTextures(fsys, assets.DefaultManifest())
	if err != nil {
		return err
	}
	renderer, err := render.NewEbitenRenderer(textures, logger)
	if err != nil {
		return err
	}
	logger.Printf("loaded %d textures from %s", len(textures), cfg.Assets)

	ctx := &game.Context{
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
		Atlas:  renderer,
		Music:  music,
		Log:    logger,
		Tuning: game.DefaultTuning(),
		RNG:    core.NewRNG(cfg.Seed),
	}
	loop, err := game.NewLoop(ctx, core.NewSystemClock())
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(New(loop, renderer, cfg.Width, cfg.Height, cfg.Debug)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
