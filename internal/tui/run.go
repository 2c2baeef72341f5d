package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"twenty48/internal/core"
	"twenty48/internal/game"

	"github.com/gdamore/tcell/v2"
)

// Options configures a terminal session.
type Options struct {
	Width, Height float64 // logical window size the game lays itself out in
	Seed          int64
	FrameRate     int
	Music         game.Music
	Log           *log.Logger
}

// RunTerminal opens the controlling terminal and plays on it.
func RunTerminal(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	defer screen.Fini()
	return Run(ctx, screen, opts)
}

// Run plays on screen until the player quits or ctx is cancelled. The caller
// owns screen and must have initialised it.
func Run(ctx context.Context, screen tcell.Screen, opts Options) error {
	gctx := &game.Context{
		Width:  opts.Width,
		Height: opts.Height,
		Atlas:  Atlas(opts.Width, opts.Height),
		Music:  opts.Music,
		Log:    opts.Log,
		Tuning: game.DefaultTuning(),
		RNG:    core.NewRNG(opts.Seed),
	}
	loop, err := game.NewLoop(gctx, core.NewSystemClock())
	if err != nil {
		return err
	}

	fps := opts.FrameRate
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	in := NewInput(screen)
	defer in.Close()
	r := NewRenderer(screen, opts.Width, opts.Height)

	screen.HideCursor()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Begin()
			running := loop.Frame(in, r)
			r.End()
			if !running {
				gctx.Log.Printf("tui: quit after %d frames", loop.Stats().Frames)
				return nil
			}
		}
	}
}
