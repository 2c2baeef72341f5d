package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"twenty48/internal/app"
	"twenty48/internal/assets"
	"twenty48/internal/audio"
	"twenty48/internal/game"
	"twenty48/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("twenty48: %v", err)
	}
}

func run(cfg *app.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Printf("backend %s, %dx%d, seed %d", cfg.Backend, cfg.Width, cfg.Height, cfg.Seed)

	var music game.Music
	if cfg.Music {
		jb, err := openMusic(cfg, logger)
		if err != nil {
			return err
		}
		if jb != nil {
			defer jb.Close()
			music = jb
		}
	}

	switch cfg.Backend {
	case app.BackendTUI:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return tui.RunTerminal(ctx, tui.Options{
			Width:  float64(cfg.Width),
			Height: float64(cfg.Height),
			Seed:   cfg.Seed,
			Music:  music,
			Log:    logger,
		})
	default:
		return app.Run(cfg, music, logger)
	}
}

// newLogger writes to -log when given. The terminal backend owns the screen,
// so without -log its output is discarded.
func newLogger(cfg *app.Config) (*log.Logger, func(), error) {
	flags := log.LstdFlags | log.Lmsgprefix
	if cfg.Debug {
		flags |= log.Lmicroseconds
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		return log.New(f, "twenty48: ", flags), func() { f.Close() }, nil
	}
	var w io.Writer = os.Stderr
	if cfg.Backend == app.BackendTUI {
		w = io.Discard
	}
	return log.New(w, "twenty48: ", flags), func() {}, nil
}

// openMusic returns nil without error when the asset directory has no tracks.
func openMusic(cfg *app.Config, logger *log.Logger) (*audio.Jukebox, error) {
	fsys, err := assets.Open(cfg.Assets)
	if err != nil {
		if cfg.Backend == app.BackendTUI {
			logger.Printf("music disabled: %v", err)
			return nil, nil
		}
		return nil, err
	}
	tracks := assets.DefaultManifest().AvailableMusic(fsys)
	if len(tracks) == 0 {
		logger.Printf("music disabled: no tracks in %s", cfg.Assets)
		return nil, nil
	}
	return audio.Open(fsys, tracks, logger)
}
