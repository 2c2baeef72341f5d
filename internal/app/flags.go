package app

import (
	"errors"
	"flag"
	"fmt"
)

// ErrBackend reports an unknown or unavailable backend.
var ErrBackend = errors.New("app: backend unavailable")

// Backends.
const (
	BackendEbiten = "ebiten"
	BackendTUI    = "tui"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Assets  string
	Backend string
	Width   int
	Height  int
	Title   string
	Seed    int64
	Music   bool
	Debug   bool
	LogFile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Assets:  "assets",
		Backend: BackendEbiten,
		Width:   480,
		Height:  640,
		Title:   "2048 - CS222 Edition",
		Music:   true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Assets, "assets", c.Assets, "asset directory")
	fs.StringVar(&c.Backend, "backend", c.Backend, "backend to run: ebiten or tui")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for tile spawns (0 picks one from the clock)")
	fs.BoolVar(&c.Music, "music", c.Music, "play background music")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "start with the tuning HUD and spring overlay shown")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append logs to this file instead of stderr")
}

// Validate rejects configurations no backend can run.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendEbiten, BackendTUI:
	default:
		return fmt.Errorf("%w: %q", ErrBackend, c.Backend)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("app: invalid window size %dx%d", c.Width, c.Height)
	}
	return nil
}
