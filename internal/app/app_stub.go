//go:build !ebiten

package app

import (
	"fmt"
	"log"

	"twenty48/internal/game"
)

// Run reports that the window backend was not compiled in.
func Run(*Config, game.Music, *log.Logger) error {
	return fmt.Errorf("%w: %s requires building with -tags ebiten", ErrBackend, BackendEbiten)
}
