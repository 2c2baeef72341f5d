// Package assets describes the files the game needs and validates an asset
// directory before anything is loaded from it.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"twenty48/internal/render"
)

var (
	// ErrAssetsDir reports a missing or unreadable asset directory.
	ErrAssetsDir = errors.New("assets: directory unavailable")
	// ErrMissingAsset reports required files absent from the asset directory.
	ErrMissingAsset = errors.New("assets: missing required asset")
)

// Music track names.
const (
	TrackIntro = "intro"
	TrackGame  = "game"
)

// Manifest maps texture keys and music tracks to file paths inside the asset
// directory. Textures are required; music is optional.
type Manifest struct {
	Textures map[string]string
	Music    map[string]string
}

// DefaultManifest lists the background, the intro prompt and one texture per
// tile value from 2 to 2048.
func DefaultManifest() Manifest {
	m := Manifest{
		Textures: map[string]string{
			"bg":    "bg-v1.png",
			"press": "press.png",
		},
		Music: map[string]string{
			TrackIntro: "intro.wav",
			TrackGame:  "game.wav",
		},
	}
	for v := 2; v <= 2048; v *= 2 {
		m.Textures[render.TileTexture(v)] = strconv.Itoa(v) + ".png"
	}
	return m
}

// TextureKeys returns the texture keys in sorted order.
func (m Manifest) TextureKeys() []string {
	keys := make([]string, 0, len(m.Textures))
	for k := range m.Textures {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Open returns the asset directory as a file system after checking it exists.
func Open(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetsDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrAssetsDir, dir)
	}
	return os.DirFS(dir), nil
}

// Check reports every required texture that fsys lacks.
func (m Manifest) Check(fsys fs.FS) error {
	var missing []string
	for _, key := range m.TextureKeys() {
		if !exists(fsys, m.Textures[key]) {
			missing = append(missing, m.Textures[key])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAsset, strings.Join(missing, ", "))
	}
	return nil
}

// AvailableMusic returns the subset of music tracks present in fsys.
func (m Manifest) AvailableMusic(fsys fs.FS) map[string]string {
	out := make(map[string]string, len(m.Music))
	for track, path := range m.Music {
		if exists(fsys, path) {
			out[track] = path
		}
	}
	return out
}

func exists(fsys fs.FS, path string) bool {
	info, err := fs.Stat(fsys, path)
	return err == nil && !info.IsDir()
}
