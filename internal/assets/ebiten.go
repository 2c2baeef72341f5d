//go:build ebiten

package assets

import (
	"fmt"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadTextures decodes every texture of m from fsys.
func LoadTextures(fsys fs.FS, m Manifest) (map[string]*ebiten.Image, error) {
	if err := m.Check(fsys); err != nil {
		return nil, err
	}
	out := make(map[string]*ebiten.Image, len(m.Textures))
	for _, key := range m.TextureKeys() {
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, m.Textures[key])
		if err != nil {
			return nil, fmt.Errorf("assets: load %s: %w", m.Textures[key], err)
		}
		out[key] = img
	}
	return out, nil
}
