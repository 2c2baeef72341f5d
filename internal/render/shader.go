//go:build ebiten

package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// spriteShaderSrc samples the bound texture and multiplies it by the
// per-draw color scale. Ebitengine hands both over premultiplied.
const spriteShaderSrc = `//kage:unit pixels
package main

var Tint vec4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	return imageSrc0At(src) * Tint * color
}
`

// SpriteShaderSource returns the Kage source of SpriteShader.
func SpriteShaderSource() []byte { return []byte(spriteShaderSrc) }

// NewSpriteShader compiles SpriteShader.
func NewSpriteShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(SpriteShaderSource())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrShader, SpriteShader, err)
	}
	return s, nil
}
