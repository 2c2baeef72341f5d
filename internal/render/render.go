// Package render is the draw contract between game states and a backend.
//
// States never touch a GPU or terminal directly: they describe sprites and a
// backend turns each one into whatever its surface understands.
package render

import (
	"errors"

	"twenty48/internal/core"
	"twenty48/internal/xform"
)

// ErrShader reports that a shader could not be compiled or bound.
var ErrShader = errors.New("render: shader unavailable")

// ShaderID names a shader program. Backends resolve it; states pass it through.
type ShaderID string

// SpriteShader is the textured, tinted quad program every sprite uses.
const SpriteShader ShaderID = "sprite"

// SolidTexture is the reserved key of a 1x1 white texture. Tinting it draws a
// filled rectangle.
const SolidTexture = "solid"

// Sprite is one textured quad.
type Sprite struct {
	Texture  string
	Shader   ShaderID
	Position core.Vec2 // top-left before rotation
	Size     core.Vec2
	Rotation float64 // radians about the centre
	Tint     core.Color
}

// Model returns the transform mapping the unit quad onto the sprite.
func (s Sprite) Model() xform.Mat4 {
	return xform.Model(s.Position, s.Size, s.Rotation)
}

// Renderer draws sprites onto the current frame.
type Renderer interface {
	DrawSprite(s Sprite)
}

// Atlas answers texture sizes by key.
type Atlas interface {
	TextureSize(key string) (core.Vec2, bool)
}

// StaticAtlas is an Atlas backed by a fixed table of sizes.
type StaticAtlas map[string]core.Vec2

// TextureSize implements Atlas. SolidTexture is always present.
func (a StaticAtlas) TextureSize(key string) (core.Vec2, bool) {
	if key == SolidTexture {
		return core.Vec2{X: 1, Y: 1}, true
	}
	sz, ok := a[key]
	return sz, ok
}

// Recorder is a Renderer that keeps every sprite it is given.
type Recorder struct {
	Sprites []Sprite
}

// DrawSprite implements Renderer.
func (r *Recorder) DrawSprite(s Sprite) { r.Sprites = append(r.Sprites, s) }

// Reset forgets recorded sprites.
func (r *Recorder) Reset() { r.Sprites = r.Sprites[:0] }

// Textures lists the texture keys in draw order.
func (r *Recorder) Textures() []string {
	keys := make([]string, len(r.Sprites))
	for i, s := range r.Sprites {
		keys[i] = s.Texture
	}
	return keys
}
