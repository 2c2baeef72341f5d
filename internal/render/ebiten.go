//go:build ebiten

package render

import (
	"fmt"
	"image/color"
	"log"

	"twenty48/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenRenderer draws sprites onto an ebiten image with SpriteShader.
type EbitenRenderer struct {
	target   *ebiten.Image
	textures map[string]*ebiten.Image
	shaders  map[ShaderID]*ebiten.Shader
	logger   *log.Logger
	missing  map[string]bool

	op   ebiten.DrawRectShaderOptions
	tint []float32
}

// NewEbitenRenderer compiles the sprite shader and takes ownership of the
// given textures. SolidTexture is created if absent.
func NewEbitenRenderer(textures map[string]*ebiten.Image, logger *log.Logger) (*EbitenRenderer, error) {
	sprite, err := NewSpriteShader()
	if err != nil {
		return nil, err
	}
	if textures == nil {
		textures = make(map[string]*ebiten.Image)
	}
	if _, ok := textures[SolidTexture]; !ok {
		px := ebiten.NewImage(1, 1)
		px.Fill(color.White)
		textures[SolidTexture] = px
	}
	r := &EbitenRenderer{
		textures: textures,
		shaders:  map[ShaderID]*ebiten.Shader{SpriteShader: sprite},
		logger:   logger,
		missing:  make(map[string]bool),
		tint:     make([]float32, 4),
	}
	r.op.Uniforms = map[string]any{"Tint": r.tint}
	return r, nil
}

// SetTarget selects the image subsequent sprites are drawn onto.
func (r *EbitenRenderer) SetTarget(img *ebiten.Image) { r.target = img }

// TextureSize implements Atlas.
func (r *EbitenRenderer) TextureSize(key string) (core.Vec2, bool) {
	img, ok := r.textures[key]
	if !ok {
		return core.Vec2{}, false
	}
	b := img.Bounds()
	return core.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}, true
}

// DrawSprite implements Renderer. Unknown textures and shaders are logged
// once and skipped.
func (r *EbitenRenderer) DrawSprite(s Sprite) {
	if r.target == nil {
		return
	}
	img, ok := r.textures[s.Texture]
	if !ok {
		r.warn("texture " + s.Texture)
		return
	}
	id := s.Shader
	if id == "" {
		id = SpriteShader
	}
	shader, ok := r.shaders[id]
	if !ok {
		r.warn(fmt.Sprintf("shader %s", id))
		return
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var model ebiten.GeoM
	aff := s.Model().Affine()
	model.SetElement(0, 0, aff[0])
	model.SetElement(0, 1, aff[1])
	model.SetElement(1, 0, aff[2])
	model.SetElement(1, 1, aff[3])
	model.SetElement(0, 2, aff[4])
	model.SetElement(1, 2, aff[5])

	r.op.GeoM.Reset()
	r.op.GeoM.Scale(1/float64(w), 1/float64(h))
	r.op.GeoM.Concat(model)

	a := float32(s.Tint.A)
	r.tint[0] = float32(s.Tint.R) * a
	r.tint[1] = float32(s.Tint.G) * a
	r.tint[2] = float32(s.Tint.B) * a
	r.tint[3] = a

	r.op.Images[0] = img
	r.target.DrawRectShader(w, h, shader, &r.op)
}

func (r *EbitenRenderer) warn(what string) {
	if r.missing[what] {
		return
	}
	r.missing[what] = true
	if r.logger != nil {
		r.logger.Printf("render: skipping sprite with unknown %s", what)
	}
}
