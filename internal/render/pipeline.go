// Package render draws the bubble field as point sprites in a single batched
// triangle draw.
package render

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/bubble-background/internal/bubble"
)

// Pipeline owns the shader and the vertex/index buffers for n sprites.
// Everything except vertex contents is fixed at construction.
type Pipeline struct {
	shader   *ebiten.Shader
	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesShaderOptions
}

// NewPipeline compiles the bubble shader and allocates buffers for n sprites.
func NewPipeline(n int) (*Pipeline, error) {
	if n <= 0 || 4*n > 1<<16 {
		return nil, fmt.Errorf("render: sprite count %d out of range", n)
	}
	s, err := ebiten.NewShader([]byte(bubbleShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("render: compile bubble shader: %w", err)
	}
	return newPipeline(s, n), nil
}

func newPipeline(s *ebiten.Shader, n int) *Pipeline {
	p := &Pipeline{
		shader:   s,
		vertices: make([]ebiten.Vertex, 4*n),
		indices:  make([]uint16, 0, 6*n),
	}
	for i := 0; i < n; i++ {
		base := uint16(4 * i)
		// Two triangles: TL-TR-BL, TR-BR-BL
		p.indices = append(p.indices,
			base+0, base+1, base+2,
			base+1, base+3, base+2,
		)
	}
	p.op.Blend = ebiten.BlendSourceOver
	return p
}

// Capacity returns the number of sprites the pipeline was built for.
func (p *Pipeline) Capacity() int {
	return len(p.vertices) / 4
}

// Viewport returns the transform from normalized device coordinates (y up)
// to pixel coordinates inside r (y down).
func Viewport(r image.Rectangle) mgl32.Mat3 {
	hw, hh := float32(r.Dx())/2, float32(r.Dy())/2
	return mgl32.Translate2D(float32(r.Min.X)+hw, float32(r.Min.Y)+hh).Mul3(mgl32.Scale2D(hw, -hh))
}

// corners in sprite-local space, ordered TL, TR, BL, BR.
var corners = [4]mgl32.Vec2{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Upload rewrites the whole vertex buffer from bubbles. Sprites past
// len(bubbles) are collapsed so they cover no pixels. opacity scales every
// bubble's alpha.
func (p *Pipeline) Upload(bubbles []bubble.Bubble, viewport mgl32.Mat3, opacity float32) {
	n := p.Capacity()
	for i := 0; i < n; i++ {
		quad := p.vertices[4*i : 4*i+4]
		if i >= len(bubbles) {
			clear(quad)
			continue
		}
		b := &bubbles[i]
		center := viewport.Mul3x1(b.Position.Vec3(1))
		half := b.Size / 2
		for c, corner := range corners {
			quad[c] = ebiten.Vertex{
				DstX:   center.X() + corner.X()*half,
				DstY:   center.Y() + corner.Y()*half,
				SrcX:   corner.X(),
				SrcY:   corner.Y(),
				ColorR: b.Color.X(),
				ColorG: b.Color.Y(),
				ColorB: b.Color.Z(),
				ColorA: b.Color.W() * opacity,
			}
		}
	}
}

// Draw issues one draw call covering every sprite.
func (p *Pipeline) Draw(dst *ebiten.Image) {
	dst.DrawTrianglesShader(p.vertices, p.indices, p.shader, &p.op)
}
