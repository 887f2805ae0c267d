// Package bubble holds the state of the drifting bubble field.
package bubble

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/bubble-background/internal/config"
)

// Count is the fixed number of bubbles in a field.
const Count = config.BubbleCount

// Bubble is a single drifting circle. Only Position changes after creation.
type Bubble struct {
	Position mgl32.Vec2 // normalized device coordinates
	Size     float32    // point size in pixels
	Color    mgl32.Vec4 // straight (non-premultiplied) RGBA
	Speed    float32
}

// Range is an inclusive interval sampled uniformly.
type Range struct {
	Min, Max float32
}

func (r Range) sample(rng *rand.Rand) float32 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float32()*(r.Max-r.Min)
}

var (
	positionRange = Range{config.PositionMin, config.PositionMax}
	sizeRange     = Range{config.SizeMin, config.SizeMax}
	channelRange  = Range{0, 1}
	alphaRange    = Range{config.AlphaMin, config.AlphaMax}
	speedRange    = Range{config.SpeedMin, config.SpeedMax}
)

// Field is a fixed-size set of independent bubbles.
type Field struct {
	bubbles [Count]Bubble
	rng     *rand.Rand
}

// NewField creates Count bubbles with randomized attributes drawn from rng.
func NewField(rng *rand.Rand) *Field {
	f := &Field{rng: rng}
	for i := range f.bubbles {
		f.bubbles[i] = Bubble{
			Position: mgl32.Vec2{positionRange.sample(rng), positionRange.sample(rng)},
			Size:     sizeRange.sample(rng),
			Color: mgl32.Vec4{
				channelRange.sample(rng),
				channelRange.sample(rng),
				channelRange.sample(rng),
				alphaRange.sample(rng),
			},
			Speed: speedRange.sample(rng),
		}
	}
	return f
}

// Update advances every bubble by one fixed step. A bubble that moves past
// WrapTop restarts at WrapBottom with a new horizontal position.
func (f *Field) Update() {
	for i := range f.bubbles {
		b := &f.bubbles[i]
		b.Position[1] += b.Speed * config.Step

		if b.Position[1] > config.WrapTop {
			b.Position[1] = config.WrapBottom
			b.Position[0] = positionRange.sample(f.rng)
		}
	}
}

// Bubbles returns a copy of the current field.
func (f *Field) Bubbles() [Count]Bubble {
	return f.bubbles
}

// Len reports the number of bubbles, which never changes.
func (f *Field) Len() int {
	return len(f.bubbles)
}
