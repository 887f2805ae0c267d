package bubble

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/bubble-background/internal/config"
)

func newTestField(seed uint64) *Field {
	return NewField(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestNewFieldCount(t *testing.T) {
	f := newTestField(1)
	assert.Equal(t, 100, f.Len())
	assert.Len(t, f.Bubbles(), 100)
}

func TestNewFieldAttributeRanges(t *testing.T) {
	f := newTestField(2)
	for i, b := range f.Bubbles() {
		assert.GreaterOrEqual(t, b.Position.X(), float32(-1), "bubble %d x", i)
		assert.LessOrEqual(t, b.Position.X(), float32(1), "bubble %d x", i)
		assert.GreaterOrEqual(t, b.Position.Y(), float32(-1), "bubble %d y", i)
		assert.LessOrEqual(t, b.Position.Y(), float32(1), "bubble %d y", i)

		assert.GreaterOrEqual(t, b.Size, float32(10), "bubble %d size", i)
		assert.LessOrEqual(t, b.Size, float32(30), "bubble %d size", i)

		for c := 0; c < 3; c++ {
			assert.GreaterOrEqual(t, b.Color[c], float32(0), "bubble %d channel %d", i, c)
			assert.LessOrEqual(t, b.Color[c], float32(1), "bubble %d channel %d", i, c)
		}
		assert.GreaterOrEqual(t, b.Color.W(), float32(0.3), "bubble %d alpha", i)
		assert.LessOrEqual(t, b.Color.W(), float32(0.8), "bubble %d alpha", i)

		assert.GreaterOrEqual(t, b.Speed, float32(0.2), "bubble %d speed", i)
		assert.LessOrEqual(t, b.Speed, float32(1.0), "bubble %d speed", i)
	}
}

func TestUpdateLinearDrift(t *testing.T) {
	f := newTestField(3)
	for i := range f.bubbles {
		f.bubbles[i].Position[1] = -1
	}
	start := f.Bubbles()

	// From y = -1 no bubble can reach the top in 10 steps.
	const steps = 10
	for n := 0; n < steps; n++ {
		f.Update()
	}

	for i, b := range f.Bubbles() {
		want := start[i].Position.Y() + steps*start[i].Speed*config.Step
		assert.InDelta(t, want, b.Position.Y(), 1e-5, "bubble %d", i)
		assert.Equal(t, start[i].Position.X(), b.Position.X(), "bubble %d x must not move", i)
	}
}

func TestUpdateWrapsPastTop(t *testing.T) {
	f := newTestField(4)
	f.bubbles[0].Position = mgl32.Vec2{0.25, 1.21}
	f.bubbles[0].Speed = 0.5

	f.Update()

	b := f.Bubbles()[0]
	assert.Equal(t, float32(config.WrapBottom), b.Position.Y())
	assert.GreaterOrEqual(t, b.Position.X(), float32(-1))
	assert.LessOrEqual(t, b.Position.X(), float32(1))
}

func TestUpdateDoesNotWrapAtThreshold(t *testing.T) {
	f := newTestField(5)
	f.bubbles[0].Position = mgl32.Vec2{0.5, config.WrapTop}
	f.bubbles[0].Speed = 0

	f.Update()

	b := f.Bubbles()[0]
	assert.Equal(t, float32(config.WrapTop), b.Position.Y())
	assert.Equal(t, float32(0.5), b.Position.X())
}

func TestUpdateReachesThresholdWithoutWrap(t *testing.T) {
	f := newTestField(6)
	f.bubbles[0].Position = mgl32.Vec2{0, 1.15}
	f.bubbles[0].Speed = 0.5

	f.Update()

	b := f.Bubbles()[0]
	assert.InDelta(t, 1.155, b.Position.Y(), 1e-6)
	assert.Equal(t, float32(0), b.Position.X())
}

func TestUpdateEveryBubbleEventuallyWraps(t *testing.T) {
	f := newTestField(7)

	// 2.4 units of travel at the slowest speed takes 1200 steps.
	for n := 0; n < 1300; n++ {
		f.Update()
		for i, b := range f.Bubbles() {
			require.LessOrEqual(t, b.Position.Y(), float32(config.WrapTop), "step %d bubble %d", n, i)
			require.GreaterOrEqual(t, b.Position.Y(), float32(config.WrapBottom), "step %d bubble %d", n, i)
		}
	}
}

func TestUpdateKeepsImmutableFields(t *testing.T) {
	f := newTestField(8)
	before := f.Bubbles()

	for n := 0; n < 2000; n++ {
		f.Update()
	}

	after := f.Bubbles()
	require.Equal(t, f.Len(), len(after))
	for i := range after {
		assert.Equal(t, before[i].Size, after[i].Size, "bubble %d size", i)
		assert.Equal(t, before[i].Color, after[i].Color, "bubble %d color", i)
		assert.Equal(t, before[i].Speed, after[i].Speed, "bubble %d speed", i)
	}
}

func TestBubblesReturnsCopy(t *testing.T) {
	f := newTestField(9)
	snap := f.Bubbles()
	snap[0].Position = mgl32.Vec2{42, 42}

	assert.NotEqual(t, mgl32.Vec2{42, 42}, f.Bubbles()[0].Position)
}

func TestRangeSampleDegenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	assert.Equal(t, float32(0.5), Range{0.5, 0.5}.sample(rng))
}
