// Package view provides the bubble background as a transparent layer that an
// ebiten.Game draws over its own content.
package view

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/iburimskiy/bubble-background/internal/bubble"
	"github.com/iburimskiy/bubble-background/internal/config"
	"github.com/iburimskiy/bubble-background/internal/render"
)

// tick is the simulated time per Update call.
const tick = float32(1.0 / ebiten.DefaultTPS)

// View advances the bubble field on Update and renders it on Draw.
// It never clears its target.
type View struct {
	log      *zap.Logger
	field    *bubble.Field
	pipeline *render.Pipeline

	fade    *gween.Tween
	opacity float32
	ticks   uint64
}

// New builds the field and the GPU pipeline. An error means the view cannot
// render at all.
func New(log *zap.Logger) (*View, error) {
	seed := uint64(time.Now().UnixNano())
	field := bubble.NewField(rand.New(rand.NewPCG(seed, seed>>1|1)))

	pipeline, err := render.NewPipeline(field.Len())
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}

	v := newView(log, field, pipeline)
	log.Info("bubble view ready",
		zap.Int("bubbles", field.Len()),
		zap.Uint64("seed", seed),
	)
	return v, nil
}

func newView(log *zap.Logger, field *bubble.Field, pipeline *render.Pipeline) *View {
	return &View{
		log:      log,
		field:    field,
		pipeline: pipeline,
		fade:     gween.New(0, 1, config.FadeInSeconds, ease.OutQuad),
	}
}

// Update advances every bubble by one step.
func (v *View) Update() error {
	v.field.Update()
	v.ticks++

	if v.fade != nil {
		current, finished := v.fade.Update(tick)
		v.opacity = current
		if finished {
			v.opacity = 1
			v.fade = nil
			v.log.Debug("bubble view fade-in complete", zap.Uint64("ticks", v.ticks))
		}
	}
	return nil
}

// Draw copies the whole field into the vertex buffer and draws it over dst.
func (v *View) Draw(dst *ebiten.Image) {
	bubbles := v.field.Bubbles()
	v.pipeline.Upload(bubbles[:], render.Viewport(dst.Bounds()), v.opacity)
	v.pipeline.Draw(dst)
}

// Len reports the number of bubbles drawn.
func (v *View) Len() int {
	return v.field.Len()
}

// Opacity reports the current fade-in factor in [0,1].
func (v *View) Opacity() float32 {
	return v.opacity
}
