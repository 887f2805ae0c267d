package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/iburimskiy/bubble-background/internal/config"
)

// Layer is a transparent overlay driven by the host's frame callbacks.
type Layer interface {
	Update() error
	Draw(dst *ebiten.Image)
	Len() int
}

// Game hosts a Layer over an animated gradient.
type Game struct {
	log   *zap.Logger
	layer Layer

	time       float64
	colorPhase float64
	debug      bool
}

func New(log *zap.Logger, layer Layer) *Game {
	return &Game{
		log:   log,
		layer: layer,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
		g.log.Debug("debug overlay toggled", zap.Bool("enabled", g.debug))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return g.step()
}

func (g *Game) step() error {
	g.time += 1.0 / ebiten.DefaultTPS
	g.colorPhase += config.ColorShiftSpeed
	if g.colorPhase >= 1 {
		g.colorPhase -= 1
	}
	return g.layer.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.layer.Draw(screen)

	if g.debug {
		status := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f  Bubbles: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.layer.Len())
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	bandHeight := float32(config.WindowHeight) / config.BackgroundBands
	for i := 0; i < config.BackgroundBands; i++ {
		ratio := float64(i) / float64(config.BackgroundBands-1)
		y := float32(i) * bandHeight
		vector.DrawFilledRect(screen, 0, y, config.WindowWidth, bandHeight+1,
			backgroundColor(ratio, g.time, g.colorPhase), false)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
