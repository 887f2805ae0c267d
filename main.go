package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/bubble-background/internal/config"
	"github.com/iburimskiy/bubble-background/internal/game"
	"github.com/iburimskiy/bubble-background/internal/logger"
	"github.com/iburimskiy/bubble-background/internal/view"
)

func main() {
	log, err := logger.New(logger.Config{
		Environment: os.Getenv("ENVIRONMENT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		AppName:     "bubbles",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(log); err != nil {
		log.Error("bubbles stopped", zap.Error(err))
		if dlgErr := zenity.Error(err.Error(), zenity.Title("Bubbles"), zenity.ErrorIcon); dlgErr != nil {
			log.Warn("failed to show error dialog", zap.Error(dlgErr))
		}
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(log *zap.Logger) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	v, err := view.New(log)
	if err != nil {
		return fmt.Errorf("create bubble view: %w", err)
	}

	g := game.New(log, v)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	log.Info("bubbles exited")
	return nil
}
