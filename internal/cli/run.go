package cli

import (
	"context"
	"fmt"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ink-intro/internal/config"
	"github.com/iburimskiy/ink-intro/internal/game"
	"github.com/iburimskiy/ink-intro/internal/sound"
)

type runOptions struct {
	seed       int64
	sound      bool
	fullscreen bool
}

func runWindow(ctx context.Context, opts runOptions) error {
	logger := loggerFromContext(ctx)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.fullscreen)

	if opts.sound {
		if err := sound.Play(beep.SampleRate(config.SampleRate), opts.seed, logger); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
	}

	g := game.New(logger, game.Options{Context: ctx, Seed: opts.seed})
	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{ScreenTransparent: true})
	if err != nil {
		logger.Error("window failed", "err", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
