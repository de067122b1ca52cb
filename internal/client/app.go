package client

import (
	"context"
	"errors"

	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/internal/preview"
	"github.com/vkarev/arpub/internal/service"
	"github.com/vkarev/arpub/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	preview  *preview.Server
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, preview *preview.Server, logger *logger.Logger) (*App, error) {
	return &App{
		services: services,
		tui:      ui,
		preview:  preview,
		logger:   logger,
	}, nil
}

// Run starts the preview server in the background and blocks in the
// terminal UI until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	go a.preview.Run()
	defer a.preview.Shutdown()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("session closed by user")
			return nil
		}
		return err
	}

	return nil
}
