package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/internal/service"
)

var ErrUserQuit = errors.New("вышел из программы")

// Exporter produces the HTML document for the active note.
type Exporter interface {
	Export(ctx context.Context) (string, error)
}

// Previewer receives the current export and serves it locally.
type Previewer interface {
	SetDocument(html string)
	URL() string
}

type TUI struct {
	services *service.ClientServices
	exporter Exporter
	preview  Previewer
}

func New(services *service.ClientServices, exporter Exporter, preview Previewer, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, exporter: exporter, preview: preview}, nil
}

// Run drives the whole session: the menu, the publish workflow and the
// settings panel. Returns ErrUserQuit when the user closed the program.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"publish":  newPublishModel(ctx, t.services, t.exporter, t.preview),
		"settings": newSettingsModel(ctx, t.services.SettingsService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
