package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkarev/arpub/internal/service"
	"github.com/vkarev/arpub/models"
)

// settingsModel is the settings panel: a single text area holding the wallet
// credential in JWK form. Every edit is persisted immediately; no validation
// happens here, the key is only parsed at first use.
type settingsModel struct {
	ctx      context.Context
	settings service.SettingsService

	input  textarea.Model
	loaded bool
	saved  string
	errMsg string
}

func newSettingsModel(ctx context.Context, settings service.SettingsService) *settingsModel {
	input := textarea.New()
	input.Placeholder = "paste wallet private key (JWK JSON)"
	input.CharLimit = 0
	input.SetWidth(70)
	input.SetHeight(10)
	input.Focus()

	return &settingsModel{
		ctx:      ctx,
		settings: settings,
		input:    input,
	}
}

func (m *settingsModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.cmdLoad())
}

func (m *settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.input.SetValue(msg.settings.PrivateKey)
		m.loaded = true
		m.saved = m.input.Value()
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.errMsg = ""
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Persist on every edit, the way a host settings panel saves each
	// keystroke.
	if m.loaded && m.input.Value() != m.saved {
		m.saved = m.input.Value()
		return m, tea.Batch(cmd, m.cmdSave(m.saved))
	}

	return m, cmd
}

func (m *settingsModel) View() string {
	var b strings.Builder

	b.WriteString("Wallet private key:\n\n")
	b.WriteString(m.input.View())

	if m.errMsg != "" {
		b.WriteString("\n\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func (m *settingsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	settings := m.settings

	return func() tea.Msg {
		loaded, err := settings.Load(ctx)
		return settingsLoadedMsg{settings: loaded, err: err}
	}
}

func (m *settingsModel) cmdSave(key string) tea.Cmd {
	ctx := m.ctx
	settings := m.settings

	return func() tea.Msg {
		err := settings.Save(ctx, models.Settings{PrivateKey: key})
		return settingsSavedMsg{err: err}
	}
}
