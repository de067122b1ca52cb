package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkarev/arpub/internal/service"
	"github.com/vkarev/arpub/internal/vault"
	"github.com/vkarev/arpub/models"
)

type publishState int

const (
	// stateExporting covers export plus the balance/quote fetch.
	stateExporting publishState = iota
	stateConfirming
	stateUploading
	stateDone
	stateNotice
)

// publishModel drives the upload workflow: export the active note, show the
// wallet balance and the cost estimate, and on confirmation sign and submit
// the document. A publish failure shows a notice and re-enables the upload
// button; it never resubmits on its own.
type publishModel struct {
	ctx      context.Context
	services *service.ClientServices
	exporter Exporter
	preview  Previewer

	state   publishState
	doc     string
	address string
	balance string
	quote   models.PriceQuote
	result  models.PublishResult
	notice  string
	status  string
}

func newPublishModel(ctx context.Context, services *service.ClientServices, exporter Exporter, preview Previewer) *publishModel {
	return &publishModel{
		ctx:      ctx,
		services: services,
		exporter: exporter,
		preview:  preview,
	}
}

// Init implements [tea.Model]. Every visit re-exports the active note and
// recomputes the quote; nothing is cached between visits.
func (m *publishModel) Init() tea.Cmd {
	m.state = stateExporting
	m.doc = ""
	m.address = ""
	m.balance = ""
	m.quote = models.PriceQuote{}
	m.result = models.PublishResult{}
	m.notice = ""
	m.status = ""
	return m.cmdExport()
}

func (m *publishModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.noActive {
			m.state = stateNotice
			m.notice = "No active note to export"
			return m, nil
		}
		if msg.err != nil {
			m.state = stateNotice
			m.notice = msg.err.Error()
			return m, nil
		}

		m.doc = msg.doc
		m.preview.SetDocument(msg.doc)
		return m, m.cmdQuote(msg.doc)

	case quoteLoadedMsg:
		if msg.err != nil {
			m.state = stateNotice
			m.notice = humanizeNetworkError(msg.err)
			return m, nil
		}

		m.address = msg.address
		m.balance = msg.balance
		m.quote = msg.quote
		m.state = stateConfirming
		return m, nil

	case publishDoneMsg:
		if msg.err != nil {
			// Notice plus a re-enabled upload button.
			m.state = stateConfirming
			m.notice = humanizeNetworkError(msg.err)
			return m, nil
		}

		m.result = msg.result
		m.state = stateDone
		return m, nil

	case copiedMsg:
		m.status = "URL copied to clipboard"
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		if m.state == stateUploading {
			return m, nil
		}
		if m.state == stateDone {
			url := m.result.URL
			return m, func() tea.Msg {
				return NavigateTo{Page: "menu", Payload: PublishSuccessNotice{URL: url}}
			}
		}
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "enter":
		if m.state != stateConfirming {
			return m, nil
		}
		m.state = stateUploading
		m.notice = ""
		return m, m.cmdPublish(m.doc)
	case "r":
		if m.state != stateNotice {
			return m, nil
		}
		return m, m.Init()
	case "c":
		if m.state != stateDone {
			return m, nil
		}
		return m, m.cmdCopy(m.result.URL)
	case "p":
		if m.state != stateDone && m.state != stateConfirming {
			return m, nil
		}
		m.status = "Preview: " + m.preview.URL()
		return m, nil
	}

	return m, nil
}

func (m *publishModel) View() string {
	var b strings.Builder

	switch m.state {
	case stateExporting:
		b.WriteString("Exporting note...")

	case stateNotice:
		b.WriteString("Notice: ")
		b.WriteString(m.notice)

	case stateConfirming, stateUploading:
		b.WriteString("Wallet: ")
		b.WriteString(m.address)
		b.WriteString("\n")
		b.WriteString("Wallet balance: ")
		b.WriteString(m.balance)
		b.WriteString(" AR\n")
		b.WriteString(m.quote.String())
		b.WriteString("\n\n")

		if m.state == stateUploading {
			b.WriteString("[Uploading...]")
		} else {
			b.WriteString("[Upload]")
		}

		if m.notice != "" {
			b.WriteString("\n\nNotice: ")
			b.WriteString(m.notice)
		}

	case stateDone:
		b.WriteString("Uploaded.\n\n")
		b.WriteString("URL: ")
		b.WriteString(m.result.URL)
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	hotKeys := "esc: back"
	switch m.state {
	case stateConfirming:
		hotKeys = "enter: upload │ p: preview │ esc: back"
	case stateDone:
		hotKeys = "c: copy URL │ p: preview │ esc: back"
	case stateNotice:
		hotKeys = "r: retry │ esc: back"
	case stateUploading:
		hotKeys = ""
	}

	return renderPage("PUBLISH NOTE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *publishModel) cmdExport() tea.Cmd {
	ctx := m.ctx
	exporter := m.exporter

	return func() tea.Msg {
		doc, err := exporter.Export(ctx)
		if errors.Is(err, vault.ErrNoActiveNote) {
			return exportDoneMsg{noActive: true}
		}
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{doc: doc}
	}
}

func (m *publishModel) cmdQuote(doc string) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		address, err := services.BalanceService.Address(ctx)
		if err != nil {
			return quoteLoadedMsg{err: err}
		}

		balance, err := services.BalanceService.Balance(ctx)
		if err != nil {
			return quoteLoadedMsg{err: err}
		}

		quote, err := services.EstimateService.Estimate(ctx, []byte(doc))
		if err != nil {
			return quoteLoadedMsg{err: err}
		}

		return quoteLoadedMsg{address: address, balance: balance, quote: quote}
	}
}

func (m *publishModel) cmdPublish(doc string) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		result, err := services.PublishService.Publish(ctx, doc)
		return publishDoneMsg{result: result, err: err}
	}
}

func (m *publishModel) cmdCopy(url string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(url); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}
