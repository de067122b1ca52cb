package tui

import (
	"github.com/vkarev/arpub/models"
)

// NavigateTo switches the active page; Payload is redelivered to the target
// page as a regular message.
type NavigateTo struct {
	Page    string
	Payload any
}

type exportDoneMsg struct {
	doc      string
	noActive bool
	err      error
}

// PublishSuccessNotice is delivered to the menu page after a finished upload
// so the menu can show the resulting URL.
type PublishSuccessNotice struct {
	URL string
}

type quoteLoadedMsg struct {
	address string
	balance string
	quote   models.PriceQuote
	err     error
}

type publishDoneMsg struct {
	result models.PublishResult
	err    error
}

type settingsLoadedMsg struct {
	settings models.Settings
	err      error
}

type settingsSavedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
