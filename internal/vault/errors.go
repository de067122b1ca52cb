package vault

import "errors"

var (
	// ErrNoActiveNote signals that no note is currently selected or that the
	// selected note does not exist. The publish workflow shows a notice and
	// stops; no modal is opened.
	ErrNoActiveNote = errors.New("no active note")
)
