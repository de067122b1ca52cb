package service

import "errors"

var (
	// ErrNoCredential is returned when a wallet-dependent operation runs
	// before any private key has been entered in the settings panel.
	ErrNoCredential = errors.New("wallet credential is not configured")

	// ErrUploadRejected is returned when the gateway answers a transaction
	// submission with a status other than 200 or 202.
	ErrUploadRejected = errors.New("upload rejected by gateway")
)
