package adapter

import "errors"

// Sentinel errors produced by [mapHTTPError] for non-2xx gateway and
// price-feed responses. Callers match with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
