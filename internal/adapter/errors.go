package adapter

import "errors"

// Errors mapped from remote catalog HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("catalog rejected the request")
	ErrNotFound            = errors.New("catalog resource not found")
	ErrInternalServerError = errors.New("catalog internal error")
	ErrBadGateway          = errors.New("catalog bad gateway")
	ErrServiceUnavailable  = errors.New("catalog unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected catalog response status")
)
