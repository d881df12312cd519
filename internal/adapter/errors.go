package adapter

import "errors"

var (
	// ErrRequestRejected is returned when the server answers with a 4xx
	// status. The wrapped message carries the server's reason.
	ErrRequestRejected = errors.New("request rejected by server")

	// ErrServerFailure is returned when the server answers with a 5xx status.
	ErrServerFailure = errors.New("server failure")
)
