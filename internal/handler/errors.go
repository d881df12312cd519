package handler

import "errors"

// errNoHandlersAreCreated is returned when the configuration enables no
// transport at all, leaving the server with nothing to serve.
var errNoHandlersAreCreated = errors.New("no handlers are created")
