package handler

import (
	"github.com/smartfinder/smartfinder/internal/config"
	"github.com/smartfinder/smartfinder/internal/handler/http"
	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
