package greeting

import (
	"greeter/core/server"

	"go.uber.org/zap"
)

// MessagePrefix is the fixed part of the greeting preceding the port.
const MessagePrefix = "Hello World, from Node/Express on port "

// Service builds the greeting payload.
type Service struct {
	port   string
	logger *zap.Logger
}

// NewService creates a greeting service for the given server configuration.
func NewService(cfg server.Config, logger *zap.Logger) *Service {
	return &Service{
		port:   cfg.Port,
		logger: logger,
	}
}

// Message returns the greeting with the port rendered as configured.
func (s *Service) Message() string {
	return MessagePrefix + s.port + " !"
}
