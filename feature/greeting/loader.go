package greeting

import (
	"greeter/core/router"
	"greeter/core/server"

	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Greeting feature.
func NewFeature(cfg server.Config, logger *zap.Logger) *Feature {
	svc := NewService(cfg, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "greeting"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Routes returns the feature's route table.
func (f *Feature) Routes() router.Table {
	return f.handler.Routes()
}
