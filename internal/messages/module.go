// Package messages provides the MX message domain module: validation,
// parsing, sample generation and publishing.
package messages

import (
	gpvalidator "github.com/go-playground/validator/v10"

	apphttp "mxmessage_backend/internal/http"
	"mxmessage_backend/internal/messages/handler"
	"mxmessage_backend/internal/messages/service"
	"mxmessage_backend/internal/mx/registry"
	"mxmessage_backend/internal/sample"
	"mxmessage_backend/platform/config"
	"mxmessage_backend/platform/logger"
	"mxmessage_backend/platform/validator"
)

// Module represents the messages domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates the messages module with all dependencies wired.
func NewModule(cfg *config.Config, log *logger.Logger, val *validator.Validator) *Module {
	// Request DTOs reference message types through the msgtype tag.
	_ = val.RegisterValidation("msgtype", func(fl gpvalidator.FieldLevel) bool {
		_, err := registry.Lookup(fl.Field().String())
		return err == nil
	})

	gen := sample.NewGenerator(cfg.GetScenarioPaths()...)
	svc := service.New(gen, cfg, log)
	h := handler.New(svc, val, log)

	return &Module{handler: h, service: svc}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "messages"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	messages := ctx.V1.Group("/messages")
	m.handler.RegisterRoutes(messages)

	protected := ctx.Protected.Group("/messages")
	m.handler.RegisterProtectedRoutes(protected)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
