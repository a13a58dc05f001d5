// Package handler exposes the messages module over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mxmessage_backend/internal/messages/service"
	"mxmessage_backend/internal/messages/transport"
	"mxmessage_backend/platform/httpkit"
	"mxmessage_backend/platform/logger"
	"mxmessage_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "request validation failed"
)

// Handler handles HTTP requests for MX messages.
type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

// New creates a messages handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

// RegisterRoutes mounts the public message routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/types", h.ListTypes)
	rg.GET("/scenarios/:type", h.ListScenarios)
	rg.POST("/validate", h.Validate)
	rg.POST("/parse", h.Parse)
	rg.POST("/generate", h.Generate)
}

// RegisterProtectedRoutes mounts the routes that require authentication.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/publish", h.Publish)
}

// ListTypes returns the supported message types.
func (h *Handler) ListTypes(c *gin.Context) {
	httpkit.OK(c, h.svc.Types())
}

// ListScenarios returns the sample scenarios known for a message type.
func (h *Handler) ListScenarios(c *gin.Context) {
	resp, err := h.svc.Scenarios(c.Param("type"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Validate checks a JSON payload against its message type's constraints.
func (h *Handler) Validate(c *gin.Context) {
	var req transport.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	report, err := h.svc.Validate(req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, report)
}

// Parse accepts a raw MX XML body and returns the parsed message with its
// validation outcome.
func (h *Handler) Parse(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil || len(data) == 0 {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, "empty request body")
		return
	}

	resp, err := h.svc.Parse(data)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Generate produces sample messages from a named scenario.
func (h *Handler) Generate(c *gin.Context) {
	var req transport.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	resp, err := h.svc.Generate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Publish wraps a validated payload in a business envelope and returns the
// complete MX message as XML.
func (h *Handler) Publish(c *gin.Context) {
	var req transport.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	out, err := h.svc.Publish(req)
	if httpkit.HandleError(c, err) {
		return
	}

	if id := httpkit.GetIdentity(c); id.IsAuthenticated() {
		h.log.WithUserID(id.UserID().String()).Info("message published",
			"message_type", req.MessageType)
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}
