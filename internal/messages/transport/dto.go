// Package transport defines the request and response shapes of the messages API.
package transport

import (
	"encoding/json"

	"mxmessage_backend/internal/mx/validate"
)

// ValidateRequest asks for structural validation of a message payload.
type ValidateRequest struct {
	MessageType string          `json:"messageType" validate:"required,msgtype"`
	Payload     json.RawMessage `json:"payload" validate:"required"`
	// CollectAll gathers one violation per top-level section instead of
	// stopping at the first.
	CollectAll bool `json:"collectAll,omitempty"`
}

// ValidationReport is the outcome of validating one message.
type ValidationReport struct {
	MessageType string                     `json:"messageType"`
	Valid       bool                       `json:"valid"`
	Errors      []validate.ValidationError `json:"errors,omitempty"`
}

// ParseResponse carries a parsed MX message: its resolved type, the business
// header when the input was enveloped, the document as a JSON tree, and the
// validation outcome.
type ParseResponse struct {
	MessageType string                     `json:"messageType"`
	AppHdr      interface{}                `json:"appHdr,omitempty"`
	Document    interface{}                `json:"document"`
	Valid       bool                       `json:"valid"`
	Errors      []validate.ValidationError `json:"errors,omitempty"`
}

// GenerateRequest asks for scenario-driven sample messages.
type GenerateRequest struct {
	MessageType string `json:"messageType" validate:"required,msgtype"`
	Scenario    string `json:"scenario,omitempty" validate:"omitempty,max=64"`
	Count       int    `json:"count,omitempty" validate:"omitempty,min=1,max=100"`
	Format      string `json:"format,omitempty" validate:"omitempty,oneof=json xml"`
}

// GeneratedSample is one generated payload with its self-check outcome.
type GeneratedSample struct {
	Payload map[string]interface{}     `json:"payload"`
	XML     string                     `json:"xml,omitempty"`
	Valid   bool                       `json:"valid"`
	Errors  []validate.ValidationError `json:"errors,omitempty"`
}

// GenerateResponse wraps the generated samples.
type GenerateResponse struct {
	MessageType string            `json:"messageType"`
	Scenario    string            `json:"scenario"`
	Samples     []GeneratedSample `json:"samples"`
}

// PublishRequest asks for a validated payload to be wrapped in a business
// envelope and rendered as XML.
type PublishRequest struct {
	MessageType string          `json:"messageType" validate:"required,msgtype"`
	Payload     json.RawMessage `json:"payload" validate:"required"`
	From        string          `json:"from,omitempty" validate:"omitempty,bic"`
	To          string          `json:"to,omitempty" validate:"omitempty,bic"`
	BizMsgIdr   string          `json:"bizMsgIdr,omitempty" validate:"omitempty,min=1,max=35"`
	BizSvc      string          `json:"bizSvc,omitempty" validate:"omitempty,min=1,max=35"`
}

// TypeInfo describes one supported message type.
type TypeInfo struct {
	ShortForm  string `json:"shortForm"`
	FullForm   string `json:"fullForm"`
	XMLElement string `json:"xmlElement"`
	Namespace  string `json:"namespace"`
}

// TypeListResponse wraps the supported message types.
type TypeListResponse struct {
	Items []TypeInfo `json:"items"`
	Total int        `json:"total"`
}

// ScenarioListResponse lists the sample scenarios known for a message type.
type ScenarioListResponse struct {
	MessageType string   `json:"messageType"`
	Scenarios   []string `json:"scenarios"`
}
