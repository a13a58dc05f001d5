// Package service implements the message operations: validate, parse,
// generate and publish.
package service

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"mxmessage_backend/internal/messages/transport"
	"mxmessage_backend/internal/mx/envelope"
	"mxmessage_backend/internal/mx/registry"
	"mxmessage_backend/internal/mx/validate"
	"mxmessage_backend/internal/sample"
	"mxmessage_backend/platform/apperr"
	"mxmessage_backend/platform/config"
	"mxmessage_backend/platform/logger"
)

// generateConcurrency caps parallel sample generation per request.
const generateConcurrency = 4

// Service provides the message operations on top of the registry, the
// envelope codec and the sample generator.
type Service struct {
	gen *sample.Generator
	pub config.PublishConfig
	log *logger.Logger
}

// New creates a messages service.
func New(gen *sample.Generator, pub config.PublishConfig, log *logger.Logger) *Service {
	return &Service{gen: gen, pub: pub, log: log}
}

// Types lists the supported message types.
func (s *Service) Types() transport.TypeListResponse {
	entries := registry.Entries()
	items := make([]transport.TypeInfo, 0, len(entries))
	for _, entry := range entries {
		items = append(items, transport.TypeInfo{
			ShortForm:  entry.ShortForm,
			FullForm:   entry.FullForm,
			XMLElement: entry.XMLElement,
			Namespace:  entry.Namespace,
		})
	}
	return transport.TypeListResponse{Items: items, Total: len(items)}
}

// Validate decodes a JSON payload into its message tree and validates it.
func (s *Service) Validate(req transport.ValidateRequest) (transport.ValidationReport, error) {
	start := time.Now()
	entry, err := registry.Lookup(req.MessageType)
	if err != nil {
		return transport.ValidationReport{}, apperr.NotFound(err.Error())
	}

	msg, err := entry.DecodeJSON(req.Payload)
	if err != nil {
		return transport.ValidationReport{}, apperr.Wrap(apperr.KindBadRequest, "malformed payload", err)
	}

	report := transport.ValidationReport{MessageType: entry.FullForm, Valid: true}
	if req.CollectAll {
		collector := validate.NewCollector()
		if sectioned, ok := msg.(validate.Sectioned); ok {
			for _, section := range sectioned.Sections() {
				collector.Collect(section.Validate())
			}
		} else {
			collector.Collect(msg.Validate())
		}
		if collector.HasErrors() {
			report.Valid = false
			report.Errors = collector.Errors()
			s.log.ValidationFailed(entry.FullForm, report.Errors[0].Code, &report.Errors[0])
		}
		s.log.MessageProcessed("validate", entry.FullForm, millisSince(start))
		return report, nil
	}
	if err := msg.Validate(); err != nil {
		report.Valid = false
		report.Errors = collectErrors(err)
		s.log.ValidationFailed(entry.FullForm, errorCode(err), err)
	}
	s.log.MessageProcessed("validate", entry.FullForm, millisSince(start))
	return report, nil
}

// Parse decodes an MX XML message, enveloped or bare, resolves its type from
// the document root element and validates header and document.
func (s *Service) Parse(data []byte) (transport.ParseResponse, error) {
	start := time.Now()
	raw, err := envelope.Extract(data)
	if err != nil {
		return transport.ParseResponse{}, apperr.Wrap(apperr.KindBadRequest, "malformed XML message", err)
	}

	element, err := registry.DetectElement(raw.Document)
	if err != nil {
		return transport.ParseResponse{}, apperr.Wrap(apperr.KindBadRequest, "missing document payload", err)
	}
	entry, err := registry.LookupByElement(element)
	if err != nil {
		return transport.ParseResponse{}, apperr.NotFound(err.Error())
	}

	msg, err := entry.DecodeXML(raw.Document)
	if err != nil {
		return transport.ParseResponse{}, apperr.Wrap(apperr.KindBadRequest, "malformed document payload", err)
	}

	// Header and document are validated independently so the caller sees
	// both outcomes in one pass.
	collector := validate.NewCollector()
	resp := transport.ParseResponse{
		MessageType: entry.FullForm,
		Document:    msg,
		Valid:       true,
	}
	if raw.AppHdr.BizMsgIdr != "" || raw.AppHdr.MsgDefIdr != "" {
		resp.AppHdr = raw.AppHdr
		collector.Collect(raw.AppHdr.Validate())
	}
	collector.Collect(msg.Validate())

	if collector.HasErrors() {
		resp.Valid = false
		resp.Errors = collector.Errors()
	}
	s.log.MessageProcessed("parse", entry.FullForm, millisSince(start))
	return resp, nil
}

// Generate produces one or more sample payloads from a named scenario. Each
// sample is round-tripped through the typed message tree and validated.
func (s *Service) Generate(ctx context.Context, req transport.GenerateRequest) (transport.GenerateResponse, error) {
	start := time.Now()
	entry, err := registry.Lookup(req.MessageType)
	if err != nil {
		return transport.GenerateResponse{}, apperr.NotFound(err.Error())
	}

	scenarioName := req.Scenario
	if scenarioName == "" {
		scenarioName = "default"
	}
	count := req.Count
	if count < 1 {
		count = 1
	}

	renderXML := req.Format == "xml"
	samples := make([]transport.GeneratedSample, count)
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(generateConcurrency)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			payload, err := s.gen.Generate(entry.ShortForm, scenarioName)
			if err != nil {
				return err
			}
			samples[i] = selfCheck(entry, payload, renderXML)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.ScenarioError(entry.FullForm, scenarioName, err)
		if verr := validate.AsValidationError(err); verr != nil && verr.Code == validate.CodeScenario {
			return transport.GenerateResponse{}, apperr.NotFound(verr.Message)
		}
		return transport.GenerateResponse{}, apperr.Wrap(apperr.KindInternal, "sample generation failed", err)
	}

	s.log.MessageProcessed("generate", entry.FullForm, millisSince(start))
	return transport.GenerateResponse{
		MessageType: entry.FullForm,
		Scenario:    scenarioName,
		Samples:     samples,
	}, nil
}

// Scenarios lists the sample scenarios available for a message type.
func (s *Service) Scenarios(messageType string) (transport.ScenarioListResponse, error) {
	entry, err := registry.Lookup(messageType)
	if err != nil {
		return transport.ScenarioListResponse{}, apperr.NotFound(err.Error())
	}
	names, err := s.gen.Scenarios(entry.ShortForm)
	if err != nil {
		return transport.ScenarioListResponse{}, apperr.Wrap(apperr.KindInternal, "listing scenarios failed", err)
	}
	return transport.ScenarioListResponse{MessageType: entry.FullForm, Scenarios: names}, nil
}

// Publish validates a payload, wraps it in a business envelope and renders
// the complete MX message as XML.
func (s *Service) Publish(req transport.PublishRequest) ([]byte, error) {
	start := time.Now()
	entry, err := registry.Lookup(req.MessageType)
	if err != nil {
		return nil, apperr.NotFound(err.Error())
	}

	msg, err := entry.DecodeJSON(req.Payload)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindBadRequest, "malformed payload", err)
	}
	if err := msg.Validate(); err != nil {
		s.log.ValidationFailed(entry.FullForm, errorCode(err), err)
		return nil, apperr.Validation("message failed validation").WithDetails(collectErrors(err))
	}

	from := req.From
	if from == "" {
		from = s.pub.GetDefaultFromBIC()
	}
	to := req.To
	if to == "" {
		to = s.pub.GetDefaultToBIC()
	}
	if from == "" || to == "" {
		return nil, apperr.BadRequest("sender and receiver BICs are required")
	}

	builder := envelope.NewBuilder(entry.FullForm).From(from).To(to)
	if req.BizMsgIdr != "" {
		builder.BizMsgIdr(req.BizMsgIdr)
	}
	bizSvc := req.BizSvc
	if bizSvc == "" {
		bizSvc = s.pub.GetBusinessService()
	}
	if bizSvc != "" {
		builder.BizSvc(bizSvc)
	}
	hdr, err := builder.Build()
	if err != nil {
		return nil, apperr.Validation("envelope header failed validation").WithDetails(collectErrors(err))
	}

	env := &envelope.Envelope{
		AppHdr:       *hdr,
		Document:     msg,
		DocNamespace: entry.Namespace,
	}
	out, err := env.ToXML()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "envelope serialization failed", err)
	}
	s.log.MessageProcessed("publish", entry.FullForm, millisSince(start))
	return out, nil
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}

// selfCheck round-trips a generated payload through the typed message tree
// and records any validation errors on the sample. With renderXML the typed
// tree is also serialized as a document payload.
func selfCheck(entry *registry.Entry, payload map[string]interface{}, renderXML bool) transport.GeneratedSample {
	result := transport.GeneratedSample{Payload: payload, Valid: true}

	encoded, err := json.Marshal(payload)
	if err != nil {
		result.Valid = false
		result.Errors = []validate.ValidationError{*validate.NewError(validate.CodeGeneration,
			fmt.Sprintf("serialize generated payload: %v", err))}
		return result
	}
	msg, err := entry.DecodeJSON(encoded)
	if err != nil {
		result.Valid = false
		result.Errors = []validate.ValidationError{*validate.NewError(validate.CodeGeneration, err.Error())}
		return result
	}
	if err := msg.Validate(); err != nil {
		result.Valid = false
		result.Errors = collectErrors(err)
	}
	if renderXML {
		rendered, err := xml.MarshalIndent(msg, "", "    ")
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, *validate.NewError(validate.CodeGeneration,
				fmt.Sprintf("serialize generated document: %v", err)))
			return result
		}
		result.XML = string(rendered)
	}
	return result
}

func collectErrors(err error) []validate.ValidationError {
	collector := validate.NewCollector()
	collector.Collect(err)
	return collector.Errors()
}

func errorCode(err error) int {
	if verr := validate.AsValidationError(err); verr != nil {
		return verr.Code
	}
	return 0
}
