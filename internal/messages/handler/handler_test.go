package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	gpvalidator "github.com/go-playground/validator/v10"

	"mxmessage_backend/internal/messages/service"
	"mxmessage_backend/internal/mx/registry"
	"mxmessage_backend/internal/sample"
	"mxmessage_backend/platform/logger"
	"mxmessage_backend/platform/validator"
)

type publishDefaults struct {
	from, to, svc string
}

func (p publishDefaults) GetDefaultFromBIC() string  { return p.from }
func (p publishDefaults) GetDefaultToBIC() string    { return p.to }
func (p publishDefaults) GetBusinessService() string { return p.svc }

func newTestRouter(t *testing.T, pub publishDefaults) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	val := validator.New()
	if err := val.RegisterValidation("msgtype", func(fl gpvalidator.FieldLevel) bool {
		_, err := registry.Lookup(fl.Field().String())
		return err == nil
	}); err != nil {
		t.Fatalf("register msgtype: %v", err)
	}

	log := logger.New("test")
	svc := service.New(sample.NewGenerator("../../../test_scenarios"), pub, log)
	h := New(svc, val, log)

	engine := gin.New()
	group := engine.Group("/api/v1/messages")
	h.RegisterRoutes(group)
	h.RegisterProtectedRoutes(group)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

const validPacs008Body = `{
	"messageType": "pacs.008",
	"payload": {
		"GrpHdr": {
			"MsgId": "MSG20260830-0001",
			"CreDtTm": "2026-08-30T08:35:30+00:00",
			"NbOfTxs": "1",
			"SttlmInf": {"SttlmMtd": "INDA"}
		},
		"CdtTrfTxInf": [{
			"PmtId": {"EndToEndId": "E2E-0001"},
			"IntrBkSttlmAmt": {"Ccy": "EUR", "Value": 1250.5},
			"ChrgBr": "SHAR",
			"Dbtr": {"Nm": "Debtor Co"},
			"DbtrAgt": {"FinInstnId": {"BICFI": "DEUTDEFF"}},
			"CdtrAgt": {"FinInstnId": {"BICFI": "CHASUS33"}},
			"Cdtr": {"Nm": "Creditor Co"}
		}]
	}
}`

func TestListTypes(t *testing.T) {
	rec := doJSON(t, newTestRouter(t, publishDefaults{}), http.MethodGet, "/api/v1/messages/types", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body)
	}
	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 3 {
		t.Fatalf("expected 3 message types, got %d", resp.Total)
	}
}

func TestValidateEndpoint(t *testing.T) {
	engine := newTestRouter(t, publishDefaults{})

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/messages/validate", validPacs008Body)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body)
	}
	var report struct {
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !report.Valid {
		t.Fatalf("expected a valid report: %s", rec.Body)
	}
}

func TestValidateEndpointRejectsUnsupportedType(t *testing.T) {
	engine := newTestRouter(t, publishDefaults{})
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/messages/validate",
		`{"messageType": "pain.001", "payload": {}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body)
	}
}

func TestValidateEndpointRequiresPayload(t *testing.T) {
	engine := newTestRouter(t, publishDefaults{})
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/messages/validate",
		`{"messageType": "pacs.008"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body)
	}
}

func TestParseEndpointRejectsEmptyBody(t *testing.T) {
	engine := newTestRouter(t, publishDefaults{})
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/messages/parse", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	engine := newTestRouter(t, publishDefaults{})
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/messages/generate",
		`{"messageType": "pacs008", "count": 2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body)
	}
	var resp struct {
		Scenario string `json:"scenario"`
		Samples  []struct {
			Valid bool `json:"valid"`
		} `json:"samples"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Scenario != "default" || len(resp.Samples) != 2 {
		t.Fatalf("unexpected response: %s", rec.Body)
	}
}

func TestGenerateEndpointUnknownScenario(t *testing.T) {
	engine := newTestRouter(t, publishDefaults{})
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/messages/generate",
		`{"messageType": "pacs008", "scenario": "nonexistent"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body)
	}
}

func TestScenariosEndpoint(t *testing.T) {
	engine := newTestRouter(t, publishDefaults{})
	rec := doJSON(t, engine, http.MethodGet, "/api/v1/messages/scenarios/pacs008", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"default"`) {
		t.Fatalf("expected a default scenario: %s", rec.Body)
	}
}

func TestPublishEndpointReturnsXML(t *testing.T) {
	engine := newTestRouter(t, publishDefaults{from: "DEUTDEFF", to: "CHASUS33", svc: "swift.cbprplus.02"})
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/messages/publish", validPacs008Body)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<FIToFICstmrCdtTrf>") {
		t.Fatalf("response is not an MX document: %s", rec.Body)
	}
}

func TestPublishEndpointRejectsMalformedBIC(t *testing.T) {
	engine := newTestRouter(t, publishDefaults{})
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/messages/publish",
		`{"messageType": "pacs.008", "payload": {}, "from": "not-a-bic"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body)
	}
}
