package sample

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mxmessage_backend/internal/mx/validate"
)

func writeScenario(t *testing.T, base, messageType, name, content string) {
	t.Helper()
	dir := filepath.Join(base, messageType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
}

func TestGenerateSubstitutesVariables(t *testing.T) {
	base := t.TempDir()
	writeScenario(t, base, "pacs008", "default.json", `{
		"variables": {
			"msg_id": {"fake": ["alphanumeric", 16]},
			"amount": {"fake": ["f64", 100, 500]}
		},
		"schema": {
			"GrpHdr": {"MsgId": {"var": "msg_id"}, "NbOfTxs": "1"},
			"Amt": {"var": "amount"}
		}
	}`)

	gen := NewGenerator(base)
	payload, err := gen.Generate("pacs.008", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	hdr, ok := payload["GrpHdr"].(map[string]any)
	if !ok {
		t.Fatalf("expected a GrpHdr object, got %T", payload["GrpHdr"])
	}
	msgID, ok := hdr["MsgId"].(string)
	if !ok || len(msgID) != 16 {
		t.Fatalf("expected a 16 character MsgId, got %v", hdr["MsgId"])
	}
	if hdr["NbOfTxs"] != "1" {
		t.Fatalf("literal value lost: %v", hdr["NbOfTxs"])
	}
	amount, ok := payload["Amt"].(float64)
	if !ok || amount < 100 || amount > 500 {
		t.Fatalf("amount out of range: %v", payload["Amt"])
	}
}

func TestGenerateSameVariableResolvesConsistently(t *testing.T) {
	base := t.TempDir()
	writeScenario(t, base, "pacs008", "default.json", `{
		"variables": {"uetr": {"fake": ["uuid"]}},
		"schema": {"First": {"var": "uetr"}, "Second": {"var": "uetr"}}
	}`)

	gen := NewGenerator(base)
	payload, err := gen.Generate("pacs008", "default")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if payload["First"] != payload["Second"] {
		t.Fatalf("the same variable resolved to different values: %v / %v", payload["First"], payload["Second"])
	}
}

func TestGenerateUndefinedVariableFails(t *testing.T) {
	base := t.TempDir()
	writeScenario(t, base, "pacs008", "default.json", `{
		"variables": {},
		"schema": {"MsgId": {"var": "missing"}}
	}`)

	_, err := NewGenerator(base).Generate("pacs008", "default")
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodeGeneration {
		t.Fatalf("expected code %d for an undefined variable, got %v", validate.CodeGeneration, err)
	}
}

func TestGenerateUnknownScenarioFails(t *testing.T) {
	_, err := NewGenerator(t.TempDir()).Generate("pacs008", "nonexistent")
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodeScenario {
		t.Fatalf("expected code %d for a missing scenario, got %v", validate.CodeScenario, err)
	}
}

func TestGenerateLoadsYAMLScenario(t *testing.T) {
	base := t.TempDir()
	writeScenario(t, base, "pacs004", "returns.yaml", `
variables:
  reason:
    pick: [AC01, AC04]
schema:
  RtrRsnInf:
    Rsn:
      Cd: {var: reason}
`)

	payload, err := NewGenerator(base).Generate("pacs.004.001.09", "returns")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rsn := payload["RtrRsnInf"].(map[string]any)["Rsn"].(map[string]any)
	if cd := rsn["Cd"]; cd != "AC01" && cd != "AC04" {
		t.Fatalf("unexpected reason code %v", cd)
	}
}

func TestGenerateYAMLScenarioWithNumericArguments(t *testing.T) {
	base := t.TempDir()
	writeScenario(t, base, "pacs008", "high.yaml", `
variables:
  amount:
    fake: [f64, 1000000, 25000000]
  txs:
    fake: [i64, 1, 1]
  msg_id:
    fake: [alphanumeric, 20]
schema:
  MsgId: {var: msg_id}
  NbOfTxs: {var: txs}
  Amt: {var: amount}
`)

	payload, err := NewGenerator(base).Generate("pacs008", "high")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	amount, ok := payload["Amt"].(float64)
	if !ok || amount < 1000000 || amount > 25000000 {
		t.Fatalf("amount out of range: %v", payload["Amt"])
	}
	if txs, ok := payload["NbOfTxs"].(int64); !ok || txs != 1 {
		t.Fatalf("unexpected transaction count %v", payload["NbOfTxs"])
	}
	if msgID, ok := payload["MsgId"].(string); !ok || len(msgID) != 20 {
		t.Fatalf("expected a 20 character MsgId, got %v", payload["MsgId"])
	}
}

func TestGenerateRejectsScenarioWithoutSchema(t *testing.T) {
	base := t.TempDir()
	writeScenario(t, base, "camt029", "broken.json", `{"variables": {}}`)

	_, err := NewGenerator(base).Generate("camt.029", "broken")
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodeScenario {
		t.Fatalf("expected code %d for a schema-less scenario, got %v", validate.CodeScenario, err)
	}
}

func TestScenariosListsAcrossPathsSortedAndDeduplicated(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeScenario(t, first, "pacs008", "default.json", `{"schema": {}}`)
	writeScenario(t, first, "pacs008", "high_value.yaml", `schema: {}`)
	writeScenario(t, second, "pacs008", "default.json", `{"schema": {}}`)
	writeScenario(t, second, "pacs008", "notes.txt", "not a scenario")

	names, err := NewGenerator(first, second).Scenarios("pacs.008")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"default", "high_value"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("unexpected scenario names %v, want %v", names, want)
	}
}

func TestConcatenation(t *testing.T) {
	base := t.TempDir()
	writeScenario(t, base, "pacs008", "default.json", `{
		"variables": {
			"e2e": {"cat": ["E2E", {"fake": ["alphanumeric", 8]}]},
			"amount": {"cat": [{"fake": ["f64", 10, 20]}]}
		},
		"schema": {"EndToEndId": {"var": "e2e"}, "Amt": {"var": "amount"}}
	}`)

	payload, err := NewGenerator(base).Generate("pacs008", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	e2e, ok := payload["EndToEndId"].(string)
	if !ok || len(e2e) != 11 || e2e[:3] != "E2E" {
		t.Fatalf("unexpected concatenated value %v", payload["EndToEndId"])
	}
	// A single generator part still yields a string.
	if _, ok := payload["Amt"].(string); !ok {
		t.Fatalf("expected a stringified amount, got %T", payload["Amt"])
	}
}
