package envelope

import (
	"strings"
	"testing"

	"mxmessage_backend/internal/mx/model"
	"mxmessage_backend/internal/mx/pacs008"
	"mxmessage_backend/internal/mx/validate"
)

func strptr(s string) *string { return &s }

func minimalDocument() *pacs008.FIToFICustomerCreditTransfer {
	return &pacs008.FIToFICustomerCreditTransfer{
		GrpHdr: pacs008.GroupHeader{
			MsgID:    "MSG-ENV-0001",
			CreDtTm:  "2026-08-30T09:00:00+00:00",
			NbOfTxs:  "1",
			SttlmInf: model.SettlementInstruction{SttlmMtd: "INDA"},
		},
		CdtTrfTxInf: []pacs008.CreditTransferTransaction{
			{
				PmtID:          model.PaymentIdentification{EndToEndID: "E2E-ENV-0001"},
				IntrBkSttlmAmt: model.ActiveCurrencyAndAmount{Ccy: "EUR", Value: 100},
				ChrgBr:         model.ChargeBearerCode("SHAR"),
				Dbtr:           model.PartyIdentification{Nm: strptr("Debtor Co")},
				DbtrAgt: model.BranchAndFinancialInstitutionIdentification{
					FinInstnID: model.FinancialInstitutionIdentification{BICFI: strptr("DEUTDEFF")},
				},
				CdtrAgt: model.BranchAndFinancialInstitutionIdentification{
					FinInstnID: model.FinancialInstitutionIdentification{BICFI: strptr("CHASUS33")},
				},
				Cdtr: model.PartyIdentification{Nm: strptr("Creditor Co")},
			},
		},
	}
}

func TestBuilderDefaultsIdentifierAndCreationDate(t *testing.T) {
	hdr, err := NewBuilder("pacs.008.001.08").From("DEUTDEFF").To("CHASUS33").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if hdr.BizMsgIdr == "" {
		t.Fatal("expected a generated business message identifier")
	}
	if hdr.CreDt == "" {
		t.Fatal("expected a creation date")
	}
	if hdr.MsgDefIdr != "pacs.008.001.08" {
		t.Fatalf("unexpected message definition identifier: %q", hdr.MsgDefIdr)
	}
	if hdr.Fr.FIID == nil || *hdr.Fr.FIID.FinInstnID.BICFI != "DEUTDEFF" {
		t.Fatalf("unexpected sender: %+v", hdr.Fr)
	}
}

func TestBuilderRejectsOverlongIdentifier(t *testing.T) {
	_, err := NewBuilder("pacs.008.001.08").
		From("DEUTDEFF").To("CHASUS33").
		BizMsgIdr(strings.Repeat("B", 36)).
		Build()
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodeMaxLength {
		t.Fatalf("expected code %d for overlong identifier, got %v", validate.CodeMaxLength, err)
	}
}

func TestEnvelopeXMLRoundTrip(t *testing.T) {
	hdr, err := NewBuilder("pacs.008.001.08").
		From("DEUTDEFF").To("CHASUS33").
		BizSvc("swift.cbprplus.02").
		Build()
	if err != nil {
		t.Fatalf("build header: %v", err)
	}

	env := &Envelope{
		AppHdr:       *hdr,
		Document:     minimalDocument(),
		DocNamespace: "urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08",
	}
	if err := env.Validate(); err != nil {
		t.Fatalf("validate envelope: %v", err)
	}

	out, err := env.ToXML()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	rendered := string(out)
	for _, want := range []string{
		`<AppHdr xmlns="` + HeaderNamespace + `">`,
		`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08">`,
		"<FIToFICstmrCdtTrf>",
		`Ccy="EUR"`,
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("rendered XML missing %q:\n%s", want, rendered)
		}
	}

	raw, err := Extract(out)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if raw.AppHdr.BizMsgIdr != hdr.BizMsgIdr {
		t.Fatalf("header identifier lost in round trip: %q != %q", raw.AppHdr.BizMsgIdr, hdr.BizMsgIdr)
	}
	if !strings.Contains(string(raw.Document), "<FIToFICstmrCdtTrf>") {
		t.Fatalf("document payload lost in round trip:\n%s", raw.Document)
	}
}

func TestExtractAcceptsBareDocument(t *testing.T) {
	raw, err := Extract([]byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.004.001.09"><PmtRtr><GrpHdr/></PmtRtr></Document>`))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if raw.AppHdr.BizMsgIdr != "" {
		t.Fatal("bare document must yield a zero header")
	}
	if !strings.Contains(string(raw.Document), "<PmtRtr>") {
		t.Fatalf("unexpected document payload: %s", raw.Document)
	}
}

func TestHeaderChoiceRejectsBothAlternativesInStrictMode(t *testing.T) {
	validate.SetStrictChoices(true)
	defer validate.SetStrictChoices(false)

	p := Party{
		FIID:  &FinancialInstitution{FinInstnID: model.FinancialInstitutionIdentification{BICFI: strptr("DEUTDEFF")}},
		OrgID: &model.PartyIdentification{Nm: strptr("ACME")},
	}
	err := p.Validate()
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodeRequired {
		t.Fatalf("expected code %d for double-populated party, got %v", validate.CodeRequired, err)
	}
}
