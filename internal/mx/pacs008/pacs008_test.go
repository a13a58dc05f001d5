package pacs008

import (
	"strings"
	"testing"

	"mxmessage_backend/internal/mx/model"
	"mxmessage_backend/internal/mx/validate"
)

func strptr(s string) *string { return &s }

func validMessage() *FIToFICustomerCreditTransfer {
	uetr := "3b241101-e2bb-4255-8caf-4136c566a962"
	return &FIToFICustomerCreditTransfer{
		GrpHdr: GroupHeader{
			MsgID:   "MSG20260830-0001",
			CreDtTm: "2026-08-30T08:35:30+00:00",
			NbOfTxs: "1",
			SttlmInf: model.SettlementInstruction{
				SttlmMtd: "INDA",
			},
		},
		CdtTrfTxInf: []CreditTransferTransaction{
			{
				PmtID: model.PaymentIdentification{
					InstrID:    strptr("INSTR-1"),
					EndToEndID: "E2E-REF-0001",
					UETR:       &uetr,
				},
				IntrBkSttlmAmt: model.ActiveCurrencyAndAmount{Ccy: "EUR", Value: 1250.5},
				IntrBkSttlmDt:  strptr("2026-08-30"),
				ChrgBr:         model.ChargeBearerCode("SHAR"),
				Dbtr:           model.PartyIdentification{Nm: strptr("Meridian Trading Ltd")},
				DbtrAgt: model.BranchAndFinancialInstitutionIdentification{
					FinInstnID: model.FinancialInstitutionIdentification{BICFI: strptr("DEUTDEFF")},
				},
				CdtrAgt: model.BranchAndFinancialInstitutionIdentification{
					FinInstnID: model.FinancialInstitutionIdentification{BICFI: strptr("CHASUS33")},
				},
				Cdtr: model.PartyIdentification{Nm: strptr("Atlas Commodities GmbH")},
				RmtInf: &model.RemittanceInformation{
					Ustrd: []string{"Invoice 20260830-17"},
				},
			},
		},
	}
}

func TestValidMessagePasses(t *testing.T) {
	if err := validMessage().Validate(); err != nil {
		t.Fatalf("expected a valid message, got %v", err)
	}
}

func TestGroupHeaderCheckedBeforeTransactions(t *testing.T) {
	msg := validMessage()
	msg.GrpHdr.MsgID = strings.Repeat("M", 36)
	msg.CdtTrfTxInf[0].IntrBkSttlmAmt.Ccy = "EURO"

	err := msg.Validate()
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodeMaxLength {
		t.Fatalf("expected the header violation to be reported first, got %v", err)
	}
	if verr.Message != "msg_id exceeds the maximum length of 35" {
		t.Fatalf("unexpected message: %q", verr.Message)
	}
}

func TestMissingEndToEndIdentification(t *testing.T) {
	msg := validMessage()
	msg.CdtTrfTxInf[0].PmtID.EndToEndID = ""

	err := msg.Validate()
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodeMinLength {
		t.Fatalf("expected code %d for empty end-to-end id, got %v", validate.CodeMinLength, err)
	}
}

func TestInvalidUETRRejected(t *testing.T) {
	msg := validMessage()
	bad := "not-a-uuid"
	msg.CdtTrfTxInf[0].PmtID.UETR = &bad

	err := msg.Validate()
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodePattern {
		t.Fatalf("expected code %d for malformed UETR, got %v", validate.CodePattern, err)
	}
}

func TestDebtorNameRequired(t *testing.T) {
	msg := validMessage()
	msg.CdtTrfTxInf[0].Dbtr = model.PartyIdentification{}

	err := msg.Validate()
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodeRequired {
		t.Fatalf("expected code %d for unnamed debtor, got %v", validate.CodeRequired, err)
	}
}

func TestSecondTransactionValidatedAfterFirst(t *testing.T) {
	msg := validMessage()
	second := msg.CdtTrfTxInf[0]
	second.ChrgBr = model.ChargeBearerCode("FREE")
	msg.CdtTrfTxInf = append(msg.CdtTrfTxInf, second)
	msg.GrpHdr.NbOfTxs = "2"

	err := msg.Validate()
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodePattern {
		t.Fatalf("expected the second transaction's charge bearer to fail, got %v", err)
	}
}

func TestInstructionCodeMembership(t *testing.T) {
	msg := validMessage()
	msg.CdtTrfTxInf[0].InstrForCdtrAgt = []InstructionForCreditorAgent{
		{Cd: strptr("HOLD"), InstrInf: strptr("Hold for collection")},
	}
	if err := msg.Validate(); err != nil {
		t.Fatalf("HOLD is a valid instruction code, got %v", err)
	}

	msg.CdtTrfTxInf[0].InstrForCdtrAgt[0].Cd = strptr("WIRE")
	err := msg.Validate()
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodePattern {
		t.Fatalf("expected code %d for unknown instruction code, got %v", validate.CodePattern, err)
	}
}

func TestOptionalDateFormat(t *testing.T) {
	msg := validMessage()
	msg.GrpHdr.IntrBkSttlmDt = strptr("30-08-2026")

	err := msg.Validate()
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodePattern {
		t.Fatalf("expected code %d for wrong date format, got %v", validate.CodePattern, err)
	}
}

func TestSectionsSplitHeaderAndTransactions(t *testing.T) {
	msg := validMessage()
	msg.CdtTrfTxInf = append(msg.CdtTrfTxInf, msg.CdtTrfTxInf[0])

	sections := msg.Sections()
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	for i, section := range sections {
		if err := section.Validate(); err != nil {
			t.Fatalf("section %d: %v", i, err)
		}
	}
}
