package model

import (
	"fmt"

	"mxmessage_backend/internal/mx/validate"
)

// checkCode verifies membership of an enumerated code list. The XML decoder
// does not restrict element text, so enumerations are enforced here; a value
// outside the list is a pattern-class violation.
func checkCode(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return validate.NewError(validate.CodePattern,
		fmt.Sprintf("%s does not match the required pattern", field))
}

// ChargeBearerCode specifies which party bears the transaction charges.
type ChargeBearerCode string

const (
	ChargeBearerDEBT ChargeBearerCode = "DEBT"
	ChargeBearerCRED ChargeBearerCode = "CRED"
	ChargeBearerSHAR ChargeBearerCode = "SHAR"
	ChargeBearerSLEV ChargeBearerCode = "SLEV"
)

func (c ChargeBearerCode) Validate() error {
	return checkCode("chrg_br", string(c), "DEBT", "CRED", "SHAR", "SLEV")
}

// PriorityCode specifies the settlement priority of an instruction.
type PriorityCode string

const (
	PriorityURGT PriorityCode = "URGT"
	PriorityHIGH PriorityCode = "HIGH"
	PriorityNORM PriorityCode = "NORM"
)

func (c PriorityCode) Validate() error {
	return checkCode("prty", string(c), "URGT", "HIGH", "NORM")
}

// SettlementMethodCode specifies how a payment is settled.
type SettlementMethodCode string

const (
	SettlementINDA SettlementMethodCode = "INDA"
	SettlementINGA SettlementMethodCode = "INGA"
	SettlementCOVE SettlementMethodCode = "COVE"
	SettlementCLRG SettlementMethodCode = "CLRG"
)

func (c SettlementMethodCode) Validate() error {
	return checkCode("sttlm_mtd", string(c), "INDA", "INGA", "COVE", "CLRG")
}

// ClearingChannelCode specifies the clearing channel for an instruction.
type ClearingChannelCode string

const (
	ClearingChannelRTGS ClearingChannelCode = "RTGS"
	ClearingChannelRTNS ClearingChannelCode = "RTNS"
	ClearingChannelMPNS ClearingChannelCode = "MPNS"
	ClearingChannelBOOK ClearingChannelCode = "BOOK"
)

func (c ClearingChannelCode) Validate() error {
	return checkCode("clr_chanl", string(c), "RTGS", "RTNS", "MPNS", "BOOK")
}

// CancellationStatusCode specifies the outcome of a cancellation request
// on an individual transaction.
type CancellationStatusCode string

const (
	CancellationRejected CancellationStatusCode = "RJCR"
	CancellationAccepted CancellationStatusCode = "ACCR"
	CancellationPending  CancellationStatusCode = "PDCR"
)

func (c CancellationStatusCode) Validate() error {
	return checkCode("tx_cxl_sts", string(c), "RJCR", "ACCR", "PDCR")
}
