// Package camt029 models the ResolutionOfInvestigation message
// (camt.029.001.09), the answer to a payment cancellation request.
package camt029

import (
	"encoding/xml"

	"mxmessage_backend/internal/mx/model"
	"mxmessage_backend/internal/mx/validate"
)

var (
	text35   = validate.Constraint{MinLen: 1, MaxLen: 35}
	text105  = validate.Constraint{MinLen: 1, MaxLen: 105}
	extCode4 = validate.Constraint{MinLen: 1, MaxLen: 4}
	dateTime = validate.Constraint{Pattern: validate.PatternDateTimeOffset}
	uetr     = validate.Constraint{Pattern: validate.PatternUETR}
)

// ResolutionOfInvestigation is the camt.029 document root.
type ResolutionOfInvestigation struct {
	XMLName   xml.Name                  `json:"-" xml:"RsltnOfInvstgtn"`
	Assgnmt   CaseAssignment            `json:"Assgnmt" xml:"Assgnmt"`
	RslvdCase *Case                     `json:"RslvdCase,omitempty" xml:"RslvdCase,omitempty"`
	Sts       InvestigationStatusChoice `json:"Sts" xml:"Sts"`
	CxlDtls   []CancellationDetails     `json:"CxlDtls,omitempty" xml:"CxlDtls,omitempty"`
}

func (d *ResolutionOfInvestigation) Validate() error {
	if err := d.Assgnmt.Validate(); err != nil {
		return err
	}
	if d.RslvdCase != nil {
		if err := d.RslvdCase.Validate(); err != nil {
			return err
		}
	}
	if err := d.Sts.Validate(); err != nil {
		return err
	}
	return validate.Each(d.CxlDtls)
}

// Sections returns the assignment, resolved case, status and each
// cancellation detail as independently validatable units.
func (d *ResolutionOfInvestigation) Sections() []validate.Validator {
	sections := []validate.Validator{&d.Assgnmt}
	if d.RslvdCase != nil {
		sections = append(sections, d.RslvdCase)
	}
	sections = append(sections, &d.Sts)
	for i := range d.CxlDtls {
		sections = append(sections, &d.CxlDtls[i])
	}
	return sections
}

// CaseAssignment identifies the assigner and assignee of the investigation
// case.
type CaseAssignment struct {
	ID      string                   `json:"Id" xml:"Id"`
	Assgnr  model.PartyOrAgentChoice `json:"Assgnr" xml:"Assgnr"`
	Assgne  model.PartyOrAgentChoice `json:"Assgne" xml:"Assgne"`
	CreDtTm string                   `json:"CreDtTm" xml:"CreDtTm"`
}

func (c *CaseAssignment) Validate() error {
	if err := text35.CheckString("id", c.ID); err != nil {
		return err
	}
	if err := c.Assgnr.Validate(); err != nil {
		return err
	}
	if err := c.Assgne.Validate(); err != nil {
		return err
	}
	return dateTime.CheckString("cre_dt_tm", c.CreDtTm)
}

// Case identifies the investigation case being resolved.
type Case struct {
	ID    string                   `json:"Id" xml:"Id"`
	Cretr model.PartyOrAgentChoice `json:"Cretr" xml:"Cretr"`
}

func (c *Case) Validate() error {
	if err := text35.CheckString("id", c.ID); err != nil {
		return err
	}
	return c.Cretr.Validate()
}

// InvestigationStatusChoice carries the status of the investigation, either
// as an external status code or as a cancellation confirmation.
type InvestigationStatusChoice struct {
	Conf           *string `json:"Conf,omitempty" xml:"Conf,omitempty"`
	AssgnmtCxlConf *bool   `json:"AssgnmtCxlConf,omitempty" xml:"AssgnmtCxlConf,omitempty"`
}

func (s *InvestigationStatusChoice) Validate() error {
	if err := validate.CheckChoice("sts", s.Conf != nil, s.AssgnmtCxlConf != nil); err != nil {
		return err
	}
	return extCode4.CheckOptional("conf", s.Conf)
}

// CancellationDetails reports the outcome of a cancellation request for a
// group of underlying transactions.
type CancellationDetails struct {
	OrgnlGrpInfAndSts *OriginalGroupStatus       `json:"OrgnlGrpInfAndSts,omitempty" xml:"OrgnlGrpInfAndSts,omitempty"`
	TxInfAndSts       []PaymentTransactionStatus `json:"TxInfAndSts,omitempty" xml:"TxInfAndSts,omitempty"`
}

func (c CancellationDetails) Validate() error {
	if c.OrgnlGrpInfAndSts != nil {
		if err := c.OrgnlGrpInfAndSts.Validate(); err != nil {
			return err
		}
	}
	return validate.Each(c.TxInfAndSts)
}

// OriginalGroupStatus references the original message group and its
// cancellation status.
type OriginalGroupStatus struct {
	OrgnlGrpInf model.OriginalGroupInformation `json:"OrgnlGrpInf" xml:"OrgnlGrpInf"`
	GrpCxlSts   *model.CancellationStatusCode  `json:"GrpCxlSts,omitempty" xml:"GrpCxlSts,omitempty"`
}

func (o *OriginalGroupStatus) Validate() error {
	if err := o.OrgnlGrpInf.Validate(); err != nil {
		return err
	}
	if o.GrpCxlSts != nil {
		if err := o.GrpCxlSts.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PaymentTransactionStatus reports the cancellation status of a single
// underlying transaction.
type PaymentTransactionStatus struct {
	CxlStsID        *string                       `json:"CxlStsId,omitempty" xml:"CxlStsId,omitempty"`
	OrgnlInstrID    *string                       `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndID *string                       `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlUETR       *string                       `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	TxCxlSts        *model.CancellationStatusCode `json:"TxCxlSts,omitempty" xml:"TxCxlSts,omitempty"`
	CxlStsRsnInf    []CancellationStatusReason    `json:"CxlStsRsnInf,omitempty" xml:"CxlStsRsnInf,omitempty"`
}

func (t PaymentTransactionStatus) Validate() error {
	if err := text35.CheckOptional("cxl_sts_id", t.CxlStsID); err != nil {
		return err
	}
	if err := text35.CheckOptional("orgnl_instr_id", t.OrgnlInstrID); err != nil {
		return err
	}
	if err := text35.CheckOptional("orgnl_end_to_end_id", t.OrgnlEndToEndID); err != nil {
		return err
	}
	if err := uetr.CheckOptional("orgnl_uetr", t.OrgnlUETR); err != nil {
		return err
	}
	if t.TxCxlSts != nil {
		if err := t.TxCxlSts.Validate(); err != nil {
			return err
		}
	}
	return validate.Each(t.CxlStsRsnInf)
}

// CancellationStatusReason explains why a cancellation was rejected or is
// still pending.
type CancellationStatusReason struct {
	Orgtr    *model.PartyIdentification `json:"Orgtr,omitempty" xml:"Orgtr,omitempty"`
	Rsn      *model.CodeOrProprietary   `json:"Rsn,omitempty" xml:"Rsn,omitempty"`
	AddtlInf []string                   `json:"AddtlInf,omitempty" xml:"AddtlInf,omitempty"`
}

func (r CancellationStatusReason) Validate() error {
	if r.Orgtr != nil {
		if err := r.Orgtr.Validate(); err != nil {
			return err
		}
	}
	if r.Rsn != nil {
		if err := r.Rsn.Validate(); err != nil {
			return err
		}
	}
	return text105.CheckEach("addtl_inf", r.AddtlInf)
}
