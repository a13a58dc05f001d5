// Package pacs004 models the PaymentReturn message (pacs.004.001.09), used
// to return funds for a previously settled payment.
package pacs004

import (
	"encoding/xml"

	"mxmessage_backend/internal/mx/model"
	"mxmessage_backend/internal/mx/validate"
)

var (
	text35   = validate.Constraint{MinLen: 1, MaxLen: 35}
	text105  = validate.Constraint{MinLen: 1, MaxLen: 105}
	dateTime = validate.Constraint{Pattern: validate.PatternDateTimeOffset}
	isoDate  = validate.Constraint{Pattern: validate.MustPattern(`[0-9]{4}-[0-9]{2}-[0-9]{2}`)}
	numTxs   = validate.Constraint{Pattern: validate.MustPattern(`[0-9]{1,15}`)}
	uetr     = validate.Constraint{Pattern: validate.PatternUETR}
)

// PaymentReturn is the pacs.004 document root.
type PaymentReturn struct {
	XMLName xml.Name             `json:"-" xml:"PmtRtr"`
	GrpHdr  GroupHeader          `json:"GrpHdr" xml:"GrpHdr"`
	TxInf   []PaymentTransaction `json:"TxInf,omitempty" xml:"TxInf,omitempty"`
}

func (d *PaymentReturn) Validate() error {
	if err := d.GrpHdr.Validate(); err != nil {
		return err
	}
	return validate.Each(d.TxInf)
}

// Sections returns the group header and each returned transaction as
// independently validatable units.
func (d *PaymentReturn) Sections() []validate.Validator {
	sections := make([]validate.Validator, 0, len(d.TxInf)+1)
	sections = append(sections, &d.GrpHdr)
	for i := range d.TxInf {
		sections = append(sections, &d.TxInf[i])
	}
	return sections
}

// GroupHeader is the set of characteristics shared by all returned
// transactions in the message.
type GroupHeader struct {
	MsgID         string                                             `json:"MsgId" xml:"MsgId"`
	CreDtTm       string                                             `json:"CreDtTm" xml:"CreDtTm"`
	NbOfTxs       string                                             `json:"NbOfTxs" xml:"NbOfTxs"`
	TtlRtrdAmt    *model.ActiveCurrencyAndAmount                     `json:"TtlRtrdIntrBkSttlmAmt,omitempty" xml:"TtlRtrdIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt *string                                            `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	SttlmInf      model.SettlementInstruction                        `json:"SttlmInf" xml:"SttlmInf"`
	InstgAgt      *model.BranchAndFinancialInstitutionIdentification `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt      *model.BranchAndFinancialInstitutionIdentification `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
}

func (g *GroupHeader) Validate() error {
	if err := text35.CheckString("msg_id", g.MsgID); err != nil {
		return err
	}
	if err := dateTime.CheckString("cre_dt_tm", g.CreDtTm); err != nil {
		return err
	}
	if err := numTxs.CheckString("nb_of_txs", g.NbOfTxs); err != nil {
		return err
	}
	if g.TtlRtrdAmt != nil {
		if err := g.TtlRtrdAmt.Validate(); err != nil {
			return err
		}
	}
	if err := isoDate.CheckOptional("intr_bk_sttlm_dt", g.IntrBkSttlmDt); err != nil {
		return err
	}
	if err := g.SttlmInf.Validate(); err != nil {
		return err
	}
	if g.InstgAgt != nil {
		if err := g.InstgAgt.Validate(); err != nil {
			return err
		}
	}
	if g.InstdAgt != nil {
		if err := g.InstdAgt.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PaymentTransaction is a single returned transaction with its references
// to the original payment.
type PaymentTransaction struct {
	RtrID               *string                                            `json:"RtrId,omitempty" xml:"RtrId,omitempty"`
	OrgnlGrpInf         *model.OriginalGroupInformation                    `json:"OrgnlGrpInf,omitempty" xml:"OrgnlGrpInf,omitempty"`
	OrgnlInstrID        *string                                            `json:"OrgnlInstrId,omitempty" xml:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndID     *string                                            `json:"OrgnlEndToEndId,omitempty" xml:"OrgnlEndToEndId,omitempty"`
	OrgnlTxID           *string                                            `json:"OrgnlTxId,omitempty" xml:"OrgnlTxId,omitempty"`
	OrgnlUETR           *string                                            `json:"OrgnlUETR,omitempty" xml:"OrgnlUETR,omitempty"`
	OrgnlIntrBkSttlmAmt *model.ActiveCurrencyAndAmount                     `json:"OrgnlIntrBkSttlmAmt,omitempty" xml:"OrgnlIntrBkSttlmAmt,omitempty"`
	RtrdIntrBkSttlmAmt  model.ActiveCurrencyAndAmount                      `json:"RtrdIntrBkSttlmAmt" xml:"RtrdIntrBkSttlmAmt"`
	IntrBkSttlmDt       *string                                            `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	SttlmPrty           *model.PriorityCode                                `json:"SttlmPrty,omitempty" xml:"SttlmPrty,omitempty"`
	ChrgBr              *model.ChargeBearerCode                            `json:"ChrgBr,omitempty" xml:"ChrgBr,omitempty"`
	InstgAgt            *model.BranchAndFinancialInstitutionIdentification `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt            *model.BranchAndFinancialInstitutionIdentification `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
	RtrRsnInf           []ReturnReason                                     `json:"RtrRsnInf,omitempty" xml:"RtrRsnInf,omitempty"`
}

func (t PaymentTransaction) Validate() error {
	if err := text35.CheckOptional("rtr_id", t.RtrID); err != nil {
		return err
	}
	if t.OrgnlGrpInf != nil {
		if err := t.OrgnlGrpInf.Validate(); err != nil {
			return err
		}
	}
	if err := text35.CheckOptional("orgnl_instr_id", t.OrgnlInstrID); err != nil {
		return err
	}
	if err := text35.CheckOptional("orgnl_end_to_end_id", t.OrgnlEndToEndID); err != nil {
		return err
	}
	if err := text35.CheckOptional("orgnl_tx_id", t.OrgnlTxID); err != nil {
		return err
	}
	if err := uetr.CheckOptional("orgnl_uetr", t.OrgnlUETR); err != nil {
		return err
	}
	if t.OrgnlIntrBkSttlmAmt != nil {
		if err := t.OrgnlIntrBkSttlmAmt.Validate(); err != nil {
			return err
		}
	}
	if err := t.RtrdIntrBkSttlmAmt.Validate(); err != nil {
		return err
	}
	if err := isoDate.CheckOptional("intr_bk_sttlm_dt", t.IntrBkSttlmDt); err != nil {
		return err
	}
	if t.SttlmPrty != nil {
		if err := t.SttlmPrty.Validate(); err != nil {
			return err
		}
	}
	if t.ChrgBr != nil {
		if err := t.ChrgBr.Validate(); err != nil {
			return err
		}
	}
	if t.InstgAgt != nil {
		if err := t.InstgAgt.Validate(); err != nil {
			return err
		}
	}
	if t.InstdAgt != nil {
		if err := t.InstdAgt.Validate(); err != nil {
			return err
		}
	}
	return validate.Each(t.RtrRsnInf)
}

// ReturnReason explains why a transaction is being returned.
type ReturnReason struct {
	Orgtr    *model.PartyIdentification `json:"Orgtr,omitempty" xml:"Orgtr,omitempty"`
	Rsn      *model.CodeOrProprietary   `json:"Rsn,omitempty" xml:"Rsn,omitempty"`
	AddtlInf []string                   `json:"AddtlInf,omitempty" xml:"AddtlInf,omitempty"`
}

func (r ReturnReason) Validate() error {
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
