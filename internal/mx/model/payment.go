package model

import "mxmessage_backend/internal/mx/validate"

var uetr = validate.Constraint{Pattern: validate.PatternUETR}

// PaymentIdentification carries the references identifying a single payment
// transaction end to end.
type PaymentIdentification struct {
	InstrID    *string `json:"InstrId,omitempty" xml:"InstrId,omitempty"`
	EndToEndID string  `json:"EndToEndId" xml:"EndToEndId"`
	TxID       *string `json:"TxId,omitempty" xml:"TxId,omitempty"`
	UETR       *string `json:"UETR,omitempty" xml:"UETR,omitempty"`
	ClrSysRef  *string `json:"ClrSysRef,omitempty" xml:"ClrSysRef,omitempty"`
}

func (p *PaymentIdentification) Validate() error {
	if err := text35.CheckOptional("instr_id", p.InstrID); err != nil {
		return err
	}
	if err := text35.CheckString("end_to_end_id", p.EndToEndID); err != nil {
		return err
	}
	if err := text35.CheckOptional("tx_id", p.TxID); err != nil {
		return err
	}
	if err := uetr.CheckOptional("uetr", p.UETR); err != nil {
		return err
	}
	return text35.CheckOptional("clr_sys_ref", p.ClrSysRef)
}

// PaymentTypeInformation qualifies the processing of a payment.
type PaymentTypeInformation struct {
	InstrPrty *PriorityCode        `json:"InstrPrty,omitempty" xml:"InstrPrty,omitempty"`
	ClrChanl  *ClearingChannelCode `json:"ClrChanl,omitempty" xml:"ClrChanl,omitempty"`
	SvcLvl    []CodeOrProprietary  `json:"SvcLvl,omitempty" xml:"SvcLvl,omitempty"`
	LclInstrm *CodeOrProprietary   `json:"LclInstrm,omitempty" xml:"LclInstrm,omitempty"`
	CtgyPurp  *CodeOrProprietary   `json:"CtgyPurp,omitempty" xml:"CtgyPurp,omitempty"`
}

func (p *PaymentTypeInformation) Validate() error {
	if p.InstrPrty != nil {
		if err := p.InstrPrty.Validate(); err != nil {
			return err
		}
	}
	if p.ClrChanl != nil {
		if err := p.ClrChanl.Validate(); err != nil {
			return err
		}
	}
	if err := validate.Each(p.SvcLvl); err != nil {
		return err
	}
	if p.LclInstrm != nil {
		if err := p.LclInstrm.Validate(); err != nil {
			return err
		}
	}
	if p.CtgyPurp != nil {
		if err := p.CtgyPurp.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SettlementInstruction specifies how an interbank payment is settled.
type SettlementInstruction struct {
	SttlmMtd             SettlementMethodCode                         `json:"SttlmMtd" xml:"SttlmMtd"`
	SttlmAcct            *CashAccount                                 `json:"SttlmAcct,omitempty" xml:"SttlmAcct,omitempty"`
	ClrSys               *CodeOrProprietary                           `json:"ClrSys,omitempty" xml:"ClrSys,omitempty"`
	InstgRmbrsmntAgt     *BranchAndFinancialInstitutionIdentification `json:"InstgRmbrsmntAgt,omitempty" xml:"InstgRmbrsmntAgt,omitempty"`
	InstgRmbrsmntAgtAcct *CashAccount                                 `json:"InstgRmbrsmntAgtAcct,omitempty" xml:"InstgRmbrsmntAgtAcct,omitempty"`
	InstdRmbrsmntAgt     *BranchAndFinancialInstitutionIdentification `json:"InstdRmbrsmntAgt,omitempty" xml:"InstdRmbrsmntAgt,omitempty"`
	InstdRmbrsmntAgtAcct *CashAccount                                 `json:"InstdRmbrsmntAgtAcct,omitempty" xml:"InstdRmbrsmntAgtAcct,omitempty"`
}

func (s *SettlementInstruction) Validate() error {
	if err := s.SttlmMtd.Validate(); err != nil {
		return err
	}
	if s.SttlmAcct != nil {
		if err := s.SttlmAcct.Validate(); err != nil {
			return err
		}
	}
	if s.ClrSys != nil {
		if err := s.ClrSys.Validate(); err != nil {
			return err
		}
	}
	if s.InstgRmbrsmntAgt != nil {
		if err := s.InstgRmbrsmntAgt.Validate(); err != nil {
			return err
		}
	}
	if s.InstgRmbrsmntAgtAcct != nil {
		if err := s.InstgRmbrsmntAgtAcct.Validate(); err != nil {
			return err
		}
	}
	if s.InstdRmbrsmntAgt != nil {
		if err := s.InstdRmbrsmntAgt.Validate(); err != nil {
			return err
		}
	}
	if s.InstdRmbrsmntAgtAcct != nil {
		if err := s.InstdRmbrsmntAgtAcct.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RemittanceInformation carries the details that allow matching a payment
// with the items it settles. Only the unstructured form is modeled.
type RemittanceInformation struct {
	Ustrd []string `json:"Ustrd,omitempty" xml:"Ustrd,omitempty"`
}

func (r *RemittanceInformation) Validate() error {
	return text140.CheckEach("ustrd", r.Ustrd)
}

// OriginalGroupInformation references the message a transaction originally
// belonged to.
type OriginalGroupInformation struct {
	OrgnlMsgID   string  `json:"OrgnlMsgId" xml:"OrgnlMsgId"`
	OrgnlMsgNmID string  `json:"OrgnlMsgNmId" xml:"OrgnlMsgNmId"`
	OrgnlCreDtTm *string `json:"OrgnlCreDtTm,omitempty" xml:"OrgnlCreDtTm,omitempty"`
}

func (o *OriginalGroupInformation) Validate() error {
	if err := text35.CheckString("orgnl_msg_id", o.OrgnlMsgID); err != nil {
		return err
	}
	if err := text35.CheckString("orgnl_msg_nm_id", o.OrgnlMsgNmID); err != nil {
		return err
	}
	return dateTime.CheckOptional("orgnl_cre_dt_tm", o.OrgnlCreDtTm)
}
