// Package pacs008 models the FIToFICustomerCreditTransfer message
// (pacs.008.001.08), the interbank customer credit transfer.
package pacs008

import (
	"encoding/xml"

	"mxmessage_backend/internal/mx/model"
	"mxmessage_backend/internal/mx/validate"
)

var (
	text35   = validate.Constraint{MinLen: 1, MaxLen: 35}
	text140  = validate.Constraint{MinLen: 1, MaxLen: 140}
	dateTime = validate.Constraint{Pattern: validate.PatternDateTimeOffset}
	isoDate  = validate.Constraint{Pattern: validate.MustPattern(`[0-9]{4}-[0-9]{2}-[0-9]{2}`)}
	numTxs   = validate.Constraint{Pattern: validate.MustPattern(`[0-9]{1,15}`)}
)

// FIToFICustomerCreditTransfer is the pacs.008 document root.
type FIToFICustomerCreditTransfer struct {
	XMLName     xml.Name                    `json:"-" xml:"FIToFICstmrCdtTrf"`
	GrpHdr      GroupHeader                 `json:"GrpHdr" xml:"GrpHdr"`
	CdtTrfTxInf []CreditTransferTransaction `json:"CdtTrfTxInf" xml:"CdtTrfTxInf"`
}

func (d *FIToFICustomerCreditTransfer) Validate() error {
	if err := d.GrpHdr.Validate(); err != nil {
		return err
	}
	return validate.Each(d.CdtTrfTxInf)
}

// Sections returns the group header and each transaction as independently
// validatable units.
func (d *FIToFICustomerCreditTransfer) Sections() []validate.Validator {
	sections := make([]validate.Validator, 0, len(d.CdtTrfTxInf)+1)
	sections = append(sections, &d.GrpHdr)
	for i := range d.CdtTrfTxInf {
		sections = append(sections, &d.CdtTrfTxInf[i])
	}
	return sections
}

// GroupHeader is the set of characteristics shared by all transactions in
// the message.
type GroupHeader struct {
	MsgID             string                                             `json:"MsgId" xml:"MsgId"`
	CreDtTm           string                                             `json:"CreDtTm" xml:"CreDtTm"`
	NbOfTxs           string                                             `json:"NbOfTxs" xml:"NbOfTxs"`
	CtrlSum           *float64                                           `json:"CtrlSum,omitempty" xml:"CtrlSum,omitempty"`
	TtlIntrBkSttlmAmt *model.ActiveCurrencyAndAmount                     `json:"TtlIntrBkSttlmAmt,omitempty" xml:"TtlIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt     *string                                            `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	SttlmInf          model.SettlementInstruction                        `json:"SttlmInf" xml:"SttlmInf"`
	PmtTpInf          *model.PaymentTypeInformation                      `json:"PmtTpInf,omitempty" xml:"PmtTpInf,omitempty"`
	InstgAgt          *model.BranchAndFinancialInstitutionIdentification `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt          *model.BranchAndFinancialInstitutionIdentification `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
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
	if g.TtlIntrBkSttlmAmt != nil {
		if err := g.TtlIntrBkSttlmAmt.Validate(); err != nil {
			return err
		}
	}
	if err := isoDate.CheckOptional("intr_bk_sttlm_dt", g.IntrBkSttlmDt); err != nil {
		return err
	}
	if err := g.SttlmInf.Validate(); err != nil {
		return err
	}
	if g.PmtTpInf != nil {
		if err := g.PmtTpInf.Validate(); err != nil {
			return err
		}
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

// CreditTransferTransaction is a single credit transfer within the message.
type CreditTransferTransaction struct {
	PmtID           model.PaymentIdentification                        `json:"PmtId" xml:"PmtId"`
	PmtTpInf        *model.PaymentTypeInformation                      `json:"PmtTpInf,omitempty" xml:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt  model.ActiveCurrencyAndAmount                      `json:"IntrBkSttlmAmt" xml:"IntrBkSttlmAmt"`
	IntrBkSttlmDt   *string                                            `json:"IntrBkSttlmDt,omitempty" xml:"IntrBkSttlmDt,omitempty"`
	SttlmPrty       *model.PriorityCode                                `json:"SttlmPrty,omitempty" xml:"SttlmPrty,omitempty"`
	AccptncDtTm     *string                                            `json:"AccptncDtTm,omitempty" xml:"AccptncDtTm,omitempty"`
	InstdAmt        *model.ActiveCurrencyAndAmount                     `json:"InstdAmt,omitempty" xml:"InstdAmt,omitempty"`
	XchgRate        *float64                                           `json:"XchgRate,omitempty" xml:"XchgRate,omitempty"`
	ChrgBr          model.ChargeBearerCode                             `json:"ChrgBr" xml:"ChrgBr"`
	ChrgsInf        []Charges                                          `json:"ChrgsInf,omitempty" xml:"ChrgsInf,omitempty"`
	PrvsInstgAgt    *model.BranchAndFinancialInstitutionIdentification `json:"PrvsInstgAgt1,omitempty" xml:"PrvsInstgAgt1,omitempty"`
	InstgAgt        *model.BranchAndFinancialInstitutionIdentification `json:"InstgAgt,omitempty" xml:"InstgAgt,omitempty"`
	InstdAgt        *model.BranchAndFinancialInstitutionIdentification `json:"InstdAgt,omitempty" xml:"InstdAgt,omitempty"`
	IntrmyAgt1      *model.BranchAndFinancialInstitutionIdentification `json:"IntrmyAgt1,omitempty" xml:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct  *model.CashAccount                                 `json:"IntrmyAgt1Acct,omitempty" xml:"IntrmyAgt1Acct,omitempty"`
	UltmtDbtr       *model.PartyIdentification                         `json:"UltmtDbtr,omitempty" xml:"UltmtDbtr,omitempty"`
	InitgPty        *model.PartyIdentification                         `json:"InitgPty,omitempty" xml:"InitgPty,omitempty"`
	Dbtr            model.PartyIdentification                          `json:"Dbtr" xml:"Dbtr"`
	DbtrAcct        *model.CashAccount                                 `json:"DbtrAcct,omitempty" xml:"DbtrAcct,omitempty"`
	DbtrAgt         model.BranchAndFinancialInstitutionIdentification  `json:"DbtrAgt" xml:"DbtrAgt"`
	DbtrAgtAcct     *model.CashAccount                                 `json:"DbtrAgtAcct,omitempty" xml:"DbtrAgtAcct,omitempty"`
	CdtrAgt         model.BranchAndFinancialInstitutionIdentification  `json:"CdtrAgt" xml:"CdtrAgt"`
	CdtrAgtAcct     *model.CashAccount                                 `json:"CdtrAgtAcct,omitempty" xml:"CdtrAgtAcct,omitempty"`
	Cdtr            model.PartyIdentification                          `json:"Cdtr" xml:"Cdtr"`
	CdtrAcct        *model.CashAccount                                 `json:"CdtrAcct,omitempty" xml:"CdtrAcct,omitempty"`
	UltmtCdtr       *model.PartyIdentification                         `json:"UltmtCdtr,omitempty" xml:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt []InstructionForCreditorAgent                      `json:"InstrForCdtrAgt,omitempty" xml:"InstrForCdtrAgt,omitempty"`
	InstrForNxtAgt  []InstructionForNextAgent                          `json:"InstrForNxtAgt,omitempty" xml:"InstrForNxtAgt,omitempty"`
	Purp            *model.CodeOrProprietary                           `json:"Purp,omitempty" xml:"Purp,omitempty"`
	RmtInf          *model.RemittanceInformation                       `json:"RmtInf,omitempty" xml:"RmtInf,omitempty"`
}

func (t CreditTransferTransaction) Validate() error {
	if err := t.PmtID.Validate(); err != nil {
		return err
	}
	if t.PmtTpInf != nil {
		if err := t.PmtTpInf.Validate(); err != nil {
			return err
		}
	}
	if err := t.IntrBkSttlmAmt.Validate(); err != nil {
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
	if err := dateTime.CheckOptional("accptnc_dt_tm", t.AccptncDtTm); err != nil {
		return err
	}
	if t.InstdAmt != nil {
		if err := t.InstdAmt.Validate(); err != nil {
			return err
		}
	}
	if err := t.ChrgBr.Validate(); err != nil {
		return err
	}
	if err := validate.Each(t.ChrgsInf); err != nil {
		return err
	}
	if t.PrvsInstgAgt != nil {
		if err := t.PrvsInstgAgt.Validate(); err != nil {
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
	if t.IntrmyAgt1 != nil {
		if err := t.IntrmyAgt1.Validate(); err != nil {
			return err
		}
	}
	if t.IntrmyAgt1Acct != nil {
		if err := t.IntrmyAgt1Acct.Validate(); err != nil {
			return err
		}
	}
	if t.UltmtDbtr != nil {
		if err := t.UltmtDbtr.Validate(); err != nil {
			return err
		}
	}
	if t.InitgPty != nil {
		if err := t.InitgPty.Validate(); err != nil {
			return err
		}
	}
	if err := t.Dbtr.ValidateProfile(model.PartyProfile{NameRequired: true}); err != nil {
		return err
	}
	if t.DbtrAcct != nil {
		if err := t.DbtrAcct.Validate(); err != nil {
			return err
		}
	}
	if err := t.DbtrAgt.Validate(); err != nil {
		return err
	}
	if t.DbtrAgtAcct != nil {
		if err := t.DbtrAgtAcct.Validate(); err != nil {
			return err
		}
	}
	if err := t.CdtrAgt.Validate(); err != nil {
		return err
	}
	if t.CdtrAgtAcct != nil {
		if err := t.CdtrAgtAcct.Validate(); err != nil {
			return err
		}
	}
	if err := t.Cdtr.ValidateProfile(model.PartyProfile{NameRequired: true}); err != nil {
		return err
	}
	if t.CdtrAcct != nil {
		if err := t.CdtrAcct.Validate(); err != nil {
			return err
		}
	}
	if t.UltmtCdtr != nil {
		if err := t.UltmtCdtr.Validate(); err != nil {
			return err
		}
	}
	if err := validate.Each(t.InstrForCdtrAgt); err != nil {
		return err
	}
	if err := validate.Each(t.InstrForNxtAgt); err != nil {
		return err
	}
	if t.Purp != nil {
		if err := t.Purp.Validate(); err != nil {
			return err
		}
	}
	if t.RmtInf != nil {
		if err := t.RmtInf.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Charges records a charge levied on the transaction and the agent taking it.
type Charges struct {
	Amt model.ActiveCurrencyAndAmount                     `json:"Amt" xml:"Amt"`
	Agt model.BranchAndFinancialInstitutionIdentification `json:"Agt" xml:"Agt"`
}

func (c Charges) Validate() error {
	if err := c.Amt.Validate(); err != nil {
		return err
	}
	return c.Agt.Validate()
}

// InstructionForCreditorAgent carries further processing instructions for
// the creditor agent.
type InstructionForCreditorAgent struct {
	Cd       *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	InstrInf *string `json:"InstrInf,omitempty" xml:"InstrInf,omitempty"`
}

func (i InstructionForCreditorAgent) Validate() error {
	if i.Cd != nil {
		if err := checkInstructionCode("cd", *i.Cd); err != nil {
			return err
		}
	}
	return text140.CheckOptional("instr_inf", i.InstrInf)
}

// InstructionForNextAgent carries further processing instructions for the
// next agent in the chain.
type InstructionForNextAgent struct {
	InstrInf *string `json:"InstrInf,omitempty" xml:"InstrInf,omitempty"`
}

func (i InstructionForNextAgent) Validate() error {
	return text140.CheckOptional("instr_inf", i.InstrInf)
}

func checkInstructionCode(field, value string) error {
	switch value {
	case "CHQB", "HOLD", "PHOB", "TELB":
		return nil
	}
	return validate.NewError(validate.CodePattern,
		field+" does not match the required pattern")
}
