package model

import "mxmessage_backend/internal/mx/validate"

var (
	iban   = validate.Constraint{Pattern: validate.PatternIBAN}
	text34 = validate.Constraint{MinLen: 1, MaxLen: 34}
)

// CashAccount identifies an account held at an agent.
type CashAccount struct {
	ID  AccountIdentificationChoice `json:"Id" xml:"Id"`
	Ccy *string                     `json:"Ccy,omitempty" xml:"Ccy,omitempty"`
	Nm  *string                     `json:"Nm,omitempty" xml:"Nm,omitempty"`
}

func (a *CashAccount) Validate() error {
	if err := a.ID.Validate(); err != nil {
		return err
	}
	if err := currencyCode.CheckOptional("ccy", a.Ccy); err != nil {
		return err
	}
	return text70.CheckOptional("nm", a.Nm)
}

// AccountIdentificationChoice holds either an IBAN or a proprietary account
// identification.
type AccountIdentificationChoice struct {
	IBAN *string                       `json:"IBAN,omitempty" xml:"IBAN,omitempty"`
	Othr *GenericAccountIdentification `json:"Othr,omitempty" xml:"Othr,omitempty"`
}

func (c *AccountIdentificationChoice) Validate() error {
	if err := validate.CheckChoice("acct_id", c.IBAN != nil, c.Othr != nil); err != nil {
		return err
	}
	if err := iban.CheckOptional("iban", c.IBAN); err != nil {
		return err
	}
	if c.Othr != nil {
		if err := c.Othr.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GenericAccountIdentification is a proprietary account identification.
type GenericAccountIdentification struct {
	ID      string             `json:"Id" xml:"Id"`
	SchmeNm *CodeOrProprietary `json:"SchmeNm,omitempty" xml:"SchmeNm,omitempty"`
	Issr    *string            `json:"Issr,omitempty" xml:"Issr,omitempty"`
}

func (g *GenericAccountIdentification) Validate() error {
	if err := text34.CheckString("id", g.ID); err != nil {
		return err
	}
	if g.SchmeNm != nil {
		if err := g.SchmeNm.Validate(); err != nil {
			return err
		}
	}
	return text35.CheckOptional("issr", g.Issr)
}
