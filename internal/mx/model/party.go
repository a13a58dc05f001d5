// Package model defines the ISO 20022 component types shared across message
// definitions. The schema publishes families of near-identical copies of
// these types (PartyIdentification1351..1355, PostalAddress241..243 and so
// on) differing only in which optional fields are mandatory in a given
// context; here each family is collapsed into one type whose required fields
// are selected through a validation profile.
package model

import "mxmessage_backend/internal/mx/validate"

var (
	text35   = validate.Constraint{MinLen: 1, MaxLen: 35}
	text70   = validate.Constraint{MinLen: 1, MaxLen: 70}
	text140  = validate.Constraint{MinLen: 1, MaxLen: 140}
	text16   = validate.Constraint{MinLen: 1, MaxLen: 16}
	text4    = validate.Constraint{MinLen: 1, MaxLen: 4}
	text2048 = validate.Constraint{MinLen: 1, MaxLen: 2048}

	country  = validate.Constraint{Pattern: validate.PatternCountryCode}
	anyBIC   = validate.Constraint{Pattern: validate.PatternBIC}
	lei      = validate.Constraint{Pattern: validate.PatternLEI}
	phone    = validate.Constraint{Pattern: validate.MustPattern(`\+[0-9]{1,3}-[0-9()+\-]{1,30}`)}
	isoDate  = validate.Constraint{Pattern: validate.MustPattern(`[0-9]{4}-[0-9]{2}-[0-9]{2}`)}
	dateTime = validate.Constraint{Pattern: validate.PatternDateTimeOffset}
)

// PartyProfile selects which optional party components are mandatory in a
// given message context.
type PartyProfile struct {
	NameRequired    bool
	AddressRequired bool
}

// PartyIdentification identifies a party by name, address, identification
// or country of residence.
type PartyIdentification struct {
	Nm        *string        `json:"Nm,omitempty" xml:"Nm,omitempty"`
	PstlAdr   *PostalAddress `json:"PstlAdr,omitempty" xml:"PstlAdr,omitempty"`
	ID        *PartyChoice   `json:"Id,omitempty" xml:"Id,omitempty"`
	CtryOfRes *string        `json:"CtryOfRes,omitempty" xml:"CtryOfRes,omitempty"`
	CtctDtls  *Contact       `json:"CtctDtls,omitempty" xml:"CtctDtls,omitempty"`
}

func (p *PartyIdentification) Validate() error {
	return p.ValidateProfile(PartyProfile{})
}

// ValidateProfile validates the party against a context-specific profile.
func (p *PartyIdentification) ValidateProfile(prof PartyProfile) error {
	if prof.NameRequired && p.Nm == nil {
		return validate.NewError(validate.CodeRequired, "nm is required in this context")
	}
	if prof.AddressRequired && p.PstlAdr == nil {
		return validate.NewError(validate.CodeRequired, "pstl_adr is required in this context")
	}
	if err := text140.CheckOptional("nm", p.Nm); err != nil {
		return err
	}
	if p.PstlAdr != nil {
		if err := p.PstlAdr.Validate(); err != nil {
			return err
		}
	}
	if p.ID != nil {
		if err := p.ID.Validate(); err != nil {
			return err
		}
	}
	if err := country.CheckOptional("ctry_of_res", p.CtryOfRes); err != nil {
		return err
	}
	if p.CtctDtls != nil {
		if err := p.CtctDtls.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PartyChoice holds either an organisation or a private person
// identification.
type PartyChoice struct {
	OrgID  *OrganisationIdentification `json:"OrgId,omitempty" xml:"OrgId,omitempty"`
	PrvtID *PersonIdentification       `json:"PrvtId,omitempty" xml:"PrvtId,omitempty"`
}

func (c *PartyChoice) Validate() error {
	if err := validate.CheckChoice("id", c.OrgID != nil, c.PrvtID != nil); err != nil {
		return err
	}
	if c.OrgID != nil {
		if err := c.OrgID.Validate(); err != nil {
			return err
		}
	}
	if c.PrvtID != nil {
		if err := c.PrvtID.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PartyOrAgentChoice holds either a party or a financial institution agent.
type PartyOrAgentChoice struct {
	Pty *PartyIdentification                         `json:"Pty,omitempty" xml:"Pty,omitempty"`
	Agt *BranchAndFinancialInstitutionIdentification `json:"Agt,omitempty" xml:"Agt,omitempty"`
}

func (c *PartyOrAgentChoice) Validate() error {
	if err := validate.CheckChoice("pty_or_agt", c.Pty != nil, c.Agt != nil); err != nil {
		return err
	}
	if c.Pty != nil {
		if err := c.Pty.Validate(); err != nil {
			return err
		}
	}
	if c.Agt != nil {
		if err := c.Agt.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// OrganisationIdentification identifies an organisation by BIC, LEI or a
// proprietary scheme.
type OrganisationIdentification struct {
	AnyBIC *string                 `json:"AnyBIC,omitempty" xml:"AnyBIC,omitempty"`
	LEI    *string                 `json:"LEI,omitempty" xml:"LEI,omitempty"`
	Othr   []GenericIdentification `json:"Othr,omitempty" xml:"Othr,omitempty"`
}

func (o *OrganisationIdentification) Validate() error {
	if err := anyBIC.CheckOptional("any_bic", o.AnyBIC); err != nil {
		return err
	}
	if err := lei.CheckOptional("lei", o.LEI); err != nil {
		return err
	}
	return validate.Each(o.Othr)
}

// PersonIdentification identifies a private person by birth details or a
// proprietary scheme.
type PersonIdentification struct {
	DtAndPlcOfBirth *DateAndPlaceOfBirth    `json:"DtAndPlcOfBirth,omitempty" xml:"DtAndPlcOfBirth,omitempty"`
	Othr            []GenericIdentification `json:"Othr,omitempty" xml:"Othr,omitempty"`
}

func (p *PersonIdentification) Validate() error {
	if p.DtAndPlcOfBirth != nil {
		if err := p.DtAndPlcOfBirth.Validate(); err != nil {
			return err
		}
	}
	return validate.Each(p.Othr)
}

// DateAndPlaceOfBirth carries the birth details of a private person.
type DateAndPlaceOfBirth struct {
	BirthDt     string  `json:"BirthDt" xml:"BirthDt"`
	PrvcOfBirth *string `json:"PrvcOfBirth,omitempty" xml:"PrvcOfBirth,omitempty"`
	CityOfBirth string  `json:"CityOfBirth" xml:"CityOfBirth"`
	CtryOfBirth string  `json:"CtryOfBirth" xml:"CtryOfBirth"`
}

func (d *DateAndPlaceOfBirth) Validate() error {
	if err := isoDate.CheckString("birth_dt", d.BirthDt); err != nil {
		return err
	}
	if err := text35.CheckOptional("prvc_of_birth", d.PrvcOfBirth); err != nil {
		return err
	}
	if err := text35.CheckString("city_of_birth", d.CityOfBirth); err != nil {
		return err
	}
	return country.CheckString("ctry_of_birth", d.CtryOfBirth)
}

// GenericIdentification is a proprietary identification with an optional
// scheme name and issuer.
type GenericIdentification struct {
	ID      string             `json:"Id" xml:"Id"`
	SchmeNm *CodeOrProprietary `json:"SchmeNm,omitempty" xml:"SchmeNm,omitempty"`
	Issr    *string            `json:"Issr,omitempty" xml:"Issr,omitempty"`
}

func (g GenericIdentification) Validate() error {
	if err := text35.CheckString("id", g.ID); err != nil {
		return err
	}
	if g.SchmeNm != nil {
		if err := g.SchmeNm.Validate(); err != nil {
			return err
		}
	}
	return text35.CheckOptional("issr", g.Issr)
}

// CodeOrProprietary is the recurring choice between an external code and a
// proprietary value. Every SchmeNm/SvcLvl/LclInstrm/CtgyPurp/Rsn choice in
// the schema shares this shape.
type CodeOrProprietary struct {
	Cd    *string `json:"Cd,omitempty" xml:"Cd,omitempty"`
	Prtry *string `json:"Prtry,omitempty" xml:"Prtry,omitempty"`
}

func (c CodeOrProprietary) Validate() error {
	if err := validate.CheckChoice("cd_or_prtry", c.Cd != nil, c.Prtry != nil); err != nil {
		return err
	}
	if err := text4.CheckOptional("cd", c.Cd); err != nil {
		return err
	}
	return text35.CheckOptional("prtry", c.Prtry)
}

// Contact carries contact details for a party.
type Contact struct {
	Nm       *string `json:"Nm,omitempty" xml:"Nm,omitempty"`
	PhneNb   *string `json:"PhneNb,omitempty" xml:"PhneNb,omitempty"`
	MobNb    *string `json:"MobNb,omitempty" xml:"MobNb,omitempty"`
	EmailAdr *string `json:"EmailAdr,omitempty" xml:"EmailAdr,omitempty"`
	Dept     *string `json:"Dept,omitempty" xml:"Dept,omitempty"`
}

func (c *Contact) Validate() error {
	if err := text140.CheckOptional("nm", c.Nm); err != nil {
		return err
	}
	if err := phone.CheckOptional("phne_nb", c.PhneNb); err != nil {
		return err
	}
	if err := phone.CheckOptional("mob_nb", c.MobNb); err != nil {
		return err
	}
	if err := text2048.CheckOptional("email_adr", c.EmailAdr); err != nil {
		return err
	}
	return text70.CheckOptional("dept", c.Dept)
}
