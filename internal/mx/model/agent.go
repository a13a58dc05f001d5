package model

// BranchAndFinancialInstitutionIdentification identifies an agent and an
// optional branch.
type BranchAndFinancialInstitutionIdentification struct {
	FinInstnID FinancialInstitutionIdentification `json:"FinInstnId" xml:"FinInstnId"`
	BrnchID    *BranchData                        `json:"BrnchId,omitempty" xml:"BrnchId,omitempty"`
}

func (b *BranchAndFinancialInstitutionIdentification) Validate() error {
	if err := b.FinInstnID.Validate(); err != nil {
		return err
	}
	if b.BrnchID != nil {
		if err := b.BrnchID.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FinancialInstitutionIdentification identifies a financial institution by
// BIC, clearing system membership, LEI or name and address.
type FinancialInstitutionIdentification struct {
	BICFI       *string                               `json:"BICFI,omitempty" xml:"BICFI,omitempty"`
	ClrSysMmbID *ClearingSystemMemberIdentification   `json:"ClrSysMmbId,omitempty" xml:"ClrSysMmbId,omitempty"`
	LEI         *string                               `json:"LEI,omitempty" xml:"LEI,omitempty"`
	Nm          *string                               `json:"Nm,omitempty" xml:"Nm,omitempty"`
	PstlAdr     *PostalAddress                        `json:"PstlAdr,omitempty" xml:"PstlAdr,omitempty"`
	Othr        *GenericIdentification                `json:"Othr,omitempty" xml:"Othr,omitempty"`
}

func (f *FinancialInstitutionIdentification) Validate() error {
	if err := anyBIC.CheckOptional("bicfi", f.BICFI); err != nil {
		return err
	}
	if f.ClrSysMmbID != nil {
		if err := f.ClrSysMmbID.Validate(); err != nil {
			return err
		}
	}
	if err := lei.CheckOptional("lei", f.LEI); err != nil {
		return err
	}
	if err := text140.CheckOptional("nm", f.Nm); err != nil {
		return err
	}
	if f.PstlAdr != nil {
		if err := f.PstlAdr.Validate(); err != nil {
			return err
		}
	}
	if f.Othr != nil {
		if err := f.Othr.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ClearingSystemMemberIdentification identifies an agent through its
// membership of a clearing system.
type ClearingSystemMemberIdentification struct {
	ClrSysID *CodeOrProprietary `json:"ClrSysId,omitempty" xml:"ClrSysId,omitempty"`
	MmbID    string             `json:"MmbId" xml:"MmbId"`
}

func (c *ClearingSystemMemberIdentification) Validate() error {
	if c.ClrSysID != nil {
		if err := c.ClrSysID.Validate(); err != nil {
			return err
		}
	}
	return text35.CheckString("mmb_id", c.MmbID)
}

// BranchData identifies a specific branch of a financial institution.
type BranchData struct {
	ID      *string        `json:"Id,omitempty" xml:"Id,omitempty"`
	LEI     *string        `json:"LEI,omitempty" xml:"LEI,omitempty"`
	Nm      *string        `json:"Nm,omitempty" xml:"Nm,omitempty"`
	PstlAdr *PostalAddress `json:"PstlAdr,omitempty" xml:"PstlAdr,omitempty"`
}

func (b *BranchData) Validate() error {
	if err := text35.CheckOptional("id", b.ID); err != nil {
		return err
	}
	if err := lei.CheckOptional("lei", b.LEI); err != nil {
		return err
	}
	if err := text140.CheckOptional("nm", b.Nm); err != nil {
		return err
	}
	if b.PstlAdr != nil {
		if err := b.PstlAdr.Validate(); err != nil {
			return err
		}
	}
	return nil
}
