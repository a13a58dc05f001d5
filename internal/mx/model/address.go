package model

import "mxmessage_backend/internal/mx/validate"

// AddressProfile selects which optional address components are mandatory in
// a given message context.
type AddressProfile struct {
	TownRequired    bool
	CountryRequired bool
}

// PostalAddress is a structured postal address. All components are optional
// in the base schema; context-specific variants tighten individual fields
// through a profile.
type PostalAddress struct {
	Dept        *string  `json:"Dept,omitempty" xml:"Dept,omitempty"`
	SubDept     *string  `json:"SubDept,omitempty" xml:"SubDept,omitempty"`
	StrtNm      *string  `json:"StrtNm,omitempty" xml:"StrtNm,omitempty"`
	BldgNb      *string  `json:"BldgNb,omitempty" xml:"BldgNb,omitempty"`
	BldgNm      *string  `json:"BldgNm,omitempty" xml:"BldgNm,omitempty"`
	Flr         *string  `json:"Flr,omitempty" xml:"Flr,omitempty"`
	PstBx       *string  `json:"PstBx,omitempty" xml:"PstBx,omitempty"`
	Room        *string  `json:"Room,omitempty" xml:"Room,omitempty"`
	PstCd       *string  `json:"PstCd,omitempty" xml:"PstCd,omitempty"`
	TwnNm       *string  `json:"TwnNm,omitempty" xml:"TwnNm,omitempty"`
	TwnLctnNm   *string  `json:"TwnLctnNm,omitempty" xml:"TwnLctnNm,omitempty"`
	DstrctNm    *string  `json:"DstrctNm,omitempty" xml:"DstrctNm,omitempty"`
	CtrySubDvsn *string  `json:"CtrySubDvsn,omitempty" xml:"CtrySubDvsn,omitempty"`
	Ctry        *string  `json:"Ctry,omitempty" xml:"Ctry,omitempty"`
	AdrLine     []string `json:"AdrLine,omitempty" xml:"AdrLine,omitempty"`
}

func (a *PostalAddress) Validate() error {
	return a.ValidateProfile(AddressProfile{})
}

// ValidateProfile validates the address against a context-specific profile.
func (a *PostalAddress) ValidateProfile(prof AddressProfile) error {
	if prof.TownRequired && a.TwnNm == nil {
		return validate.NewError(validate.CodeRequired, "twn_nm is required in this context")
	}
	if prof.CountryRequired && a.Ctry == nil {
		return validate.NewError(validate.CodeRequired, "ctry is required in this context")
	}
	if err := text70.CheckOptional("dept", a.Dept); err != nil {
		return err
	}
	if err := text70.CheckOptional("sub_dept", a.SubDept); err != nil {
		return err
	}
	if err := text70.CheckOptional("strt_nm", a.StrtNm); err != nil {
		return err
	}
	if err := text16.CheckOptional("bldg_nb", a.BldgNb); err != nil {
		return err
	}
	if err := text35.CheckOptional("bldg_nm", a.BldgNm); err != nil {
		return err
	}
	if err := text70.CheckOptional("flr", a.Flr); err != nil {
		return err
	}
	if err := text16.CheckOptional("pst_bx", a.PstBx); err != nil {
		return err
	}
	if err := text70.CheckOptional("room", a.Room); err != nil {
		return err
	}
	if err := text16.CheckOptional("pst_cd", a.PstCd); err != nil {
		return err
	}
	if err := text35.CheckOptional("twn_nm", a.TwnNm); err != nil {
		return err
	}
	if err := text35.CheckOptional("twn_lctn_nm", a.TwnLctnNm); err != nil {
		return err
	}
	if err := text35.CheckOptional("dstrct_nm", a.DstrctNm); err != nil {
		return err
	}
	if err := text35.CheckOptional("ctry_sub_dvsn", a.CtrySubDvsn); err != nil {
		return err
	}
	if err := country.CheckOptional("ctry", a.Ctry); err != nil {
		return err
	}
	return text70.CheckEach("adr_line", a.AdrLine)
}
