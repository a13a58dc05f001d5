package model

import (
	"encoding/xml"
	"strconv"
	"strings"

	"mxmessage_backend/internal/mx/validate"
)

var currencyCode = validate.Constraint{Pattern: validate.PatternCurrencyCode}

// ActiveCurrencyAndAmount is a monetary amount with its currency carried as
// an attribute. The schema performs no range or precision checking on the
// numeric value; only the currency code is constrained.
type ActiveCurrencyAndAmount struct {
	Ccy   string  `json:"Ccy"`
	Value float64 `json:"Value"`
}

func (a *ActiveCurrencyAndAmount) Validate() error {
	return currencyCode.CheckString("ccy", a.Ccy)
}

// MarshalXML renders the amount as element text with the currency attribute,
// e.g. <IntrBkSttlmAmt Ccy="EUR">1250.00</IntrBkSttlmAmt>.
func (a ActiveCurrencyAndAmount) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr, xml.Attr{
		Name:  xml.Name{Local: "Ccy"},
		Value: a.Ccy,
	})
	return e.EncodeElement(formatAmount(a.Value), start)
}

// UnmarshalXML parses the attribute-plus-chardata amount form.
func (a *ActiveCurrencyAndAmount) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "Ccy" {
			a.Ccy = attr.Value
		}
	}
	var text string
	if err := d.DecodeElement(&text, &start); err != nil {
		return err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return err
	}
	a.Value = value
	return nil
}

// formatAmount renders a monetary value with two decimal places, the form
// used throughout CBPR+ sample messages.
func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
