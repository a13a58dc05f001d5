// Package registry is the single source of truth for supported message
// types: their short and full identifiers, XML element names, namespaces and
// decode functions.
package registry

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"mxmessage_backend/internal/mx/camt029"
	"mxmessage_backend/internal/mx/pacs004"
	"mxmessage_backend/internal/mx/pacs008"
	"mxmessage_backend/internal/mx/validate"
)

// Entry describes one supported message type.
type Entry struct {
	// ShortForm is the compact identifier, e.g. "pacs.008".
	ShortForm string
	// FullForm is the versioned identifier, e.g. "pacs.008.001.08".
	FullForm string
	// XMLElement is the document root element, e.g. "FIToFICstmrCdtTrf".
	XMLElement string
	// Namespace is the Document XML namespace for this message type.
	Namespace string
	// New returns an empty message tree for this type.
	New func() validate.Validator
}

var entries = []Entry{
	{
		ShortForm:  "pacs.008",
		FullForm:   "pacs.008.001.08",
		XMLElement: "FIToFICstmrCdtTrf",
		Namespace:  "urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08",
		New:        func() validate.Validator { return &pacs008.FIToFICustomerCreditTransfer{} },
	},
	{
		ShortForm:  "pacs.004",
		FullForm:   "pacs.004.001.09",
		XMLElement: "PmtRtr",
		Namespace:  "urn:iso:std:iso:20022:tech:xsd:pacs.004.001.09",
		New:        func() validate.Validator { return &pacs004.PaymentReturn{} },
	},
	{
		ShortForm:  "camt.029",
		FullForm:   "camt.029.001.09",
		XMLElement: "RsltnOfInvstgtn",
		Namespace:  "urn:iso:std:iso:20022:tech:xsd:camt.029.001.09",
		New:        func() validate.Validator { return &camt029.ResolutionOfInvestigation{} },
	},
}

// Entries returns all supported message types.
func Entries() []Entry {
	return entries
}

// Lookup resolves a message type by short form ("pacs.008"), full form
// ("pacs.008.001.08") or the compact spelling without dots ("pacs008").
func Lookup(messageType string) (*Entry, error) {
	normalized := normalize(messageType)
	for i := range entries {
		if normalize(entries[i].ShortForm) == normalized || normalize(entries[i].FullForm) == normalized {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("unknown message type: %s", messageType)
}

// LookupByElement resolves a message type by its document root element name.
func LookupByElement(element string) (*Entry, error) {
	for i := range entries {
		if entries[i].XMLElement == element {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("unknown document element: %s", element)
}

// DecodeJSON parses a JSON payload into this entry's message tree.
func (e *Entry) DecodeJSON(data []byte) (validate.Validator, error) {
	msg := e.New()
	if err := json.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("deserialize %s JSON: %w", e.ShortForm, err)
	}
	return msg, nil
}

// DecodeXML parses the document payload XML into this entry's message tree.
func (e *Entry) DecodeXML(data []byte) (validate.Validator, error) {
	msg := e.New()
	if err := xml.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("deserialize %s XML: %w", e.ShortForm, err)
	}
	return msg, nil
}

// DetectElement returns the root element name of an XML document payload.
func DetectElement(data []byte) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("detect document element: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local, nil
		}
	}
}

func normalize(messageType string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(messageType)), ".", "")
}
