// Package envelope implements the MX business envelope: the Business
// Application Header (head.001.001.02) and the Envelope element wrapping a
// header and a Document.
package envelope

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mxmessage_backend/internal/mx/model"
	"mxmessage_backend/internal/mx/validate"
)

// HeaderNamespace is the XML namespace of the Business Application Header.
const HeaderNamespace = "urn:iso:std:iso:20022:tech:xsd:head.001.001.02"

var (
	text35   = validate.Constraint{MinLen: 1, MaxLen: 35}
	dateTime = validate.Constraint{Pattern: validate.PatternDateTimeOffset}
)

// AppHdr is the Business Application Header preceding every MX document.
type AppHdr struct {
	XMLName   xml.Name `json:"-" xml:"AppHdr"`
	Fr        Party    `json:"Fr" xml:"Fr"`
	To        Party    `json:"To" xml:"To"`
	BizMsgIdr string   `json:"BizMsgIdr" xml:"BizMsgIdr"`
	MsgDefIdr string   `json:"MsgDefIdr" xml:"MsgDefIdr"`
	BizSvc    *string  `json:"BizSvc,omitempty" xml:"BizSvc,omitempty"`
	CreDt     string   `json:"CreDt" xml:"CreDt"`
	Prty      *string  `json:"Prty,omitempty" xml:"Prty,omitempty"`
}

func (h *AppHdr) Validate() error {
	if err := h.Fr.Validate(); err != nil {
		return err
	}
	if err := h.To.Validate(); err != nil {
		return err
	}
	if err := text35.CheckString("biz_msg_idr", h.BizMsgIdr); err != nil {
		return err
	}
	if err := text35.CheckString("msg_def_idr", h.MsgDefIdr); err != nil {
		return err
	}
	if err := text35.CheckOptional("biz_svc", h.BizSvc); err != nil {
		return err
	}
	if err := dateTime.CheckString("cre_dt", h.CreDt); err != nil {
		return err
	}
	return text35.CheckOptional("prty", h.Prty)
}

// Party is the sender or receiver of a business message: a financial
// institution or an organisation.
type Party struct {
	FIID  *FinancialInstitution      `json:"FIId,omitempty" xml:"FIId,omitempty"`
	OrgID *model.PartyIdentification `json:"OrgId,omitempty" xml:"OrgId,omitempty"`
}

func (p *Party) Validate() error {
	if err := validate.CheckChoice("fr_or_to", p.FIID != nil, p.OrgID != nil); err != nil {
		return err
	}
	if p.FIID != nil {
		if err := p.FIID.Validate(); err != nil {
			return err
		}
	}
	if p.OrgID != nil {
		if err := p.OrgID.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FinancialInstitution wraps the agent identification inside Fr/To.
type FinancialInstitution struct {
	FinInstnID model.FinancialInstitutionIdentification `json:"FinInstnId" xml:"FinInstnId"`
}

func (f *FinancialInstitution) Validate() error {
	return f.FinInstnID.Validate()
}

// Builder assembles an AppHdr from sender and receiver BICs, defaulting the
// business message identifier and creation date.
type Builder struct {
	hdr AppHdr
}

// NewBuilder creates a header builder for the given message definition
// identifier, e.g. "pacs.008.001.08".
func NewBuilder(msgDefIdr string) *Builder {
	return &Builder{hdr: AppHdr{
		MsgDefIdr: msgDefIdr,
		BizMsgIdr: uuid.NewString(),
		CreDt:     time.Now().UTC().Format("2006-01-02T15:04:05-07:00"),
	}}
}

// From sets the sender BIC.
func (b *Builder) From(bic string) *Builder {
	b.hdr.Fr = bicParty(bic)
	return b
}

// To sets the receiver BIC.
func (b *Builder) To(bic string) *Builder {
	b.hdr.To = bicParty(bic)
	return b
}

// BizMsgIdr overrides the generated business message identifier.
func (b *Builder) BizMsgIdr(id string) *Builder {
	b.hdr.BizMsgIdr = id
	return b
}

// BizSvc sets the business service, e.g. "swift.cbprplus.02".
func (b *Builder) BizSvc(svc string) *Builder {
	b.hdr.BizSvc = &svc
	return b
}

// Build validates and returns the assembled header.
func (b *Builder) Build() (*AppHdr, error) {
	hdr := b.hdr
	if err := hdr.Validate(); err != nil {
		return nil, err
	}
	return &hdr, nil
}

func bicParty(bic string) Party {
	return Party{FIID: &FinancialInstitution{
		FinInstnID: model.FinancialInstitutionIdentification{BICFI: &bic},
	}}
}

// Envelope wraps a Business Application Header and a message document for
// serialization as a complete MX message.
type Envelope struct {
	AppHdr       AppHdr
	Document     validate.Validator
	DocNamespace string
}

// Validate validates the header, then the document.
func (e *Envelope) Validate() error {
	if err := e.AppHdr.Validate(); err != nil {
		return err
	}
	return e.Document.Validate()
}

// ToXML renders the complete MX message with XML declaration, namespaced
// AppHdr and Document elements.
func (e *Envelope) ToXML() ([]byte, error) {
	hdrXML, err := xml.MarshalIndent(&e.AppHdr, "    ", "    ")
	if err != nil {
		return nil, fmt.Errorf("serialize AppHdr: %w", err)
	}
	// Inject the header namespace on the root AppHdr element.
	hdrXML = bytes.Replace(hdrXML,
		[]byte("<AppHdr>"),
		[]byte(`<AppHdr xmlns="`+HeaderNamespace+`">`), 1)

	docXML, err := xml.MarshalIndent(e.Document, "        ", "    ")
	if err != nil {
		return nil, fmt.Errorf("serialize Document: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString("<Envelope>\n")
	buf.WriteString("    ")
	buf.Write(hdrXML)
	buf.WriteString("\n")
	buf.WriteString(`    <Document xmlns="` + e.DocNamespace + `">` + "\n")
	buf.WriteString("        ")
	buf.Write(docXML)
	buf.WriteString("\n    </Document>\n")
	buf.WriteString("</Envelope>\n")
	return buf.Bytes(), nil
}

// Raw is the wire form of an envelope before the document payload is bound
// to a concrete message type.
type Raw struct {
	AppHdr   AppHdr
	Document []byte // inner XML of the Document element
}

// Extract splits an MX XML message into its header and the raw Document
// payload. Messages without an Envelope wrapper (a bare Document root) are
// accepted with a zero AppHdr.
func Extract(data []byte) (*Raw, error) {
	if bytes.Contains(data, []byte("<Envelope")) || bytes.Contains(data, []byte("<AppHdr")) {
		var env struct {
			XMLName  xml.Name `xml:"Envelope"`
			AppHdr   AppHdr   `xml:"AppHdr"`
			Document struct {
				Inner []byte `xml:",innerxml"`
			} `xml:"Document"`
		}
		if err := xml.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("deserialize envelope: %w", err)
		}
		return &Raw{AppHdr: env.AppHdr, Document: bytes.TrimSpace(env.Document.Inner)}, nil
	}

	var doc struct {
		XMLName xml.Name `xml:"Document"`
		Inner   []byte   `xml:",innerxml"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("deserialize document: %w", err)
	}
	return &Raw{Document: bytes.TrimSpace(doc.Inner)}, nil
}
