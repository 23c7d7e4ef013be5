package soap

import (
	"encoding/xml"
)

// Envelope is an outgoing SOAP 1.1 envelope.
type Envelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	NsSoap  string   `xml:"xmlns:soap,attr"`

	Header *Header `xml:"soap:Header,omitempty"`
	Body   Body    `xml:"soap:Body"`
}

// Header carries optional SOAP header blocks. Every block must declare its
// own XMLName.
type Header struct {
	Blocks []interface{}
}

// Body wraps the single payload element.
type Body struct {
	Content interface{} `xml:",omitempty"`
}

// NewEnvelope creates an envelope around content.
func NewEnvelope(content interface{}) *Envelope {
	return &Envelope{
		NsSoap: NsSoap11,
		Body:   Body{Content: content},
	}
}

// WithHeader appends a header block.
func (e *Envelope) WithHeader(block interface{}) *Envelope {
	if e.Header == nil {
		e.Header = &Header{}
	}
	e.Header.Blocks = append(e.Header.Blocks, block)
	return e
}

// Marshal serializes the envelope to XML, including the XML declaration.
func (e *Envelope) Marshal() ([]byte, error) {
	data, err := xml.Marshal(e)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

// responseEnvelope decodes an incoming envelope. Element names are matched
// without namespace so SOAP 1.2 fault replies can be read as well.
type responseEnvelope struct {
	XMLName xml.Name      `xml:"Envelope"`
	Body    *responseBody `xml:"Body"`
}

// responseBody decodes the single body element into content, or into fault
// when the body carries a SOAP fault.
type responseBody struct {
	content interface{}
	fault   *Fault
	present bool
}

// UnmarshalXML implements xml.Unmarshaler.
func (b *responseBody) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	b.present = true
	consumed := false
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}

		switch se := token.(type) {
		case xml.StartElement:
			if consumed {
				return xml.UnmarshalError("found multiple elements inside SOAP body; not wrapped document/literal")
			}
			consumed = true

			if se.Name.Local == "Fault" && (se.Name.Space == NsSoap11 || se.Name.Space == NsSoap12) {
				b.fault = &Fault{}
				if err := d.DecodeElement(b.fault, &se); err != nil {
					return err
				}
				continue
			}

			if b.content == nil {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			if err := d.DecodeElement(b.content, &se); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}
