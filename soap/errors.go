package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// Fault represents a SOAP fault returned by the service.
// SOAP 1.1 and SOAP 1.2 faults are normalized into the same fields.
type Fault struct {
	// Code is the fault code (e.g., "soap:Client", "soap:Server").
	Code string

	// Subcode is the SOAP 1.2 subcode, if any.
	Subcode string

	// Reason is the human-readable fault string.
	Reason string

	// Actor identifies the node that raised the fault (SOAP 1.1 faultactor).
	Actor string

	// Detail is the raw inner XML of the detail element.
	Detail string
}

// Error implements the error interface.
func (f *Fault) Error() string {
	var parts []string
	if f.Code != "" {
		parts = append(parts, f.Code)
	}
	if f.Subcode != "" {
		parts = append(parts, f.Subcode)
	}
	if f.Reason != "" {
		parts = append(parts, f.Reason)
	}
	return "soap fault: " + strings.Join(parts, ": ")
}

// IsClientFault returns true if the fault blames the request.
func (f *Fault) IsClientFault() bool {
	return strings.HasSuffix(f.Code, "Client") || strings.HasSuffix(f.Code, "Sender")
}

// UnmarshalXML implements xml.Unmarshaler for both SOAP versions.
func (f *Fault) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw faultXML
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}

	*f = Fault{
		Code:    raw.Code11,
		Reason:  raw.String11,
		Actor:   raw.Actor11,
		Detail:  strings.TrimSpace(raw.Detail11.Inner),
		Subcode: raw.Code12.Subcode.Value,
	}
	if f.Code == "" {
		f.Code = raw.Code12.Value
	}
	if f.Reason == "" {
		f.Reason = raw.Reason12.Text
	}
	if f.Detail == "" {
		f.Detail = strings.TrimSpace(raw.Detail12.Inner)
	}
	return nil
}

// IsFault returns true if the error is a SOAP Fault.
func IsFault(err error) bool {
	var f *Fault
	return errors.As(err, &f)
}

// ParseFault parses a SOAP response and returns a Fault if present.
// Returns nil if the response does not contain a fault.
func ParseFault(data []byte) (*Fault, error) {
	// Quick check if this might be a fault
	if !bytes.Contains(data, []byte("Fault")) {
		return nil, nil
	}

	env := responseEnvelope{Body: &responseBody{}}
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse fault: %w", err)
	}
	return env.Body.fault, nil
}

type innerXML struct {
	Inner string `xml:",innerxml"`
}

// faultXML covers SOAP 1.1 (lowercase, unqualified children) and SOAP 1.2
// (qualified Code/Reason/Detail) fault layouts.
type faultXML struct {
	Code11   string   `xml:"faultcode"`
	String11 string   `xml:"faultstring"`
	Actor11  string   `xml:"faultactor"`
	Detail11 innerXML `xml:"detail"`

	Code12 struct {
		Value   string `xml:"Value"`
		Subcode struct {
			Value string `xml:"Value"`
		} `xml:"Subcode"`
	} `xml:"Code"`
	Reason12 struct {
		Text string `xml:"Text"`
	} `xml:"Reason"`
	Detail12 innerXML `xml:"Detail"`
}
