package soap

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// Marshaller converts a typed payload into a SOAP message.
type Marshaller interface {
	Marshal(v interface{}) ([]byte, error)
}

// Unmarshaller converts a SOAP message back into a typed payload.
type Unmarshaller interface {
	Unmarshal(data []byte, v interface{}) error
}

// XMLMarshaller binds payload structs with encoding/xml struct tags and
// wraps them in a SOAP 1.1 envelope. It implements both Marshaller and
// Unmarshaller and holds no state.
type XMLMarshaller struct{}

// Marshal wraps v in an envelope body and serializes it.
func (XMLMarshaller) Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, errors.New("soap: marshal: nil payload")
	}
	data, err := NewEnvelope(v).Marshal()
	if err != nil {
		return nil, fmt.Errorf("soap: marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal decodes the single body element of the envelope in data into v.
// A fault in the body is returned as a *Fault error.
func (XMLMarshaller) Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return errors.New("soap: unmarshal: nil target")
	}

	env := responseEnvelope{Body: &responseBody{content: v}}
	if err := xml.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("soap: unmarshal %T: %w", v, err)
	}
	if !env.Body.present {
		return errors.New("soap: unmarshal: envelope has no body")
	}
	if env.Body.fault != nil {
		return env.Body.fault
	}
	return nil
}
