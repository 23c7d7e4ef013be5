package soap

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestParseFault_SOAP11 verifies SOAP 1.1 fault parsing.
func TestParseFault_SOAP11(t *testing.T) {
	faultXML := `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Client</faultcode>
      <faultstring>Server was unable to read request.</faultstring>
      <faultactor>http://www.webservicex.net/globalweather.asmx</faultactor>
      <detail><code>42</code></detail>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`

	fault, err := ParseFault([]byte(faultXML))
	if err != nil {
		t.Fatalf("ParseFault failed: %v", err)
	}
	if fault == nil {
		t.Fatal("ParseFault returned nil fault")
	}

	if fault.Code != "soap:Client" {
		t.Errorf("Code = %q, want %q", fault.Code, "soap:Client")
	}
	if fault.Reason != "Server was unable to read request." {
		t.Errorf("Reason = %q", fault.Reason)
	}
	if fault.Actor != "http://www.webservicex.net/globalweather.asmx" {
		t.Errorf("Actor = %q", fault.Actor)
	}
	if fault.Detail != "<code>42</code>" {
		t.Errorf("Detail = %q, want %q", fault.Detail, "<code>42</code>")
	}
	if !fault.IsClientFault() {
		t.Error("IsClientFault() = false, want true")
	}
}

// TestParseFault_SOAP12 verifies SOAP 1.2 fault parsing.
func TestParseFault_SOAP12(t *testing.T) {
	faultXML := `<?xml version="1.0" encoding="UTF-8"?>
<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope">
  <s:Body>
    <s:Fault>
      <s:Code>
        <s:Value>s:Receiver</s:Value>
        <s:Subcode>
          <s:Value>x:Unavailable</s:Value>
        </s:Subcode>
      </s:Code>
      <s:Reason>
        <s:Text xml:lang="en-US">The weather service is unavailable.</s:Text>
      </s:Reason>
    </s:Fault>
  </s:Body>
</s:Envelope>`

	fault, err := ParseFault([]byte(faultXML))
	if err != nil {
		t.Fatalf("ParseFault failed: %v", err)
	}
	if fault == nil {
		t.Fatal("ParseFault returned nil fault")
	}

	if fault.Code != "s:Receiver" {
		t.Errorf("Code = %q, want %q", fault.Code, "s:Receiver")
	}
	if fault.Subcode != "x:Unavailable" {
		t.Errorf("Subcode = %q, want %q", fault.Subcode, "x:Unavailable")
	}
	if !strings.Contains(fault.Reason, "unavailable") {
		t.Errorf("Reason = %q, want to contain 'unavailable'", fault.Reason)
	}
	if fault.IsClientFault() {
		t.Error("IsClientFault() = true, want false")
	}
}

// TestParseFault_NoFault verifies non-fault responses.
func TestParseFault_NoFault(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"regular response", `<soap:Envelope xmlns:soap="` + NsSoap11 + `"><soap:Body><EchoResponse xmlns="urn:echo"/></soap:Body></soap:Envelope>`},
		{"html error page", `<html><body>Bad Gateway</body></html>`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fault, err := ParseFault([]byte(tt.data))
			if err != nil {
				t.Fatalf("ParseFault failed: %v", err)
			}
			if fault != nil {
				t.Errorf("got fault %v, want nil", fault)
			}
		})
	}
}

// TestFault_Error verifies error message formatting.
func TestFault_Error(t *testing.T) {
	f := &Fault{Code: "s:Sender", Subcode: "x:Bad", Reason: "bad input"}
	want := "soap fault: s:Sender: x:Bad: bad input"
	if f.Error() != want {
		t.Errorf("Error() = %q, want %q", f.Error(), want)
	}
}

// TestIsFault verifies detection through wrapping.
func TestIsFault(t *testing.T) {
	wrapped := fmt.Errorf("GetCitiesByCountry: %w", &Fault{Code: "soap:Server"})
	if !IsFault(wrapped) {
		t.Error("IsFault(wrapped fault) = false, want true")
	}
	if IsFault(errors.New("plain")) {
		t.Error("IsFault(plain error) = true, want false")
	}
}
