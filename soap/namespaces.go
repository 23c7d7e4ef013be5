package soap

// XML namespace URIs for SOAP envelopes.
const (
	// NsSoap11 is the SOAP 1.1 envelope namespace.
	NsSoap11 = "http://schemas.xmlsoap.org/soap/envelope/"

	// NsSoap12 is the SOAP 1.2 envelope namespace. Only used when parsing faults.
	NsSoap12 = "http://www.w3.org/2003/05/soap-envelope"
)
