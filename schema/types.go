package schema

import (
	"encoding/xml"
)

// Namespace is the target namespace of the GlobalWeather WSDL.
const Namespace = "http://www.webserviceX.NET"

// ActionGetCitiesByCountry is the SOAP action of the GetCitiesByCountry operation.
const ActionGetCitiesByCountry = "GetCitiesByCountry"

// GetCitiesByCountry is the request payload.
type GetCitiesByCountry struct {
	XMLName     xml.Name `xml:"http://www.webserviceX.NET GetCitiesByCountry"`
	CountryName string   `xml:"CountryName"`
}

// GetCitiesByCountryResponse is the response payload.
type GetCitiesByCountryResponse struct {
	XMLName                  xml.Name `xml:"http://www.webserviceX.NET GetCitiesByCountryResponse"`
	GetCitiesByCountryResult string   `xml:"GetCitiesByCountryResult,omitempty"`
}
