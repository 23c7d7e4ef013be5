// Package schema holds the XML bindings for the GlobalWeather service
// operations used by this module.
//
// The service answers GetCitiesByCountry with a single string element that
// itself contains an XML table. Use [GetCitiesByCountryResponse.Cities] to
// read it.
package schema
