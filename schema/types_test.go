package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshah/go-globalweather/schema"
	"github.com/kshah/go-globalweather/soap"
)

func TestGetCitiesByCountry_RoundTrip(t *testing.T) {
	var m soap.XMLMarshaller

	for _, country := range []string{"Canada", "", "Côte d'Ivoire"} {
		data, err := m.Marshal(&schema.GetCitiesByCountry{CountryName: country})
		require.NoError(t, err)

		var got schema.GetCitiesByCountry
		require.NoError(t, m.Unmarshal(data, &got))
		assert.Equal(t, country, got.CountryName)
	}
}

func TestGetCitiesByCountryResponse_RoundTrip(t *testing.T) {
	var m soap.XMLMarshaller
	want := schema.GetCitiesByCountryResponse{
		GetCitiesByCountryResult: "<NewDataSet><Table><Country>Canada</Country><City>Toronto</City></Table></NewDataSet>",
	}

	data, err := m.Marshal(&want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "&lt;NewDataSet&gt;")

	var got schema.GetCitiesByCountryResponse
	require.NoError(t, m.Unmarshal(data, &got))
	assert.Equal(t, want.GetCitiesByCountryResult, got.GetCitiesByCountryResult)

	cities, err := got.Cities()
	require.NoError(t, err)
	assert.Equal(t, []schema.City{{Country: "Canada", Name: "Toronto"}}, cities)
}
