package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// City is one row of the GetCitiesByCountry result table.
type City struct {
	Country string
	Name    string
}

// Cities parses the embedded NewDataSet table of the response. An empty
// result yields no cities and no error.
//
//	<NewDataSet>
//	  <Table>
//	    <Country>Canada</Country>
//	    <City>Toronto</City>
//	  </Table>
//	</NewDataSet>
func (r *GetCitiesByCountryResponse) Cities() ([]City, error) {
	result := strings.TrimSpace(r.GetCitiesByCountryResult)
	if result == "" {
		return nil, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(result); err != nil {
		return nil, fmt.Errorf("schema: parse city table: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("schema: parse city table: no root element")
	}

	var cities []City
	for _, row := range root.SelectElements("Table") {
		cities = append(cities, City{
			Country: childText(row, "Country"),
			Name:    childText(row, "City"),
		})
	}
	return cities, nil
}

func childText(e *etree.Element, tag string) string {
	if c := e.SelectElement(tag); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}
