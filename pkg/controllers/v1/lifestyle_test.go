package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/career-compass/projector/pkg/controllers/v1"
	"github.com/career-compass/projector/pkg/test"
	"github.com/stretchr/testify/assert"
)

// optionNames maps every category to the names of its options.
func optionNames(categories []v1.LifestyleCategory) ([]string, map[string][]string) {
	var order []string
	names := make(map[string][]string, len(categories))

	for _, c := range categories {
		order = append(order, c.Name)
		names[c.Name] = []string{}
		for _, o := range c.Options {
			names[c.Name] = append(names[c.Name], o.Option)
		}
	}
	return order, names
}

func (suite *TestSuiteStandard) TestLifestyle() {
	suite.importReferenceTables()

	tests := []struct {
		name     string
		query    string
		children []string
		health   []string
	}{
		{"Default", "", []string{"None"}, []string{"Private"}},
		{"Not serving", "?militaryService=No", []string{"None"}, []string{"Private"}},
		{"Part time", "?militaryService=Part%20Time", []string{"None", "Military"}, []string{"Private", "Military"}},
		{"Full time", "?militaryService=FullTime", []string{"None", "Military"}, []string{"Private", "Military"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/lifestyle-options"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.LifestyleListResponse
			test.DecodeResponse(t, &recorder, &response)

			order, names := optionNames(response.Data)
			assert.Equal(t, []string{"Housing", "Children", "Health Insurance", "Savings"}, order, "Savings must be last")
			assert.Equal(t, []string{"Apartment", "House"}, names["Housing"])
			assert.Equal(t, tt.children, names["Children"])
			assert.Equal(t, tt.health, names["Health Insurance"])
			assert.Equal(t, []string{"Whatever is left", "10% of income"}, names["Savings"])
		})
	}
}

func (suite *TestSuiteStandard) TestLifestyleInvalidService() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lifestyle-options?militaryService=Sometimes", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLifestyleEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lifestyle-options", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LifestyleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestLifestyleDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lifestyle-options", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
