package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/career-compass/projector/pkg/controllers/v1"
	"github.com/career-compass/projector/pkg/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTax() {
	suite.importReferenceTables()

	tests := []struct {
		name    string
		body    map[string]any
		monthly string
		total   string
	}{
		{"Income", map[string]any{"income": "60000", "maritalStatus": "Single"}, "4400", "7200"},
		{"Profession", map[string]any{"profession": "welder", "maritalStatus": "single", "militaryService": "No"}, "4400", "7200"},
		{"Military track", map[string]any{"profession": "Welder", "maritalStatus": "Single", "militaryService": "Part Time"}, "4400", "7200"},
		{"Married", map[string]any{"income": "60000", "maritalStatus": "Married"}, "4640", "4320"},
		{"Deduction above income", map[string]any{"income": "10000", "maritalStatus": "Single"}, "833.33", "0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/tax", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TaxResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, tt.monthly, response.Data.MonthlyIncomeAfterTax.String())
			assert.Equal(t, tt.total, response.Data.TotalTax.String())
		})
	}
}

func (suite *TestSuiteStandard) TestTaxFails() {
	suite.importReferenceTables()

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken body", `{"income": 5`, http.StatusBadRequest},
		{"Invalid status", map[string]any{"income": "60000", "maritalStatus": "Divorced"}, http.StatusBadRequest},
		{"Invalid service", map[string]any{"income": "60000", "maritalStatus": "Single", "militaryService": "Sometimes"}, http.StatusBadRequest},
		{"No income or profession", map[string]any{"maritalStatus": "Single"}, http.StatusBadRequest},
		{"Unknown profession", map[string]any{"profession": "Astronaut", "maritalStatus": "Single"}, http.StatusNotFound},
		{"Only civilian profile", map[string]any{"profession": "Registered Nurse", "maritalStatus": "Single", "militaryService": "FullTime"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/tax", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
			assert.NotEmpty(t, test.DecodeError(t, &recorder))
		})
	}
}

func (suite *TestSuiteStandard) TestTaxMissingBrackets() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tax", map[string]any{"income": "60000", "maritalStatus": "Single"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), &recorder), "no tax brackets found")
}

func (suite *TestSuiteStandard) TestTaxDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tax", map[string]any{"income": "60000", "maritalStatus": "Single"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
