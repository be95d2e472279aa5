package v1_test

import (
	"net/http"
	"testing"

	"github.com/career-compass/projector/pkg/budget"
	v1 "github.com/career-compass/projector/pkg/controllers/v1"
	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetPreview() {
	suite.importReferenceTables()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", balancedRequest(""))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetPreviewResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	preview := response.Data
	assert.Equal(suite.T(), "4400", preview.Tax.MonthlyIncomeAfterTax.String())
	assert.Equal(suite.T(), "4400", preview.Ledger.Income.String())
	assert.Equal(suite.T(), "1500", preview.Ledger.Expenses.String())
	assert.Equal(suite.T(), "2900", preview.Ledger.Savings.String())
	assert.True(suite.T(), preview.Ledger.Remaining.IsZero())
	assert.True(suite.T(), preview.Ledger.Resolved)
	assert.Equal(suite.T(), budget.Balanced, preview.Balance)
	assert.Equal(suite.T(), "You have balanced your budget!", preview.Message)

	var categories []string
	for _, c := range preview.Ledger.Choices {
		categories = append(categories, c.Category)
	}
	assert.Equal(suite.T(), []string{"Housing", "Children", "Health Insurance", "Savings"}, categories)
}

func (suite *TestSuiteStandard) TestBudgetPreviewUnbalanced() {
	suite.importReferenceTables()

	tests := []struct {
		name      string
		choices   map[string]string
		balance   budget.Balance
		remaining string
	}{
		{
			"Percentage savings",
			map[string]string{"Housing": "Apartment", "Children": "None", "Health Insurance": "Private", "Savings": "10% of income"},
			budget.Underspent,
			"2460",
		},
		{
			"Bigger house",
			map[string]string{"Housing": "House", "Children": "None", "Health Insurance": "Private", "Savings": "Whatever is left"},
			budget.Balanced,
			"0",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			request := balancedRequest("")
			request["choices"] = tt.choices

			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", request)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.BudgetPreviewResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.balance, response.Data.Balance)
			assert.Equal(t, tt.remaining, response.Data.Ledger.Remaining.String())
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetPreviewOverspent() {
	suite.importReferenceTables()

	request := map[string]any{
		"profession":      "Welder",
		"maritalStatus":   "Married",
		"militaryService": "No",
		"choices": map[string]string{
			"Housing":          "House",
			"Children":         "None",
			"Health Insurance": "Private",
			"Savings":          "Whatever is left",
		},
	}

	// Married filers with 20000 pay no tax, leaving 1666.67 per month
	suite.importTable("civilian", professionCSVWithSalary("20000", "Welder"))

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", request)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetPreviewResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), budget.Overspent, response.Data.Balance)
	assert.True(suite.T(), response.Data.Ledger.Savings.IsZero(), "Savings must never be negative")
	assert.Equal(suite.T(), "1666.67", response.Data.Ledger.Income.String())
	assert.Equal(suite.T(), "-633.33", response.Data.Ledger.Remaining.String())
	assert.Equal(suite.T(), 3, diagnostics.Count(response.Data.Ledger.Diagnostics, diagnostics.BudgetOverspent))
}

func (suite *TestSuiteStandard) TestBudgetPreviewFails() {
	suite.importReferenceTables()

	tests := []struct {
		name   string
		change func(map[string]any)
		status int
	}{
		{"Invalid marital status", func(r map[string]any) { r["maritalStatus"] = "Complicated" }, http.StatusBadRequest},
		{"Invalid military service", func(r map[string]any) { r["militaryService"] = "Reserve" }, http.StatusBadRequest},
		{"Unknown profession", func(r map[string]any) { r["profession"] = "Astronaut" }, http.StatusNotFound},
		{"Choice missing", func(r map[string]any) {
			r["choices"] = map[string]string{"Housing": "Apartment"}
		}, http.StatusBadRequest},
		{"Military not eligible", func(r map[string]any) {
			r["choices"] = map[string]string{"Housing": "Apartment", "Children": "Military", "Health Insurance": "Private", "Savings": "Whatever is left"}
		}, http.StatusBadRequest},
		{"Unknown savings option", func(r map[string]any) {
			r["choices"] = map[string]string{"Housing": "Apartment", "Children": "None", "Health Insurance": "Private", "Savings": "Everything"}
		}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			request := balancedRequest("")
			tt.change(request)

			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", request)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetPreviewEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
