package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/career-compass/projector/pkg/controllers/v1"
	"github.com/career-compass/projector/pkg/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRootGet() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), v1.RootLinks{
		Tax:              "http://example.com/v1/tax",
		LifestyleOptions: "http://example.com/v1/lifestyle-options",
		Budgets:          "http://example.com/v1/budgets",
		Participants:     "http://example.com/v1/participants",
		Projections:      "http://example.com/v1/projections",
		Export:           "http://example.com/v1/projections/export",
		Comparison:       "http://example.com/v1/reports/comparison",
		Import:           "http://example.com/v1/import",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/tax", "OPTIONS, POST"},
		{"http://example.com/v1/lifestyle-options", "OPTIONS, GET"},
		{"http://example.com/v1/budgets", "OPTIONS, POST"},
		{"http://example.com/v1/participants", "OPTIONS, GET, POST"},
		{"http://example.com/v1/participants/4e743e94-6a4b-44d6-aba5-d77c87103ff7", "OPTIONS, GET"},
		{"http://example.com/v1/projections", "OPTIONS, GET"},
		{"http://example.com/v1/projections/export", "OPTIONS, GET"},
		{"http://example.com/v1/reports/comparison", "OPTIONS, GET"},
		{"http://example.com/v1/import/tax", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, tt.allow, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestCleanup() {
	suite.importReferenceTables()
	_ = suite.createParticipant("Alex")

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/participants", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var participants v1.ParticipantListResponse
	test.DecodeResponse(suite.T(), &recorder, &participants)
	assert.Len(suite.T(), participants.Data, 0, "There are participants left")

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/lifestyle-options", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var lifestyle v1.LifestyleListResponse
	test.DecodeResponse(suite.T(), &recorder, &lifestyle)
	assert.Len(suite.T(), lifestyle.Data, 0, "There are lifestyle options left")
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
