package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/career-compass/projector/pkg/controllers/v1"
	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/models"
	"github.com/career-compass/projector/pkg/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestParticipantCreate() {
	suite.importReferenceTables()

	response := suite.createParticipant("  Alex ")
	original := response.Data.Original
	twin := response.Data.Twin

	assert.Equal(suite.T(), "Alex", original.Name)
	assert.Equal(suite.T(), models.ServiceNone, original.MilitaryService)
	assert.Equal(suite.T(), "2900", original.Savings.String())
	assert.Nil(suite.T(), original.TwinOfID)
	assert.Len(suite.T(), original.Choices, 4)

	assert.Equal(suite.T(), "Alex-mil", twin.Name)
	assert.Equal(suite.T(), models.ServicePartTime, twin.MilitaryService)
	require.NotNil(suite.T(), twin.TwinOfID)
	assert.Equal(suite.T(), original.ID, *twin.TwinOfID)
	assert.Equal(suite.T(), "1250", twin.Expenses.String())
	assert.Equal(suite.T(), "3150", twin.Savings.String())
	assert.True(suite.T(), twin.RemainingBudget.IsZero())

	children, ok := twin.Choice("Children")
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), models.MilitaryOption, children.Option)

	health, ok := twin.Choice("Health Insurance")
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), models.MilitaryOption, health.Option)
	assert.Equal(suite.T(), "50", health.Cost.String())
}

// TestParticipantCreateIneligibleTwinChoice verifies that the part time
// twin of a full time participant does not keep military housing.
func (suite *TestSuiteStandard) TestParticipantCreateIneligibleTwinChoice() {
	suite.importReferenceTables()
	suite.importTable("lifestyle", lifestyleCSV+"Housing,Military,0,\n")

	request := balancedRequest("Sam")
	request["militaryService"] = "Full Time"
	request["choices"].(map[string]string)["Housing"] = "Military"

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/participants", request)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ParticipantCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	housing, _ := response.Data.Original.Choice("Housing")
	assert.Equal(suite.T(), models.MilitaryOption, housing.Option)

	housing, _ = response.Data.Twin.Choice("Housing")
	assert.Equal(suite.T(), "Apartment", housing.Option)
	assert.Equal(suite.T(), "1250", response.Data.Twin.Expenses.String())
	assert.Equal(suite.T(), "3150", response.Data.Twin.Savings.String())

	require.Len(suite.T(), response.Diagnostics, 1)
	assert.Equal(suite.T(), diagnostics.IneligibleChoice, response.Diagnostics[0].Kind)
}

func (suite *TestSuiteStandard) TestParticipantCreateFails() {
	suite.importReferenceTables()
	_ = suite.createParticipant("Alex")

	tests := []struct {
		name   string
		change func(map[string]any)
		status int
	}{
		{"Name missing", func(r map[string]any) { r["name"] = " " }, http.StatusBadRequest},
		{"Name not unique", func(r map[string]any) { r["name"] = "Alex" }, http.StatusBadRequest},
		{"Twin suffix", func(r map[string]any) { r["name"] = "Sam-mil" }, http.StatusBadRequest},
		{"Profession missing", func(r map[string]any) { r["profession"] = "" }, http.StatusNotFound},
		{"Budget not balanced", func(r map[string]any) {
			r["choices"] = map[string]string{"Housing": "Apartment", "Children": "None", "Health Insurance": "Private", "Savings": "10% of income"}
		}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			request := balancedRequest("Sam")
			tt.change(request)

			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/participants", request)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}

	// None of the failed submissions must have stored anything
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/participants", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ParticipantListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

// TestParticipantCreateTwinConflict verifies that the original is not
// stored when its twin cannot be.
func (suite *TestSuiteStandard) TestParticipantCreateTwinConflict() {
	suite.importReferenceTables()

	// The name of the twin is already taken
	require.Nil(suite.T(), models.DB.Create(&models.Participant{Name: "Robin-mil"}).Error)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/participants", balancedRequest("Robin"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrParticipantNameNotUnique.Error(), test.DecodeError(suite.T(), &recorder))

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/participants?name=Robin", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ParticipantListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0, "The original was stored without its twin")
}

func (suite *TestSuiteStandard) TestParticipantList() {
	suite.importReferenceTables()
	_ = suite.createParticipant("Alex")
	_ = suite.createParticipant("Sam")

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"All", "", []string{"Alex", "Alex-mil", "Sam", "Sam-mil"}},
		{"By name", "?name=Sam", []string{"Sam"}},
		{"By profession", "?profession=Welder", []string{"Alex", "Alex-mil", "Sam", "Sam-mil"}},
		{"By military service", "?militaryService=Part%20Time", []string{"Alex-mil", "Sam-mil"}},
		{"No match", "?name=Robin", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/participants"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ParticipantListResponse
			test.DecodeResponse(t, &recorder, &response)

			names := []string{}
			for _, p := range response.Data {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestParticipantListInvalidService() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/participants?militaryService=Sometimes", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestParticipantGet() {
	suite.importReferenceTables()
	created := suite.createParticipant("Alex")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/participants/"+created.Data.Twin.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ParticipantResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "Alex-mil", response.Data.Name)
	require.Len(suite.T(), response.Data.Choices, 4)
	for i, c := range response.Data.Choices {
		assert.Equal(suite.T(), i, c.Position, "Choices are not in order")
	}
	assert.Equal(suite.T(), models.SavingsCategory, response.Data.Choices[3].Category)
}

func (suite *TestSuiteStandard) TestParticipantGetFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
		{"Not found", "4e743e94-6a4b-44d6-aba5-d77c87103ff7", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/participants/"+tt.id, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestParticipantDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/participants", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
