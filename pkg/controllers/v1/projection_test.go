package v1_test

import (
	"net/http"
	"strings"

	v1 "github.com/career-compass/projector/pkg/controllers/v1"
	"github.com/career-compass/projector/pkg/diagnostics"
	"github.com/career-compass/projector/pkg/models"
	"github.com/career-compass/projector/pkg/projection"
	"github.com/career-compass/projector/pkg/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestProjections() {
	suite.importReferenceTables()
	_ = suite.createParticipant("Alex")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projections", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProjectionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 2)

	civilian := response.Data[0]
	assert.Equal(suite.T(), "Alex", civilian.Name)
	assert.Equal(suite.T(), models.Civilian, civilian.Track)
	assert.Len(suite.T(), civilian.Samples, models.ProjectionMonths)
	assert.Empty(suite.T(), civilian.Diagnostics)
	assert.Equal(suite.T(), "400", civilian.Samples[0].Savings.String())
	assert.Equal(suite.T(), "300", civilian.Samples[0].NetWorth.String())

	military := response.Data[1]
	assert.Equal(suite.T(), "Alex-mil", military.Name)
	assert.Equal(suite.T(), models.Military, military.Track)
	assert.Len(suite.T(), military.Samples, models.ProjectionMonths)
	assert.Equal(suite.T(), "3150", military.Samples[0].Savings.String())
	assert.Equal(suite.T(), "3050", military.Samples[0].NetWorth.String())

	// Savings compound after the first month
	assert.True(suite.T(), military.Samples[1].Savings.GreaterThan(military.Samples[0].Savings.Mul(decimal.NewFromInt(2))))
}

func (suite *TestSuiteStandard) TestProjectionsProfessionNotFound() {
	suite.importReferenceTables()
	_ = suite.createParticipant("Alex")

	// Remove the military reference data after the submission
	suite.importTable("military", professionCSV("Registered Nurse"))

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projections", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProjectionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 2)

	military := response.Data[1]
	require.Len(suite.T(), military.Diagnostics, 1)
	assert.Equal(suite.T(), diagnostics.ProfessionNotFound, military.Diagnostics[0].Kind)
	assert.Len(suite.T(), military.Samples, models.ProjectionMonths)
	for _, s := range military.Samples {
		assert.True(suite.T(), s.NetWorth.IsZero(), "month %d is not zero-filled", s.Month)
	}
}

func (suite *TestSuiteStandard) TestProjectionsEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projections", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProjectionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestProjectionExport() {
	suite.importReferenceTables()
	_ = suite.createParticipant("Alex")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projections/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.Equal(suite.T(), "text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "projections.csv")

	lines := strings.Split(strings.TrimSpace(recorder.Body.String()), "\n")
	require.Len(suite.T(), lines, 1+2*models.ProjectionMonths)
	assert.Equal(suite.T(), strings.Join(projection.Header, ","), lines[0])
	assert.Equal(suite.T(), "Alex,Welder,1,400.00,-100.00,300.00,$300.00", lines[1])
	assert.Equal(suite.T(), "Alex-mil,Welder,1,3150.00,-100.00,3050.00,\"$3,050.00\"", lines[1+models.ProjectionMonths])
}

func (suite *TestSuiteStandard) TestProjectionDBError() {
	suite.CloseDB()

	for _, path := range []string{"", "/export"} {
		recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projections"+path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	}
}
