package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	v1 "github.com/career-compass/projector/pkg/controllers/v1"
	"github.com/career-compass/projector/pkg/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// v1Router returns a router that serves only the v1 API with a twin suffix.
func v1Router(suffix string) *gin.Engine {
	s := v1.DefaultSettings()
	s.Twin.Suffix = suffix

	r := gin.New()
	v1.RegisterRoutes(r.Group("/v1"), s)
	return r
}

func submit(r *gin.Engine, name string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(balancedRequest(name))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "http://example.com/v1/participants", bytes.NewBuffer(body))
	r.ServeHTTP(recorder, req)
	return recorder
}

// TestSettingsPerRouter verifies that every registration of the v1 routes
// keeps its own settings.
func (suite *TestSuiteStandard) TestSettingsPerRouter() {
	suite.importReferenceTables()

	army := v1Router("-army")
	navy := v1Router("-navy")

	recorder := submit(army, "Sam")
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusCreated)

	var response v1.ParticipantCreateResponse
	test.DecodeResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Sam-army", response.Data.Twin.Name)
	assert.Empty(suite.T(), response.Diagnostics)

	recorder = submit(army, "Kim-navy")
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusCreated)

	recorder = submit(navy, "Lee-navy")
	test.AssertHTTPStatus(suite.T(), recorder, http.StatusBadRequest)
}
