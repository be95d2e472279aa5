package test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/career-compass/projector/pkg/config"
	"github.com/career-compass/projector/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Request is a helper method to simplify making a HTTP request for tests.
//
// The router is configured from the environment for every request, the
// same way the serve command does it.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	switch b := body.(type) {
	case string:
		byteBuffer = bytes.NewBufferString(b)
	case *bytes.Buffer:
		// Assume we got sent a *bytes.Buffer for e.g. a file
		byteBuffer = b
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	c, err := config.Load()
	if err != nil {
		assert.FailNow(t, "Configuration could not be loaded", err)
	}

	baseURL, err := c.URL()
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	r, teardown, err := router.Config(baseURL, c)
	defer teardown()
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}

	if err := router.AttachRoutes(r.Group("/"), c); err != nil {
		assert.FailNow(t, "Routes could not be attached", err)
	}

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError returns the error message of an HTTP error response.
func DecodeError(t *testing.T, r *httptest.ResponseRecorder) string {
	var response struct {
		Error string `json:"error"`
	}

	DecodeResponse(t, r, &response)
	return response.Error
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

// UploadFile builds a multipart body with content as the form file "file".
//
// The body is returned as a buffer together with the HTTP request headers.
func UploadFile(t *testing.T, fileName, content string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	if _, err := io.Copy(w, strings.NewReader(content)); err != nil {
		assert.FailNow(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
