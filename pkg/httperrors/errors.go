package httperrors

import (
	"errors"
	"net/http"

	"github.com/career-compass/projector/pkg/models"
)

var (
	ErrCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	ErrNoFilePost          = errors.New("you must send a file to this endpoint")
	ErrRequestBodyEmpty    = errors.New("the request body must not be empty")
	ErrInvalidBody         = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrInvalidUUID         = errors.New("the specified resource ID is not a valid UUID")
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// New creates the response body for an error.
func New(err error) HTTPError {
	if models.IsGeneral(err) {
		err = models.ErrGeneral
	}

	return HTTPError{
		Error: err.Error(),
	}
}

// Status returns the appropriate HTTP status for an error.
//
// Database errors that cannot be explained to the user are server
// errors, everything else is caused by the request.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) || models.IsGeneral(err) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
