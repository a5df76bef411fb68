package confluence

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// ContentUpdateForbiddenError is returned when the credentials may read but
// not edit a piece of content.
type ContentUpdateForbiddenError struct {
	ContentID string
	Title     string
	Msg       string
	Err       error
}

func (e *ContentUpdateForbiddenError) Error() string {
	return e.Msg
}

func (e *ContentUpdateForbiddenError) Unwrap() error {
	return e.Err
}

func IsContentUpdateForbidden(err error) bool {
	var forbidden *ContentUpdateForbiddenError
	return errors.As(err, &forbidden)
}
