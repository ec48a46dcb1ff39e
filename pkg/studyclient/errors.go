package studyclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNotConfigured is returned by every client call when no backend base
// URL was supplied. No network attempt is made.
var ErrNotConfigured = errors.New("studyclient: backend base URL not configured")

// ErrNotPDF is returned by UploadFlow.SetFile for files that are not PDFs.
var ErrNotPDF = errors.New("studyclient: file must be a PDF")

// ErrNoQuestions is returned when a quiz with no questions is submitted.
var ErrNoQuestions = errors.New("studyclient: quiz has no questions")

// APIError is a non-2xx response from the backend, carrying the
// server-provided detail message when one was present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("studyclient: %d: %s", e.Status, e.Detail)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status: resp.StatusCode,
		Detail: fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}
