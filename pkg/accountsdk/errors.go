package accountsdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error codes carried in the "error" field of error responses.
const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeConflict   = "conflict"
	ErrorCodeAuth       = "auth_error"
	ErrorCodeNotFound   = "not_found"
	ErrorCodeInternal   = "server_error"
)

// ErrorResponse is the wire shape of every error the service returns.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// APIError represents a non-2xx response from the service. It is used by
// the SDK client to surface server-side failures as Go errors.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (HTTP %d)", e.Code, e.Description, e.StatusCode)
}

// IsAuth reports whether the error indicates invalid credentials or an
// invalid session.
func (e *APIError) IsAuth() bool { return e.Code == ErrorCodeAuth }

// IsConflict reports whether the error indicates a uniqueness conflict,
// such as an already-registered email.
func (e *APIError) IsConflict() bool { return e.Code == ErrorCodeConflict }

// IsValidation reports whether the error indicates rejected input.
func (e *APIError) IsValidation() bool { return e.Code == ErrorCodeValidation }

// parseAPIError turns an error response body into an *APIError. Bodies
// that do not decode still produce a usable error with the status code.
func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		apiErr.Code = ErrorCodeInternal
		apiErr.Description = "failed to read error response"
		return apiErr
	}

	var wire ErrorResponse
	if err := json.Unmarshal(body, &wire); err != nil || wire.Error == "" {
		apiErr.Code = ErrorCodeInternal
		apiErr.Description = http.StatusText(resp.StatusCode)
		return apiErr
	}

	apiErr.Code = wire.Error
	apiErr.Description = wire.ErrorDescription
	return apiErr
}
