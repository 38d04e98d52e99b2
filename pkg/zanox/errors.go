package zanox

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
)

// ErrorKind classifies a failed API exchange.
type ErrorKind string

// Error kinds reported by CheckResponse.
const (
	KindBadRequest   ErrorKind = "BadRequest"
	KindUnauthorized ErrorKind = "Unauthorized"
	KindNotFound     ErrorKind = "NotFound"
	KindClientError  ErrorKind = "ClientError"
	KindServerError  ErrorKind = "ServerError"
)

// ErrorData carries the diagnostic fields the API attaches to 400 and 403 responses.
type ErrorData struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Reason  string `json:"reason"  yaml:"reason"`
}

// UnmarshalJSON accepts the code as either a JSON number or a string.
func (d *ErrorData) UnmarshalJSON(data []byte) error {
	var wire struct {
		Code    json.RawMessage `json:"code"`
		Message string          `json:"message"`
		Reason  string          `json:"reason"`
	}

	err := json.Unmarshal(data, &wire)
	if err != nil {
		return fmt.Errorf("failed to unmarshal error data: %w", err)
	}

	d.Message = wire.Message
	d.Reason = wire.Reason
	d.Code = ""

	code := bytes.TrimSpace(wire.Code)
	if len(code) > 0 && !bytes.Equal(code, []byte("null")) {
		d.Code = strings.Trim(string(code), `"`)
	}

	return nil
}

// APIError represents a non-successful response from the Zanox API.
type APIError struct {
	StatusCode int        `json:"status_code"    yaml:"status_code"`
	Kind       ErrorKind  `json:"kind"           yaml:"kind"`
	Data       *ErrorData `json:"data,omitempty" yaml:"data,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("The Zanox API responded with the following error message: %s Error reason: %s [code: %s]",
			e.Data.Message, e.Data.Reason, e.Data.Code)
	}

	return fmt.Sprintf("zanox API error: %s (status %d)", e.Kind, e.StatusCode)
}

// Is reports whether target is an *APIError of the same kind, so the
// kind sentinels below work with errors.Is.
func (e *APIError) Is(target error) bool {
	var other *APIError
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

// HasData reports whether the error carries vendor diagnostic data.
func (e *APIError) HasData() bool {
	return e.Data != nil
}

// Kind sentinels for use with errors.Is.
var (
	ErrBadRequest   = &APIError{Kind: KindBadRequest, StatusCode: http.StatusBadRequest}
	ErrUnauthorized = &APIError{Kind: KindUnauthorized, StatusCode: http.StatusForbidden}
	ErrNotFound     = &APIError{Kind: KindNotFound, StatusCode: http.StatusNotFound}
	ErrClientError  = &APIError{Kind: KindClientError}
	ErrServerError  = &APIError{Kind: KindServerError}
)

// Static errors for err113 compliance.
var (
	ErrMissingConnectID = errors.New("please provide your connect ID")
	ErrMissingSecretKey = errors.New("please provide your secret key")
	ErrConfigRequired   = errors.New("config is required")
	ErrInvalidBaseURL   = errors.New("invalid base URL")
	ErrUnexpectedShape  = errors.New("unexpected JSON shape")
)

// AuthenticationError is returned before any network call when the
// credentials required by an authentication mode are absent.
type AuthenticationError struct {
	Err error
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Err.Error()
}

// Unwrap returns the missing-credential sentinel.
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a response fragment lacks required keys.
type ParseError struct {
	Resource string
	Missing  []string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: missing required field(s): %s", e.Resource, strings.Join(e.Missing, ", "))
}

// CheckResponse classifies a completed HTTP exchange. A nil return means
// the body should be decoded as a success payload.
func CheckResponse(statusCode int, body []byte) error {
	switch {
	case statusCode == http.StatusBadRequest:
		return &APIError{StatusCode: statusCode, Kind: KindBadRequest, Data: parseErrorData(body)}
	case statusCode == http.StatusForbidden:
		return &APIError{StatusCode: statusCode, Kind: KindUnauthorized, Data: parseErrorData(body)}
	case statusCode == http.StatusNotFound:
		return &APIError{StatusCode: statusCode, Kind: KindNotFound}
	case statusCode >= constants.HTTPStatusClientErrorMin && statusCode <= constants.HTTPStatusClientErrorMax:
		return &APIError{StatusCode: statusCode, Kind: KindClientError}
	case statusCode >= constants.HTTPStatusServerErrorMin && statusCode <= constants.HTTPStatusServerErrorMax:
		return &APIError{StatusCode: statusCode, Kind: KindServerError}
	default:
		return nil
	}
}

// parseErrorData never fails: an unreadable body yields empty diagnostic
// fields while the status code still decides the kind.
func parseErrorData(body []byte) *ErrorData {
	data := &ErrorData{}

	_ = json.Unmarshal(body, data)

	return data
}

func kindOf(err error) (ErrorKind, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}

	return "", false
}

// IsBadRequest checks if the error is a 400 response.
func IsBadRequest(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindBadRequest
}

// IsUnauthorized checks if the error is a 403 response.
func IsUnauthorized(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindUnauthorized
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindNotFound
}

// IsClientError checks if the error is any 4xx response.
func IsClientError(err error) bool {
	kind, ok := kindOf(err)
	if !ok {
		return false
	}

	return kind == KindBadRequest || kind == KindUnauthorized || kind == KindNotFound || kind == KindClientError
}

// IsServerError checks if the error is a 5xx response.
func IsServerError(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindServerError
}

// IsAuthenticationError checks if the error was raised for missing credentials.
func IsAuthenticationError(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// IsParseError checks if the error was raised for a malformed resource fragment.
func IsParseError(err error) bool {
	parseErr := &ParseError{}

	return errors.As(err, &parseErr)
}
