package fusionauth

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"

	"github.com/natixar/onboard/internal/urls"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (reset, unreachable, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeAuth indicates the API key was rejected (401)
	ErrTypeAuth
	// ErrTypeHTTP indicates a non-200 response
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
	// ErrTypeValidation indicates a request rejected before it was sent
	ErrTypeValidation
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the server refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// APIError represents a failed FusionAuth API call
type APIError struct {
	Type       ErrorType      // Category of error
	Message    string         // Human-readable error message
	StatusCode int            // HTTP status code (if applicable)
	Status     string         // HTTP status line (if applicable)
	Details    *ErrorResponse // Decoded FusionAuth error body (if any)
	RawBody    string         // Response body when it was not valid JSON
	Err        error          // Underlying error (if any)
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *APIError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a more specific error type
func ClassifyNetworkError(err error) *APIError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &APIError{Type: ErrTypeTimeout, Message: "Request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &APIError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &APIError{Type: ErrTypeConnectionRefused, Message: "Server refused connection", Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return ClassifyNetworkError(urlErr.Err)
	}

	return &APIError{Type: ErrTypeNetwork, Message: "Network error occurred", Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *APIError {
	classified := ClassifyNetworkError(err)
	if classified == nil {
		return &APIError{Type: ErrTypeNetwork, Message: message}
	}
	classified.Message = message
	return classified
}

// NewAuthError creates an authentication error
func NewAuthError(message string) *APIError {
	return &APIError{
		Type:       ErrTypeAuth,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Status:     http.StatusText(http.StatusUnauthorized),
	}
}

// NewHTTPError creates an HTTP-level error carrying the decoded error body
func NewHTTPError(statusCode int, status, message string, details *ErrorResponse, rawBody string) *APIError {
	return &APIError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
		Status:     status,
		Details:    details,
		RawBody:    rawBody,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *APIError {
	return &APIError{Type: ErrTypeParse, Message: message, Err: err}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *APIError {
	return &APIError{Type: ErrTypeValidation, Message: message}
}

func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNetworkError checks if an error is a network error (including timeout, connection refused, DNS)
func IsNetworkError(err error) bool {
	if apiErr, ok := asAPIError(err); ok {
		return apiErr.Type == ErrTypeNetwork ||
			apiErr.Type == ErrTypeTimeout ||
			apiErr.Type == ErrTypeConnectionRefused ||
			apiErr.Type == ErrTypeDNS
	}
	return false
}

// IsAuthError checks if an error is an authentication error
func IsAuthError(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Type == ErrTypeAuth
}

// IsHTTPError checks if an error is an HTTP error
func IsHTTPError(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Type == ErrTypeHTTP
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Type == ErrTypeParse
}

// IsNotFound checks if an error is an HTTP 404
func IsNotFound(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	apiErr, ok := asAPIError(err)
	if !ok {
		return err.Error()
	}

	switch apiErr.Type {
	case ErrTypeTimeout:
		return "FusionAuth not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "FusionAuth refused the connection"
	case ErrTypeDNS:
		return "Cannot resolve FusionAuth hostname"
	case ErrTypeAuth:
		return "Authentication failed - check FUSIONAUTH_API_KEY"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		if apiErr.Status != "" {
			return fmt.Sprintf("FusionAuth returned %d %s", apiErr.StatusCode, apiErr.Status)
		}
		return fmt.Sprintf("FusionAuth returned HTTP %d", apiErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse FusionAuth response"
	default:
		return apiErr.Message
	}
}

// GetTroubleshootingHint returns operator-facing advice for an error,
// one tip per entry. Unknown errors have no hints.
func GetTroubleshootingHint(err error) []string {
	apiErr, ok := asAPIError(err)
	if !ok {
		return nil
	}

	switch apiErr.Type {
	case ErrTypeTimeout:
		return []string{
			"Check that the FusionAuth server is up",
			"Increase timeout_seconds in the config file",
		}
	case ErrTypeConnectionRefused, ErrTypeNetwork:
		return []string{
			"Verify the base URL (--base-url or FUSIONAUTH_BASE_URL)",
			"Check your network connection and any VPN requirements",
		}
	case ErrTypeDNS:
		return []string{
			"Check the hostname in the base URL",
			"Verify your DNS settings",
		}
	case ErrTypeAuth:
		return []string{
			"Set FUSIONAUTH_API_KEY to a valid API key",
			"Ensure the key is allowed to call the group, user and application APIs",
			"Check that the key is not restricted to a different tenant",
			"See " + urls.APIAuthentication,
		}
	case ErrTypeHTTP:
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			return []string{"Check the application id (--application-id)"}
		case apiErr.StatusCode >= 500:
			return []string{"FusionAuth reported an internal error; check the server logs"}
		default:
			return []string{
				"Review the field and general errors reported above",
				"See " + urls.APIErrors,
			}
		}
	case ErrTypeParse:
		return []string{"The base URL may not point at a FusionAuth instance"}
	default:
		return nil
	}
}

// FormatErrorDetails renders the FusionAuth error body of err as indented
// text, one error per line. It returns "" when err carries no details.
func FormatErrorDetails(err error) string {
	apiErr, ok := asAPIError(err)
	if !ok {
		return ""
	}

	if apiErr.Details.Empty() {
		if apiErr.RawBody != "" {
			return "Raw response:\n" + apiErr.RawBody
		}
		return ""
	}

	var b strings.Builder
	d := apiErr.Details

	if len(d.GeneralErrors) > 0 {
		b.WriteString("General Errors:\n")
		for _, e := range d.GeneralErrors {
			fmt.Fprintf(&b, "- Code: %s, Message: %s\n", e.Code, e.Message)
		}
	}

	if len(d.FieldErrors) > 0 {
		b.WriteString("Field Errors:\n")
		for _, field := range sortedKeys(d.FieldErrors) {
			for _, e := range d.FieldErrors[field] {
				fmt.Fprintf(&b, "- Field: %s, Code: %s, Message: %s\n", field, e.Code, e.Message)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
