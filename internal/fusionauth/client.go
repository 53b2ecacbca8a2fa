package fusionauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/natixar/onboard/internal/logging"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second

	// TenantHeader scopes API calls to a single tenant
	TenantHeader = "X-FusionAuth-TenantId"
)

// Client is a synchronous FusionAuth REST API client.
// Every call performs exactly one request; there is no retry logic.
type Client struct {
	// BaseURL is the FusionAuth base URL (e.g., "https://auth.example.com")
	BaseURL string

	// APIKey is sent verbatim in the Authorization header
	APIKey string

	// TenantID is sent in the X-FusionAuth-TenantId header when non-empty
	TenantID string

	// ApplicationID identifies the application whose roles are listed
	ApplicationID string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a new FusionAuth client
func NewClient(baseURL, apiKey, applicationID string) *Client {
	return &Client{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		APIKey:        apiKey,
		ApplicationID: applicationID,
		HTTPClient:    &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetTenant sets the tenant id sent with every request
func (c *Client) SetTenant(tenantID string) {
	c.TenantID = tenantID
}

// FetchRoles returns the roles defined on the configured application
func (c *Client) FetchRoles(ctx context.Context) ([]Role, error) {
	if c.ApplicationID == "" {
		return nil, NewValidationError("application id is not configured")
	}

	var resp applicationResponse
	path := "/api/application/" + url.PathEscape(c.ApplicationID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Application.Roles, nil
}

// FetchGroups returns every group in the tenant
func (c *Client) FetchGroups(ctx context.Context) ([]Group, error) {
	var resp groupsResponse
	if err := c.do(ctx, http.MethodGet, "/api/group", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Groups, nil
}

// CreateGroup creates a group with the requested roles.
// groupID is optional; when empty FusionAuth generates one.
func (c *Client) CreateGroup(ctx context.Context, req *GroupRequest, groupID string) (*Group, error) {
	if req == nil || req.Group.Name == "" {
		return nil, NewValidationError("group name is required")
	}

	path := "/api/group"
	if groupID != "" {
		path += "/" + url.PathEscape(groupID)
	}

	var resp groupResponse
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Group, nil
}

// CreateUser creates a user, registers it to the application and adds the
// requested group memberships in a single call.
func (c *Client) CreateUser(ctx context.Context, req *UserRegistrationRequest) (*UserRegistrationResponse, error) {
	if req == nil || req.User.Email == "" {
		return nil, NewValidationError("user email is required")
	}

	var resp UserRegistrationResponse
	if err := c.do(ctx, http.MethodPost, "/api/user/registration/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one JSON request and decodes a 200 response into out
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return NewParseError("failed to encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return NewNetworkError(fmt.Sprintf("failed to create %s request", method), err)
	}

	req.Header.Set("Authorization", c.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.TenantID != "" {
		req.Header.Set(TenantHeader, c.TenantID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logging.Warn("FusionAuth request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return NewNetworkError(fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogAPICall(method, path, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return NewAuthError("API key rejected")
	}

	if resp.StatusCode != http.StatusOK {
		return newStatusError(resp, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return NewParseError("failed to parse JSON response", err)
	}

	return nil
}

// newStatusError builds an HTTP error, decoding the FusionAuth error body
// when it is JSON and keeping the raw text otherwise.
func newStatusError(resp *http.Response, data []byte) *APIError {
	status := http.StatusText(resp.StatusCode)
	message := fmt.Sprintf("unexpected status code: %d", resp.StatusCode)

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return NewHTTPError(resp.StatusCode, status, message, nil, "")
	}

	var details ErrorResponse
	if err := json.Unmarshal(trimmed, &details); err != nil {
		return NewHTTPError(resp.StatusCode, status, message, nil, string(trimmed))
	}
	return NewHTTPError(resp.StatusCode, status, message, &details, "")
}

func sortedKeys(m map[string][]ErrorDetail) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
