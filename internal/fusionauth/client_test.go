package fusionauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey = "test-api-key"
	testAppID  = "0c2707b5-a830-435a-8c4d-7234d02d6aee"
	testTenant = "d3bd01ce-a851-9ac1-556a-250094aca2de"
)

const mockApplicationResponse = `{"application":{"id":"0c2707b5-a830-435a-8c4d-7234d02d6aee","name":"Natixar","roles":[
{"id":"r1","name":"admin","isDefault":false,"isSuperRole":true},
{"id":"r2","name":"viewer","isDefault":true,"isSuperRole":false}]}}`

const mockGroupsResponse = `{"groups":[
{"id":"g1","name":"Team A","tenantId":"d3bd01ce-a851-9ac1-556a-250094aca2de","data":{"blockchainAddress":"0xabc","email":"a@example.com"}},
{"id":"g2","name":"Team B","data":{"blockchainAddress":"0xdef","email":"b@example.com"}}]}`

const mockValidationError = `{"generalErrors":[{"code":"[blocked]","message":"Request blocked"}],
"fieldErrors":{"user.email":[{"code":"[duplicate]user.email","message":"A User with email already exists."}],
"group.name":[{"code":"[blank]group.name","message":"You must specify the [group.name] property."}]}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(server.URL+"/", testAPIKey, testAppID)
	client.SetTenant(testTenant)
	return client
}

func TestNewClient(t *testing.T) {
	client := NewClient("https://auth.example.com/", "key", "app")

	assert.Equal(t, "https://auth.example.com", client.BaseURL)
	assert.Equal(t, "key", client.APIKey)
	assert.Equal(t, "app", client.ApplicationID)
	assert.Empty(t, client.TenantID)
	require.NotNil(t, client.HTTPClient)
	assert.Equal(t, DefaultTimeout, client.HTTPClient.Timeout)

	client.SetTimeout(5 * time.Second)
	assert.Equal(t, 5*time.Second, client.HTTPClient.Timeout)
}

func TestFetchRoles(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/application/"+testAppID, r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get("Authorization"))
		assert.Equal(t, testTenant, r.Header.Get(TenantHeader))
		assert.Empty(t, r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(mockApplicationResponse))
	})

	roles, err := client.FetchRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, Role{ID: "r1", Name: "admin", IsSuperRole: true}, roles[0])
	assert.Equal(t, "viewer", roles[1].Name)
	assert.True(t, roles[1].IsDefault)
}

func TestFetchRoles_NoApplicationID(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", testAPIKey, "")

	_, err := client.FetchRoles(context.Background())
	require.Error(t, err)

	apiErr, ok := asAPIError(err)
	require.True(t, ok)
	assert.Equal(t, ErrTypeValidation, apiErr.Type)
}

func TestFetchGroups(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/group", r.URL.Path)
		_, _ = w.Write([]byte(mockGroupsResponse))
	})

	groups, err := client.FetchGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "g1", groups[0].ID)
	assert.Equal(t, "Team A", groups[0].Name)
	assert.Equal(t, "0xabc", groups[0].Data.BlockchainAddress)
	assert.Equal(t, "b@example.com", groups[1].Data.Email)
}

func TestFetchGroups_NoTenantHeaderWhenUnset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header[http.CanonicalHeaderKey(TenantHeader)]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"groups":[]}`))
	}))
	defer server.Close()

	groups, err := NewClient(server.URL, testAPIKey, testAppID).FetchGroups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestCreateGroup(t *testing.T) {
	tests := []struct {
		name     string
		groupID  string
		wantPath string
	}{
		{"GeneratedID", "", "/api/group"},
		{"ExplicitID", "9f1c6a2e-0000-4000-8000-000000000001", "/api/group/9f1c6a2e-0000-4000-8000-000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)

				var got map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &got))
				group := got["group"].(map[string]interface{})
				assert.Equal(t, "Acme", group["name"])
				data := group["data"].(map[string]interface{})
				assert.Equal(t, "0x123", data["blockchainAddress"])
				assert.Equal(t, "ops@acme.test", data["email"])
				assert.Equal(t, []interface{}{"r1", "r2"}, got["roleIds"])

				_, _ = w.Write([]byte(`{"group":{"id":"new-id","name":"Acme","data":{"blockchainAddress":"0x123","email":"ops@acme.test"}}}`))
			})

			req := NewGroupRequest("Acme", "0x123", "ops@acme.test", []string{"r1", "r2"})
			group, err := client.CreateGroup(context.Background(), req, tt.groupID)
			require.NoError(t, err)
			assert.Equal(t, "new-id", group.ID)
			assert.Equal(t, "Acme", group.Name)
		})
	}
}

func TestCreateGroup_RequiresName(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", testAPIKey, testAppID)

	_, err := client.CreateGroup(context.Background(), NewGroupRequest("", "", "", nil), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group name is required")

	_, err = client.CreateGroup(context.Background(), nil, "")
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/registration/", r.URL.Path)

		var req UserRegistrationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testAppID, req.Registration.ApplicationID)
		assert.Equal(t, "jane@acme.test", req.User.Email)
		assert.Equal(t, "Jane", req.User.FirstName)
		assert.Equal(t, "Doe", req.User.LastName)
		assert.Equal(t, []Membership{{GroupID: "g1"}}, req.User.Memberships)
		assert.Equal(t, "s3cret", req.User.Password)
		assert.False(t, req.SendSetPasswordEmail)

		_, _ = w.Write([]byte(`{"user":{"id":"u1","email":"jane@acme.test","firstName":"Jane","lastName":"Doe"},"registration":{"applicationId":"` + testAppID + `"}}`))
	})

	req := NewUserRegistrationRequest(testAppID, "g1", "jane@acme.test", "Jane", "Doe", "s3cret")
	resp, err := client.CreateUser(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, testAppID, resp.Registration.ApplicationID)
}

func TestCreateUser_RequiresEmail(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", testAPIKey, testAppID)

	_, err := client.CreateUser(context.Background(), NewUserRegistrationRequest(testAppID, "g1", "", "A", "B", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user email is required")
}

func TestNewUserRegistrationRequest_NoPasswordSendsEmail(t *testing.T) {
	req := NewUserRegistrationRequest(testAppID, "g1", "a@b.c", "A", "B", "")
	assert.True(t, req.SendSetPasswordEmail)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"password"`)
	assert.Contains(t, string(data), `"sendSetPasswordEmail":true`)
}

func TestDo_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.FetchGroups(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.False(t, IsHTTPError(err))
	assert.Equal(t, "Authentication failed - check FUSIONAUTH_API_KEY", GetShortErrorMessage(err))
}

func TestDo_ErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(mockValidationError))
	})

	_, err := client.CreateUser(context.Background(), NewUserRegistrationRequest(testAppID, "g1", "dup@acme.test", "A", "B", ""))
	require.Error(t, err)
	require.True(t, IsHTTPError(err))

	apiErr, _ := asAPIError(err)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.NotNil(t, apiErr.Details)
	assert.Len(t, apiErr.Details.GeneralErrors, 1)
	assert.Len(t, apiErr.Details.FieldErrors, 2)
	assert.Empty(t, apiErr.RawBody)

	assert.Equal(t, "FusionAuth returned 400 Bad Request", GetShortErrorMessage(err))

	want := "General Errors:\n" +
		"- Code: [blocked], Message: Request blocked\n" +
		"Field Errors:\n" +
		"- Field: group.name, Code: [blank]group.name, Message: You must specify the [group.name] property.\n" +
		"- Field: user.email, Code: [duplicate]user.email, Message: A User with email already exists."
	assert.Equal(t, want, FormatErrorDetails(err))
}

func TestDo_NonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded\n"))
	})

	_, err := client.FetchGroups(context.Background())
	require.True(t, IsHTTPError(err))

	apiErr, _ := asAPIError(err)
	assert.Nil(t, apiErr.Details)
	assert.Equal(t, "upstream exploded", apiErr.RawBody)
	assert.Equal(t, "Raw response:\nupstream exploded", FormatErrorDetails(err))
	assert.Equal(t, []string{"FusionAuth reported an internal error; check the server logs"}, GetTroubleshootingHint(err))
}

func TestDo_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchRoles(context.Background())
	assert.True(t, IsNotFound(err))
	assert.Empty(t, FormatErrorDetails(err))
	assert.Equal(t, []string{"Check the application id (--application-id)"}, GetTroubleshootingHint(err))
}

func TestDo_OnlyStatusOKIsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(mockGroupsResponse))
	})

	_, err := client.FetchGroups(context.Background())
	require.Error(t, err)
	apiErr, _ := asAPIError(err)
	assert.Equal(t, http.StatusCreated, apiErr.StatusCode)
}

func TestDo_MalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>login</html>`))
	})

	_, err := client.FetchGroups(context.Background())
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.Equal(t, "Failed to parse FusionAuth response", GetShortErrorMessage(err))
}

func TestDo_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	_, err := NewClient(addr, testAPIKey, testAppID).FetchGroups(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
	assert.NotEmpty(t, GetTroubleshootingHint(err))
}

func TestDo_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(mockGroupsResponse))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchGroups(ctx)
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
}
