package urls

// FusionAuth API reference pages linked from troubleshooting output.
// All URLs point to the FusionAuth documentation at https://fusionauth.io/docs/

// APIAuthentication explains API keys, key permissions and tenant scoping.
const APIAuthentication = "https://fusionauth.io/docs/apis/authentication"

// APIErrors documents the generalErrors and fieldErrors response body.
const APIErrors = "https://fusionauth.io/docs/apis/errors"

// GroupAPI covers group creation and role assignment.
const GroupAPI = "https://fusionauth.io/docs/apis/groups"

// RegistrationAPI covers the combined user and registration endpoint.
const RegistrationAPI = "https://fusionauth.io/docs/apis/registrations"
