// Package fusionauth provides a client for the subset of the FusionAuth REST API
// used to onboard organisations and their users.
//
// # Endpoints
//
//   - GET  /api/application/{id}   list the roles of the onboarding application
//   - GET  /api/group              list every group in the tenant
//   - POST /api/group[/{id}]       create a group with data and role ids
//   - POST /api/user/registration/ create a user, register it and add group memberships
//
// Every request carries the API key in the Authorization header and, when
// configured, the tenant id in X-FusionAuth-TenantId. Calls are synchronous
// and made exactly once.
//
// # Usage Example
//
//	client := fusionauth.NewClient("https://auth.example.com", apiKey, appID)
//	client.SetTenant(tenantID)
//
//	roles, err := client.FetchRoles(ctx)
//	if err != nil {
//	    fmt.Println(fusionauth.GetShortErrorMessage(err))
//	    fmt.Println(fusionauth.FormatErrorDetails(err))
//	    return err
//	}
//
// # Errors
//
// All failures are returned as *APIError. HTTP failures keep the decoded
// FusionAuth error body (general and field errors) in Details, or the raw
// response text when the body was not JSON.
package fusionauth
