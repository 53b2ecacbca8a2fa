package fusionauth

import "sort"

// Role is an application role as returned by GET /api/application/{id}
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsDefault   bool   `json:"isDefault"`
	IsSuperRole bool   `json:"isSuperRole"`
}

// Application is the subset of the FusionAuth application object we read
type Application struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Roles []Role `json:"roles"`
}

// applicationResponse wraps GET /api/application/{id}
type applicationResponse struct {
	Application Application `json:"application"`
}

// GroupData is the custom data attached to an onboarded organisation group
type GroupData struct {
	BlockchainAddress string `json:"blockchainAddress"`
	Email             string `json:"email"`
}

// Group is a FusionAuth group.
// Roles is keyed by application id.
type Group struct {
	ID       string            `json:"id,omitempty"`
	Name     string            `json:"name"`
	TenantID string            `json:"tenantId,omitempty"`
	Data     GroupData         `json:"data"`
	Roles    map[string][]Role `json:"roles,omitempty"`
}

// RoleNames returns the sorted names of all roles granted by the group
func (g *Group) RoleNames() []string {
	var names []string
	for _, roles := range g.Roles {
		for _, r := range roles {
			names = append(names, r.Name)
		}
	}
	sort.Strings(names)
	return names
}

// GroupRequest is the body for POST /api/group[/{id}]
type GroupRequest struct {
	Group   GroupSpec `json:"group"`
	RoleIDs []string  `json:"roleIds"`
}

// GroupSpec is the group part of a create request
type GroupSpec struct {
	Name string    `json:"name"`
	Data GroupData `json:"data"`
}

// NewGroupRequest builds a create-group request for an organisation
func NewGroupRequest(name, blockchainAddress, email string, roleIDs []string) *GroupRequest {
	return &GroupRequest{
		Group: GroupSpec{
			Name: name,
			Data: GroupData{
				BlockchainAddress: blockchainAddress,
				Email:             email,
			},
		},
		RoleIDs: roleIDs,
	}
}

// groupResponse wraps a single group
type groupResponse struct {
	Group Group `json:"group"`
}

// groupsResponse wraps GET /api/group
type groupsResponse struct {
	Groups []Group `json:"groups"`
}

// Membership links a user to a group
type Membership struct {
	GroupID string `json:"groupId"`
}

// Registration links a user to an application
type Registration struct {
	ApplicationID string   `json:"applicationId"`
	Roles         []string `json:"roles,omitempty"`
}

// User is a FusionAuth user
type User struct {
	ID          string       `json:"id,omitempty"`
	Email       string       `json:"email"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Password    string       `json:"password,omitempty"`
	Memberships []Membership `json:"memberships,omitempty"`
	Active      bool         `json:"active,omitempty"`
	TenantID    string       `json:"tenantId,omitempty"`
}

// UserRegistrationRequest is the body for POST /api/user/registration/
type UserRegistrationRequest struct {
	Registration         Registration `json:"registration"`
	User                 User         `json:"user"`
	SendSetPasswordEmail bool         `json:"sendSetPasswordEmail,omitempty"`
	SkipVerification     bool         `json:"skipVerification,omitempty"`
}

// NewUserRegistrationRequest builds a combined user + registration request
// that also makes the user a member of groupID.
// When password is empty FusionAuth emails a set-password link instead.
func NewUserRegistrationRequest(applicationID, groupID, email, firstName, lastName, password string) *UserRegistrationRequest {
	return &UserRegistrationRequest{
		Registration: Registration{ApplicationID: applicationID},
		User: User{
			Email:       email,
			FirstName:   firstName,
			LastName:    lastName,
			Password:    password,
			Memberships: []Membership{{GroupID: groupID}},
		},
		SendSetPasswordEmail: password == "",
	}
}

// UserRegistrationResponse is the body returned by POST /api/user/registration/
type UserRegistrationResponse struct {
	User         User         `json:"user"`
	Registration Registration `json:"registration"`
}

// ErrorDetail is a single FusionAuth error entry
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the standard FusionAuth error body
type ErrorResponse struct {
	GeneralErrors []ErrorDetail            `json:"generalErrors,omitempty"`
	FieldErrors   map[string][]ErrorDetail `json:"fieldErrors,omitempty"`
}

// Empty reports whether the response carries no errors
func (r *ErrorResponse) Empty() bool {
	return r == nil || (len(r.GeneralErrors) == 0 && len(r.FieldErrors) == 0)
}
