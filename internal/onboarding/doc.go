// Package onboarding implements the two operator flows of the onboard CLI.
//
// The group flow collects a group name, blockchain address and contact email,
// lets the operator choose application roles from a numbered list and
// creates the group. The user flow collects the user's email and names, lets
// the operator pick a group with the interactive selector and creates the
// user with a registration for the configured application.
//
// Flows depend only on the API, Prompter and GroupPicker interfaces. Values
// supplied up front (for example from command-line flags) are used as is;
// only missing values are prompted for.
package onboarding
