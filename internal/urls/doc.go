// Package urls provides centralized constants for the documentation URLs
// shown to operators, so they can be updated in one place.
//
// Usage:
//
//	import "github.com/natixar/onboard/internal/urls"
//
//	hints = append(hints, "See "+urls.APIAuthentication)
package urls
