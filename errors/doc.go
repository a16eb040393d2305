// Package errors provides the structured error type returned by endpointkit
// when a URL, configuration or catalog cannot be used.
//
// Every error carries a machine-readable code and optional details so
// callers can branch on the failure class without parsing messages:
//
//	u, err := family.BuildURL(movies.TopRated)
//	if errors.Is(err, errors.ErrCodeInvalidHost) {
//	    // fix the configured host
//	}
package errors
