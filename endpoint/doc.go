// Package endpoint composes well-formed URLs for HTTP API clients.
//
// An API family is declared once: a Configuration (host, optional port,
// transport security), a base path shared by every endpoint of the family,
// and a variant type whose values each know their relative path. Typed
// options become query parameters.
//
// # Declaring a family
//
//	type Movies int
//
//	const (
//	    MostPopular Movies = iota
//	    TopRated
//	)
//
//	func (m Movies) Path() string {
//	    switch m {
//	    case MostPopular:
//	        return "/most_popular"
//	    default:
//	        return "/top_rated"
//	    }
//	}
//
//	family := endpoint.NewFamily[Movies](endpoint.Config{Host: "api.example.com"}, "/api/v2")
//	u := family.URL(TopRated, endpoint.Param("page", "1"))
//	// https://api.example.com/api/v2/top_rated?page=1
//
// # Failure classes
//
// A family whose configuration has no host panics with a *MissingHostError
// on every build: it was never wired correctly and should not reach
// production. Any other problem (a host with illegal characters, a port
// outside 0..65535, a path that cannot follow an authority) makes URL,
// BaseURL and CustomURL return nil; the Build* variants return the
// reason as an *errors.AppError.
//
// Paths are concatenated verbatim. "/api/" + "/x" yields "/api//x". Use
// CustomURL with JoinPath, TrailingSlash or ExpandPath when a different
// join is needed.
package endpoint
