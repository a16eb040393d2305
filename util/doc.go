// Package util provides small generic helpers shared across endpointkit
// packages, mostly for optional values such as ports.
package util
