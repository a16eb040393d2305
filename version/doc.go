// Package version reports the build of the endpointctl binary.
//
// Release builds set the variables with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/endpointkit/version.Version=1.2.0" ./cmd/endpointctl
//
// Values left empty are filled from the module build info (vcs.revision,
// vcs.modified, vcs.time) when the binary was built from a checkout.
package version
