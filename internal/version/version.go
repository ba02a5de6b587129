// Package version holds the release version, overridable at link time:
//
//	go build -ldflags "-X mininorm/internal/version.Version=1.2.3"
package version

// Version is the mininorm release.
var Version = "0.3.0"
