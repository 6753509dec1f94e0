// Package version exposes build metadata for the running binary.
package version

var (
	// Version is the semantic version of the build. It is intended to be
	// overridden at link time:
	//
	//	go build -ldflags "-X github.com/refarch/movies-api/internal/version.Version=v1.4.0"
	//
	// The fallback value marks locally built binaries.
	Version = "v0.0.0-dev"

	// Commit is the short git hash of the build, also set via ldflags.
	Commit = "unknown"

	// Date is the build timestamp, also set via ldflags.
	Date = "unknown"
)
