// Package version exposes build-time metadata stamped into the binary.
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X vcsnumber/src/version.Version=1.2.3"
var Version = "dev"
