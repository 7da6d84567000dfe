// Package version holds the build version of bucket-report.
package version

// Version is overridden at build time via:
//
//	-ldflags "-X bucket-report/core/version.Version=vX.Y.Z"
var Version = "dev"
