// Package buildinfo holds build-time variables injected via ldflags.
package buildinfo

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)
