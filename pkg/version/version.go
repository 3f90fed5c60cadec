// Package version holds the CLI version, set at build time via
// -ldflags "-X github.com/pagebotio/pagebot/pkg/version.Version=...".
package version

// Version is the pagebot version.
var Version = "0.0.1"
