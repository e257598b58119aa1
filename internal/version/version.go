// Package version holds the application version string, set at build time via
// -ldflags "-X github.com/cryptoassets/portal/internal/version.Version=...".
package version

// Version is the application version reported by /api/system/version.
var Version = "dev"
