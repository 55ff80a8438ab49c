package config

import "fmt"

// Build metadata, injected with -ldflags "-X github.com/bobmcallan/vire-openbb/internal/config.Version=...".
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

// VersionInfo is the version payload served by /api/version and the get_version tool.
type VersionInfo struct {
	Version   string `json:"version"`
	Build     string `json:"build"`
	GitCommit string `json:"git_commit"`
}

// GetVersionInfo returns the current build metadata.
func GetVersionInfo() VersionInfo {
	return VersionInfo{Version: Version, Build: Build, GitCommit: GitCommit}
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns version with build info.
func GetFullVersion() string {
	return fmt.Sprintf("%s (build: %s, commit: %s)", Version, Build, GitCommit)
}
