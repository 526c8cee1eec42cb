// Package vars holds build-time variables populated via the linker (ldflags).
package vars

import "fmt"

var (
	// Name of the SDK, used in the User-Agent header.
	Name = "pnode-pulse-go"

	// Version of the SDK (git tag) semver/tag, e.g. v1.2.3
	Version = "dev"

	// Commit is the current git commit, full or short git SHA
	Commit = "unknown"
)

// UserAgent returns the value sent in the User-Agent header of every request,
// e.g. "pnode-pulse-go/v1.2.3".
func UserAgent() string {
	return fmt.Sprintf("%s/%s", Name, Version)
}

// CommitShort returns the first 7 characters of the git commit hash.
func CommitShort() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}

	return Commit
}
