package git

import "time"

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath string
	Branch   string
	Since    *time.Time
	Until    *time.Time

	// Authors filters commits to those whose author name or email
	// contains one of these substrings (case-insensitive). Empty
	// means all authors.
	Authors []string

	// Include and Exclude are doublestar glob patterns; when either is
	// set, only commits touching at least one matching path count.
	Include []string
	Exclude []string

	// UseGitCLI shells out to the git binary instead of reading the
	// repository with go-git. Faster on very large histories.
	UseGitCLI bool
}

// filtersPaths reports whether reading must inspect each commit's
// changed files.
func (o ReadOptions) filtersPaths() bool {
	return len(o.Include) > 0 || len(o.Exclude) > 0
}
