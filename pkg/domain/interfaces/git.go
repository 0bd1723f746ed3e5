package interfaces

import "context"

// GitClient runs operations against the local git binary
type GitClient interface {
	// Clone runs "git clone <url>" with the working directory set to dir.
	// Success is judged by the exit status only; stdout is never parsed.
	Clone(ctx context.Context, cloneURL, dir string) error
}
