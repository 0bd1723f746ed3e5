package interfaces

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// CreateRepository creates a repository. An empty org targets the
	// authenticated user's account (/user/repos); a non-empty org targets
	// /orgs/{org}/repos.
	CreateRepository(ctx context.Context, org string, repo *github.Repository) (*github.Repository, error)
}
