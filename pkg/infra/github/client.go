package github

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/kusaridev/skoot/pkg/domain/interfaces"
	"github.com/kusaridev/skoot/pkg/domain/types"
)

type client struct {
	githubClient *github.Client
}

// Option configures the client
type Option func(*client) error

// WithBaseURL points the client at an alternate API base URL, mainly for
// tests against a local HTTP server
func WithBaseURL(baseURL string) Option {
	return func(c *client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("url", baseURL))
		}
		c.githubClient.BaseURL = u
		return nil
	}
}

// NewClient creates a GitHub client authenticated with a personal access
// token. The returned client is safe to share across concurrent calls; it
// holds no mutable state beyond the underlying HTTP transport.
func NewClient(token string, opts ...Option) (interfaces.GitHubClient, error) {
	if token == "" {
		return nil, goerr.New("GitHub token is empty", goerr.T(types.ErrTagConfig))
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)

	c := &client{
		githubClient: github.NewClient(httpClient),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// CreateRepository creates a repository under the authenticated user (empty
// org) or the named organization. go-github selects /user/repos vs
// /orgs/{org}/repos from the org argument alone.
func (c *client) CreateRepository(ctx context.Context, org string, repo *github.Repository) (*github.Repository, error) {
	created, _, err := c.githubClient.Repositories.Create(ctx, org, repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository",
			goerr.V("org", org),
			goerr.V("name", repo.GetName()),
			goerr.T(types.ErrTagProvider))
	}

	return created, nil
}
