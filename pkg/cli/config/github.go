package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub configuration
type GitHub struct {
	Token string
}

// Flags returns CLI flags for GitHub configuration. The token is required by
// every call path that reaches the GitHub API; its absence is a fatal
// configuration error surfaced before any network call.
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN"),
		},
	}
}
