package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/kusaridev/skoot/pkg/domain/interfaces"
	"github.com/kusaridev/skoot/pkg/domain/types"
)

type gitClient struct {
	// binary is the git executable name, overridable for tests
	binary string
}

// NewClient creates a client that shells out to the local git binary
func NewClient() interfaces.GitClient {
	return &gitClient{binary: "git"}
}

// Clone runs "git clone <url>" with the working directory set to dir. Only
// the exit status decides success; stderr is captured solely to enrich the
// error message.
func (c *gitClient) Clone(ctx context.Context, cloneURL, dir string) error {
	logger := ctxlog.From(ctx)
	logger.Debug("Cloning repository", "url", cloneURL, "dir", dir)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, "clone", cloneURL)
	cmd.Dir = dir
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "git clone failed",
			goerr.V("url", cloneURL),
			goerr.V("dir", dir),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
			goerr.T(types.ErrTagGit))
	}

	return nil
}
