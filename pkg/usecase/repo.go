package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/kusaridev/skoot/pkg/domain/interfaces"
	"github.com/kusaridev/skoot/pkg/domain/model"
	"github.com/kusaridev/skoot/pkg/domain/types"
)

type repoUseCase struct {
	githubClient interfaces.GitHubClient
	gitClient    interfaces.GitClient
}

// NewRepo creates a new instance of RepoService. The GitHub client may be nil
// when no credential was configured; Initialize then fails before any network
// call is made.
func NewRepo(githubClient interfaces.GitHubClient, gitClient interfaces.GitClient) interfaces.RepoService {
	return &repoUseCase{
		githubClient: githubClient,
		gitClient:    gitClient,
	}
}

// Initialize creates the remote repository described by params, dispatching
// on its provider tag
func (uc *repoUseCase) Initialize(ctx context.Context, params model.RepoParams) (model.InitializedRepo, error) {
	switch p := params.(type) {
	case model.GithubRepoParams:
		return uc.createGithub(ctx, p)
	case *model.GithubRepoParams:
		return uc.createGithub(ctx, *p)
	default:
		return nil, goerr.New("unsupported repository provider",
			goerr.V("provider", params.Provider()), goerr.T(types.ErrTagConfig))
	}
}

func (uc *repoUseCase) createGithub(ctx context.Context, params model.GithubRepoParams) (model.InitializedRepo, error) {
	logger := ctxlog.From(ctx)

	if uc.githubClient == nil {
		return nil, goerr.New("GitHub client is not configured, missing credential",
			goerr.T(types.ErrTagConfig))
	}

	newRepo := &github.Repository{
		Name:        github.Ptr(params.Name),
		Description: github.Ptr(params.Description),
		Private:     github.Ptr(false),
		HasIssues:   github.Ptr(true),
		HasProjects: github.Ptr(true),
		HasWiki:     github.Ptr(true),
	}

	// The owner kind alone selects the endpoint: an empty org targets
	// /user/repos, a name targets /orgs/{org}/repos.
	var org string
	switch params.Organization.Kind {
	case model.GithubUserKindUser:
		org = ""
	case model.GithubUserKindOrganization:
		org = params.Organization.Name
	default:
		return nil, goerr.New("unknown GitHub owner kind",
			goerr.V("kind", params.Organization.Kind), goerr.T(types.ErrTagConfig))
	}

	if _, err := uc.githubClient.CreateRepository(ctx, org, newRepo); err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub repository",
			goerr.V("owner", params.Organization.Name),
			goerr.V("name", params.Name))
	}

	logger.Info("GitHub repository created",
		"owner", params.Organization.Name,
		"name", params.Name,
	)

	initialized := model.InitializedGithubRepo{
		Name:         params.Name,
		Organization: params.Organization,
	}

	// An event validation failure fails the whole call even though the
	// remote repository already exists; the caller is left with a created
	// but unreported repository to reconcile.
	if err := uc.emitRepositoryCreated(ctx, initialized); err != nil {
		return nil, err
	}

	return initialized, nil
}

// emitRepositoryCreated records the lifecycle event on the structured log
// stream. Emission is a best-effort local record, not guaranteed delivery.
func (uc *repoUseCase) emitRepositoryCreated(ctx context.Context, repo model.InitializedGithubRepo) error {
	event, err := model.NewRepositoryCreatedEvent(repo)
	if err != nil {
		return goerr.Wrap(err, "failed to build repository created event",
			goerr.V("owner", repo.Organization.Name),
			goerr.V("name", repo.Name))
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return goerr.Wrap(err, "failed to serialize repository created event",
			goerr.T(types.ErrTagValidation))
	}

	ctxlog.From(ctx).Info("Repository created event",
		"event", json.RawMessage(raw),
	)

	return nil
}

// CloneLocal clones an initialized repository into path, dispatching on its
// provider tag. It blocks until the git subprocess exits.
func (uc *repoUseCase) CloneLocal(ctx context.Context, repo model.InitializedRepo, path string) (model.InitializedSource, error) {
	switch r := repo.(type) {
	case model.InitializedGithubRepo:
		return uc.cloneGithub(ctx, r, path)
	case *model.InitializedGithubRepo:
		return uc.cloneGithub(ctx, *r, path)
	default:
		return model.InitializedSource{}, goerr.New("unsupported repository provider",
			goerr.V("provider", repo.Provider()), goerr.T(types.ErrTagConfig))
	}
}

func (uc *repoUseCase) cloneGithub(ctx context.Context, repo model.InitializedGithubRepo, path string) (model.InitializedSource, error) {
	cloneURL := repo.FullURL()

	if err := uc.gitClient.Clone(ctx, cloneURL, path); err != nil {
		return model.InitializedSource{}, goerr.Wrap(err, "failed to clone repository",
			goerr.V("url", cloneURL),
			goerr.V("path", path))
	}

	// Matches the directory a flat "git clone" creates; computed rather
	// than read back from the filesystem.
	return model.InitializedSource{
		Path: fmt.Sprintf("%s/%s", path, repo.Name),
	}, nil
}
