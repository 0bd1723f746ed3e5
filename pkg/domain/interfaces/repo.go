package interfaces

import (
	"context"

	"github.com/kusaridev/skoot/pkg/domain/model"
)

// RepoService provisions a project's source repository on a hosting provider
// and establishes a local working copy of it. Implementations dispatch on the
// provider tag of the inputs; adding a provider means adding a variant and a
// handler, never changing existing variants.
type RepoService interface {
	// Initialize creates the remote repository described by params. It
	// fails before any network call when the credential material for the
	// selected provider is absent. On success a lifecycle event has been
	// emitted and the returned value certifies the repository exists.
	Initialize(ctx context.Context, params model.RepoParams) (model.InitializedRepo, error)

	// CloneLocal clones an initialized repository into path. It blocks for
	// the duration of the git subprocess and returns the location of the
	// working copy, "{path}/{repo name}".
	CloneLocal(ctx context.Context, repo model.InitializedRepo, path string) (model.InitializedSource, error)
}
