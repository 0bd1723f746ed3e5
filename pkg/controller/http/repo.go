package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/kusaridev/skoot/pkg/domain/interfaces"
	"github.com/kusaridev/skoot/pkg/domain/model"
	"github.com/kusaridev/skoot/pkg/domain/types"
)

// RepoHandler exposes the repository service over HTTP
type RepoHandler struct {
	repoSvc interfaces.RepoService
}

// NewRepoHandler creates a new RepoHandler
func NewRepoHandler(repoSvc interfaces.RepoService) *RepoHandler {
	return &RepoHandler{
		repoSvc: repoSvc,
	}
}

// createRepoRequest wraps the provider variants of the creation parameters.
// Exactly one variant must be set.
type createRepoRequest struct {
	Github *model.GithubRepoParams `json:"github"`
}

// initializedRepoPayload is the wire form of an InitializedRepo, tagged by
// provider. The create response returns it; the clone request carries it
// back.
type initializedRepoPayload struct {
	Github *model.InitializedGithubRepo `json:"github"`
}

type cloneRepoRequest struct {
	Repo initializedRepoPayload `json:"repo"`
	Path string                 `json:"path"`
}

// HandleCreate creates a remote repository
func (h *RepoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	var req createRepoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
		return
	}
	if req.Github == nil {
		writeError(w, goerr.New("missing repository parameters"), http.StatusBadRequest)
		return
	}

	initialized, err := h.repoSvc.Initialize(ctx, *req.Github)
	if err != nil {
		logger.Error("Failed to initialize repository", "error", err)
		writeError(w, err, errorStatus(err))
		return
	}

	githubRepo, ok := initialized.(model.InitializedGithubRepo)
	if !ok {
		writeError(w, goerr.New("unexpected initialization result"), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, initializedRepoPayload{Github: &githubRepo})
}

// HandleClone clones an initialized repository to a local path
func (h *RepoHandler) HandleClone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	var req cloneRepoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
		return
	}
	if req.Repo.Github == nil {
		writeError(w, goerr.New("missing initialized repository"), http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		writeError(w, goerr.New("missing clone path"), http.StatusBadRequest)
		return
	}

	source, err := h.repoSvc.CloneLocal(ctx, *req.Repo.Github, req.Path)
	if err != nil {
		logger.Error("Failed to clone repository", "error", err)
		writeError(w, err, errorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, source)
}

// errorStatus maps error tags to HTTP status codes
func errorStatus(err error) int {
	switch {
	case goerr.HasTag(err, types.ErrTagProvider):
		return http.StatusBadGateway
	case goerr.HasTag(err, types.ErrTagValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(context.Background()).Error("Failed to encode response", "error", err)
	}
}
