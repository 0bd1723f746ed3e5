package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	controller "github.com/kusaridev/skoot/pkg/controller/http"
	"github.com/kusaridev/skoot/pkg/domain/model"
	"github.com/kusaridev/skoot/pkg/domain/types"
)

// MockRepoService is a mock implementation of RepoService
type MockRepoService struct {
	initializeFunc func(ctx context.Context, params model.RepoParams) (model.InitializedRepo, error)
	cloneFunc      func(ctx context.Context, repo model.InitializedRepo, path string) (model.InitializedSource, error)
}

func (m *MockRepoService) Initialize(ctx context.Context, params model.RepoParams) (model.InitializedRepo, error) {
	if m.initializeFunc != nil {
		return m.initializeFunc(ctx, params)
	}
	return nil, goerr.New("mock not configured")
}

func (m *MockRepoService) CloneLocal(ctx context.Context, repo model.InitializedRepo, path string) (model.InitializedSource, error) {
	if m.cloneFunc != nil {
		return m.cloneFunc(ctx, repo, path)
	}
	return model.InitializedSource{}, goerr.New("mock not configured")
}

func newTestServer(t *testing.T, svc *MockRepoService) *controller.Server {
	t.Helper()
	server, err := controller.NewServer(context.Background(), svc, controller.WithAddr("localhost:0"))
	gt.NoError(t, err)
	return server
}

func TestRepoCreateEndpoint(t *testing.T) {
	var gotParams model.RepoParams

	svc := &MockRepoService{
		initializeFunc: func(ctx context.Context, params model.RepoParams) (model.InitializedRepo, error) {
			gotParams = params
			github := params.(model.GithubRepoParams)
			return model.InitializedGithubRepo{
				Name:         github.Name,
				Organization: github.Organization,
			}, nil
		},
	}
	server := newTestServer(t, svc)

	body := `{"github":{"name":"skootrs","description":"d","organization":{"kind":"organization","name":"kusaridev"}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/repo", strings.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusCreated)

	params := gt.Cast[model.GithubRepoParams](t, gotParams)
	gt.Value(t, params.Name).Equal("skootrs")
	gt.Value(t, params.Organization).Equal(model.NewGithubOrg("kusaridev"))

	var resp struct {
		Github *model.InitializedGithubRepo `json:"github"`
	}
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	gt.Value(t, resp.Github).NotNil()
	gt.Value(t, resp.Github.Name).Equal("skootrs")
	gt.Value(t, resp.Github.Organization.Kind).Equal(model.GithubUserKindOrganization)
}

func TestRepoCreateEndpoint_InvalidJSON(t *testing.T) {
	server := newTestServer(t, &MockRepoService{})

	req := httptest.NewRequest(http.MethodPost, "/api/repo", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusBadRequest)
}

func TestRepoCreateEndpoint_MissingVariant(t *testing.T) {
	server := newTestServer(t, &MockRepoService{})

	req := httptest.NewRequest(http.MethodPost, "/api/repo", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusBadRequest)
}

func TestRepoCreateEndpoint_ProviderError(t *testing.T) {
	svc := &MockRepoService{
		initializeFunc: func(ctx context.Context, params model.RepoParams) (model.InitializedRepo, error) {
			return nil, goerr.New("name already exists", goerr.T(types.ErrTagProvider))
		},
	}
	server := newTestServer(t, svc)

	body := `{"github":{"name":"skootrs","organization":{"kind":"organization","name":"kusaridev"}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/repo", strings.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusBadGateway)
}

func TestRepoCloneEndpoint(t *testing.T) {
	svc := &MockRepoService{
		cloneFunc: func(ctx context.Context, repo model.InitializedRepo, path string) (model.InitializedSource, error) {
			github := repo.(model.InitializedGithubRepo)
			return model.InitializedSource{Path: path + "/" + github.Name}, nil
		},
	}
	server := newTestServer(t, svc)

	body := `{"repo":{"github":{"name":"skootrs","organization":{"kind":"organization","name":"kusaridev"}}},"path":"/tmp/x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/repo/clone", strings.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusOK)

	var source model.InitializedSource
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&source))
	gt.Value(t, source.Path).Equal("/tmp/x/skootrs")
}

func TestRepoCloneEndpoint_MissingPath(t *testing.T) {
	server := newTestServer(t, &MockRepoService{})

	body := `{"repo":{"github":{"name":"skootrs","organization":{"kind":"organization","name":"kusaridev"}}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/repo/clone", strings.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusBadRequest)
}
