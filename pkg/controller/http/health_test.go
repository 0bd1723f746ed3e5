package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	controller "github.com/kusaridev/skoot/pkg/controller/http"
	"github.com/kusaridev/skoot/pkg/domain/model"
	"github.com/kusaridev/skoot/pkg/usecase"
)

func TestHealthEndpoint(t *testing.T) {
	ctx := context.Background()
	repoSvc := usecase.NewRepo(nil, nil)

	server, err := controller.NewServer(
		ctx,
		repoSvc,
		controller.WithAddr("localhost:0"),
	)
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusOK)

	var status model.HealthStatus
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&status))

	gt.Value(t, status.Status).Equal("healthy")
	gt.Value(t, status.Service).Equal("skoot")
	gt.Value(t, status.Version).NotEqual("")
}
