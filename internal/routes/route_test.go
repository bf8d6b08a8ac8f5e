package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"resource-directory/internal/config"
	"resource-directory/internal/database"
	"resource-directory/internal/logger"
	"resource-directory/internal/models"
)

const fixture = `
categories:
  - id: 1
    name: a
resources:
  - name: far
    categories: [a]
    address: {latitude: 100, longitude: 0}
  - name: near
    categories: [a]
    address: {latitude: 10, longitude: 0}
  - name: middle
    categories: [a]
    address: {latitude: 50, longitude: 0}
`

func newTestServer(t *testing.T) (http.Handler, *bun.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLite("file::memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.CreateSchema(ctx, db))
	f, err := database.ParseFixture([]byte(fixture))
	require.NoError(t, err)
	_, err = database.Seed(ctx, db, f)
	require.NoError(t, err)

	cfg := &config.Config{
		DistanceMetric: config.MetricPlanar,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	return NewRouter(db, cfg, &logger.Logger{Logger: zap.NewNop()}), db
}

func TestRouterSearchEndToEnd(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resources?category_id=1&lat=10&long=10", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))

	var body struct {
		Resources []models.ResourceSummary `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Resources, 3)

	got := make([]string, 0, 3)
	for _, r := range body.Resources {
		got = append(got, r.Name+"@"+*r.Address.Latitude)
	}
	assert.Equal(t, []string{"near@10.0", "middle@50.0", "far@100.0"}, got)
}

func TestRouterRejectsMissingCategory(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resources?lat=10&long=10", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"category_id is required"}`, rec.Body.String())
}

func TestRouterResourceDetail(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resources/2", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Resource models.ResourceDetail `json:"resource"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "near", body.Resource.Name)
	assert.Equal(t, []models.CategoryView{{ID: 1, Name: "a"}}, body.Resource.Categories)
}

func TestRouterCategories(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"categories":[{"id":1,"name":"a"}]}`, rec.Body.String())
}

func TestRouterHealthz(t *testing.T) {
	handler, db := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	require.NoError(t, db.Close())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
