package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"exampleapi/docs"
	"exampleapi/internal/config"
	"exampleapi/internal/model"
	"exampleapi/internal/repository/memory"
	"exampleapi/internal/seed"
	"exampleapi/internal/service"
)

func TestResolveSeeds(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		seeds, err := resolveSeeds(ctx, &config.AppConfig{})
		require.NoError(t, err)
		assert.Equal(t, seed.Default(), seeds)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seeds.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":7,"title":"Blog","url":"https://turborepo.com/blog","description":""}]`), 0o600))

		seeds, err := resolveSeeds(ctx, &config.AppConfig{Seed: config.SeedConfig{File: path}})
		require.NoError(t, err)
		assert.Equal(t, []model.Example{{ID: 7, Title: "Blog", URL: "https://turborepo.com/blog"}}, seeds)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := resolveSeeds(ctx, &config.AppConfig{Seed: config.SeedConfig{File: filepath.Join(t.TempDir(), "none.json")}})
		assert.Error(t, err)
	})

	t.Run("object key without storage config", func(t *testing.T) {
		_, err := resolveSeeds(ctx, &config.AppConfig{Seed: config.SeedConfig{ObjectKey: "seeds.json"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "init object storage")
	})
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		repo, db, err := openStore(ctx, &config.AppConfig{StoreDriver: config.StoreMemory}, zap.NewNop(), seed.Default())
		require.NoError(t, err)
		assert.Nil(t, db)

		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 4)
	})

	t.Run("unsupported driver", func(t *testing.T) {
		_, _, err := openStore(ctx, &config.AppConfig{StoreDriver: "sqlite"}, zap.NewNop(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sqlite")
	})
}

func TestNewApp(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := service.NewExampleService(memory.NewExampleMemory(seed.Default()))
	app, err := newApp(zap.NewNop(), reg, nil, svc)
	require.NoError(t, err)

	t.Run("landing page", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("examples", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/examples", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var items []model.Example
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
		assert.Len(t, items, 4)
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `http_requests_total{method="GET",path="/examples",status="200"} 1`)
	})

	t.Run("swagger doc keeps the configured host", func(t *testing.T) {
		configureSwagger("api.example:8080")
		t.Cleanup(func() { configureSwagger("") })

		req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
		req.Host = "other.example"
		req.Header.Set("X-Forwarded-Proto", "ftp")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `"host": "api.example:8080"`)
		assert.NotContains(t, string(body), "other.example")
		assert.Equal(t, "api.example:8080", docs.SwaggerInfo.Host)
		assert.Equal(t, []string{"http", "https"}, docs.SwaggerInfo.Schemes)
	})

	t.Run("second app on the same registry", func(t *testing.T) {
		_, err := newApp(zap.NewNop(), reg, nil, svc)
		assert.Error(t, err)
	})
}
