package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postforge/internal/config"
	"postforge/internal/domain/post"
	"postforge/internal/service/analysis"
	"postforge/internal/service/textoverlay"
)

type stubService struct{}

func (stubService) Generate(ctx context.Context, req post.GenerateRequest) ([]post.Generated, error) {
	return nil, nil
}

func (stubService) GetPost(ctx context.Context, id string) (*post.Post, error) {
	return nil, post.ErrNotFound
}

func (stubService) FindPosts(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	return []post.Post{{ID: "p1"}}, nil
}

func (stubService) RegisterPostHandler(handler func(post.Post) error) error { return nil }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	logger, _ := logrustest.NewNullLogger()
	s := NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 0, CorsOrigins: []string{"*"}}, Dependencies{
		Posts:    stubService{},
		Analyzer: analysis.NewAnalyzer(analysis.Options{}),
		Overlays: textoverlay.NewGenerator(logger),
	}, logger)
	return s.Handler()
}

func TestRoutes(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"health", http.MethodGet, "/api/health", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"list posts", http.MethodGet, "/api/v1/posts", "", http.StatusOK},
		{"missing post", http.MethodGet, "/api/v1/posts/nope", "", http.StatusNotFound},
		{"analyze bad body", http.MethodPost, "/api/v1/content/analyze", "{}", http.StatusBadRequest},
		{"overlay", http.MethodPost, "/api/v1/overlays", `{"text":"Hello","media":{"type":"image","width":100,"height":100}}`, http.StatusOK},
		{"validate", http.MethodPost, "/api/v1/overlays/validate", `{"style":{"fontSize":8}}`, http.StatusOK},
		{"unknown", http.MethodGet, "/api/v1/trends", "", http.StatusNotFound},
		{"no feed configured", http.MethodGet, "/ws/posts", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestMetricsExposed(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "postforge_overlay_validation_warnings_total")
}
