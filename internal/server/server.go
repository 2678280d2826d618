// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"postforge/internal/config"
	"postforge/internal/domain/content"
	"postforge/internal/domain/post"
	"postforge/internal/server/handlers"
	"postforge/internal/service/textoverlay"
)

// Dependencies are the services exposed over HTTP
type Dependencies struct {
	Posts    post.Service
	Analyzer content.Analyzer
	Overlays *textoverlay.Generator
	// Renderer may be nil when media rendering is disabled
	Renderer post.Renderer
	Media    handlers.MediaOptions
	Feed     handlers.FeedSource
}

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(cfg config.ServerConfig, deps Dependencies, logger logrus.FieldLogger) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	router.Use(middleware.Recoverer)

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create handler dependencies
	contentHandler := handlers.NewContentHandler(deps.Analyzer, logger)
	postHandler := handlers.NewPostHandler(deps.Posts, deps.Renderer, deps.Media, logger)
	overlayHandler := handlers.NewOverlayHandler(deps.Overlays)

	router.Handle("/metrics", promhttp.Handler())

	// Routes
	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// API version
		r.Route("/v1", func(r chi.Router) {
			// Content API
			r.Post("/content/analyze", contentHandler.Analyze)

			// Posts API
			r.Route("/posts", func(r chi.Router) {
				r.Get("/", postHandler.ListPosts)
				r.Post("/generate", postHandler.Generate)
				r.Post("/batch", postHandler.Batch)
				r.Get("/{id}", postHandler.GetPost)
			})

			// Overlays API
			r.Route("/overlays", func(r chi.Router) {
				r.Post("/", overlayHandler.Generate)
				r.Post("/multi", overlayHandler.GenerateMultiple)
				r.Post("/validate", overlayHandler.Validate)
			})
		})
	})

	// WebSocket endpoint for the live post feed
	if deps.Feed != nil {
		router.Get("/ws/posts", handlers.PostFeedHandler(deps.Feed, logger))
	}

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
