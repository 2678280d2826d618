// cmd/api/main.go

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"postforge/internal/adapter/events"
	"postforge/internal/adapter/media"
	"postforge/internal/adapter/storage"
	"postforge/internal/config"
	"postforge/internal/domain/post"
	"postforge/internal/logging"
	"postforge/internal/server"
	"postforge/internal/server/handlers"
	"postforge/internal/service/analysis"
	postService "postforge/internal/service/post"
	"postforge/internal/service/textoverlay"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLoggerWithService("postforge", cfg.Log.Level, cfg.Log.Format)

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Initialize dependencies
	db, err := initDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	natsConn, err := initNATS(cfg.NATS, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsConn.Close()

	// Initialize adapters
	postStore := storage.NewPostStore(db)
	publisher := events.NewPublisher(natsConn, cfg.Events.Topic)

	var renderer post.Renderer
	if cfg.Media.Enabled {
		renderer = media.NewRenderer(media.Config{
			BaseURL:   cfg.Media.BaseURL,
			CloudName: cfg.Media.CloudName,
		})
	}

	// Initialize services
	analyzer := analysis.NewAnalyzer(analysis.Options{
		DeduplicateHashtags: cfg.Generator.DeduplicateHashtags,
	})
	overlayGenerator := textoverlay.NewGenerator(logger.WithField("component", "textoverlay"))

	synthesizer := postService.NewSynthesizer(
		overlayGenerator,
		analyzer,
		postService.NewTemplates(),
		postService.NewRandom(cfg.Generator.RandomSeed),
		time.Now,
		postService.SynthesizerConfig{
			ScheduleWindow: cfg.Generator.ScheduleWindow,
		},
	)

	postManager := postService.NewManager(
		synthesizer,
		postStore,
		publisher,
		logger.WithField("component", "posts"),
	)

	// Log every generated post
	postManager.RegisterPostHandler(func(p post.Post) error {
		logger.WithFields(logrus.Fields{
			"post_id":  p.ID,
			"platform": p.Platform,
			"overlays": len(p.TextOverlays),
		}).Debug("Post generated")
		return nil
	})

	// Initialize HTTP server
	httpServer := server.NewServer(
		cfg.Server,
		server.Dependencies{
			Posts:    postManager,
			Analyzer: analyzer,
			Overlays: overlayGenerator,
			Renderer: renderer,
			Media: handlers.MediaOptions{
				Concurrency: cfg.Media.RenderConcurrency,
				Timeout:     cfg.Media.RenderTimeout,
			},
			Feed: events.NewSubscriber(natsConn, cfg.Events.Topic),
		},
		logger,
	)

	// Start HTTP server
	go func() {
		logger.Infof("Starting HTTP server on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	logger.Info("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown HTTP server
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown error")
	}

	// Flush pending events before the deferred close
	if err := natsConn.FlushTimeout(cfg.Server.ShutdownTimeout); err != nil {
		logger.WithError(err).Warn("NATS flush error")
	}

	logger.Info("Shutdown complete")
}

// Initialize database connection
func initDatabase(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.MaxLifetime

	db, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Test connection
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return db, nil
}

// Initialize NATS connection
func initNATS(cfg config.NATSConfig, logger logrus.FieldLogger) (*nats.Conn, error) {
	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.WithError(err).Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Infof("NATS reconnected to %s", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to NATS: %w", err)
	}

	return nc, nil
}
