// internal/service/post/manager.go

package post

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"postforge/internal/domain/content"
	"postforge/internal/domain/post"
	"postforge/internal/metrics"
)

// PostStore defines storage for generated posts
type PostStore interface {
	SavePost(ctx context.Context, p post.Post) error
	GetPost(ctx context.Context, id string) (*post.Post, error)
	FindPosts(ctx context.Context, filter post.Filter) ([]post.Post, error)
}

// EventPublisher announces generated posts to other services
type EventPublisher interface {
	PublishPostGenerated(p post.Post) error
}

// Manager implements the post.Service interface
type Manager struct {
	synthesizer  *Synthesizer
	store        PostStore
	events       EventPublisher
	logger       logrus.FieldLogger
	postHandlers []func(post.Post) error
	mu           sync.RWMutex
	synthMu      sync.Mutex
}

// NewManager creates a new post manager
func NewManager(
	synthesizer *Synthesizer,
	store PostStore,
	events EventPublisher,
	logger logrus.FieldLogger,
) *Manager {
	return &Manager{
		synthesizer:  synthesizer,
		store:        store,
		events:       events,
		logger:       logger,
		postHandlers: []func(post.Post) error{},
	}
}

// Generate synthesizes posts for every requested item, then stores and
// announces each one. Invalid input fails the whole request before anything
// is stored; storage and publish failures are logged per post.
func (m *Manager) Generate(ctx context.Context, req post.GenerateRequest) ([]post.Generated, error) {
	for _, platform := range req.Platforms {
		if !platform.Valid() {
			return nil, fmt.Errorf("%w: %q", post.ErrUnknownPlatform, platform)
		}
	}

	generated, err := m.synthesize(req)
	if err != nil {
		return nil, err
	}

	for _, g := range generated {
		for _, p := range g.Posts {
			m.persist(ctx, g.Item, p)
		}
	}

	return generated, nil
}

func (m *Manager) synthesize(req post.GenerateRequest) ([]post.Generated, error) {
	m.synthMu.Lock()
	defer m.synthMu.Unlock()

	generated := make([]post.Generated, 0, len(req.Items))
	for _, item := range req.Items {
		analysis, err := m.synthesizer.Analyze(item)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item.ID, err)
		}

		platforms := req.Platforms
		if len(platforms) == 0 {
			platforms = analysis.BestPlatforms
		}

		posts := make([]post.Post, 0, len(platforms))
		for _, platform := range platforms {
			p, err := m.synthesizer.postWithAnalysis(item, platform, analysis)
			if err != nil {
				return nil, fmt.Errorf("item %q: %w", item.ID, err)
			}
			posts = append(posts, p)
		}

		generated = append(generated, post.Generated{
			Item:     item,
			Analysis: analysis,
			Posts:    posts,
		})
	}
	return generated, nil
}

func (m *Manager) persist(ctx context.Context, item content.Item, p post.Post) {
	logger := m.logger.WithFields(logrus.Fields{
		"post_id":    p.ID,
		"content_id": p.ContentID,
		"platform":   p.Platform,
	})

	metrics.PostGenerated(string(p.Platform), string(item.Type))

	if err := m.store.SavePost(ctx, p); err != nil {
		logger.WithError(err).Error("Error saving post")
	}

	if err := m.events.PublishPostGenerated(p); err != nil {
		metrics.EventPublishFailed()
		logger.WithError(err).Warn("Error publishing post event")
	}

	m.callPostHandlers(p)
}

// GetPost returns a stored post by ID
func (m *Manager) GetPost(ctx context.Context, id string) (*post.Post, error) {
	return m.store.GetPost(ctx, id)
}

// FindPosts returns stored posts matching the filter
func (m *Manager) FindPosts(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	return m.store.FindPosts(ctx, filter)
}

// RegisterPostHandler registers a callback function for every generated post
func (m *Manager) RegisterPostHandler(handler func(post.Post) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.postHandlers = append(m.postHandlers, handler)
	return nil
}

// callPostHandlers calls all registered post handlers
func (m *Manager) callPostHandlers(p post.Post) {
	m.mu.RLock()
	handlers := make([]func(post.Post) error, len(m.postHandlers))
	copy(handlers, m.postHandlers)
	m.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(p); err != nil {
			m.logger.WithError(err).WithField("post_id", p.ID).Warn("Error in post handler")
		}
	}
}
