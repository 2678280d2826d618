// internal/domain/post/service.go

package post

import (
	"context"
	"errors"

	"postforge/internal/domain/content"
)

// Common errors
var (
	ErrNotFound        = errors.New("post not found")
	ErrUnknownPlatform = errors.New("unknown platform")
)

// GenerateRequest asks for posts for one or more items. An empty platform
// list means each item's best platforms from analysis.
type GenerateRequest struct {
	Items     []content.Item
	Platforms []content.Platform
}

// Generated is the output for a single item
type Generated struct {
	Item     content.Item     `json:"-"`
	Analysis content.Analysis `json:"analysis"`
	Posts    []Post           `json:"posts"`
}

// Service defines the interface for generating and retrieving posts
type Service interface {
	// Generate synthesizes, stores and announces posts
	Generate(ctx context.Context, req GenerateRequest) ([]Generated, error)

	// GetPost returns a stored post by ID
	GetPost(ctx context.Context, id string) (*Post, error)

	// FindPosts returns stored posts matching the filter
	FindPosts(ctx context.Context, filter Filter) ([]Post, error)

	// RegisterPostHandler registers a callback invoked for every generated post
	RegisterPostHandler(handler func(Post) error) error
}

// Renderer turns overlays into a processed media URL at the media provider
type Renderer interface {
	Render(ctx context.Context, item content.Item, overlays []TextOverlay) (string, error)
}
