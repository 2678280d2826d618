// internal/server/handlers/post.go

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"postforge/internal/domain/content"
	"postforge/internal/domain/post"
)

// MediaOptions bound media rendering for a single request
type MediaOptions struct {
	Concurrency int
	Timeout     time.Duration
}

// PostHandler handles post generation and retrieval requests
type PostHandler struct {
	service  post.Service
	renderer post.Renderer
	media    MediaOptions
	logger   logrus.FieldLogger
}

// NewPostHandler creates a new post handler. A nil renderer disables media
// rendering.
func NewPostHandler(
	service post.Service,
	renderer post.Renderer,
	media MediaOptions,
	logger logrus.FieldLogger,
) *PostHandler {
	if media.Concurrency < 1 {
		media.Concurrency = 1
	}
	return &PostHandler{
		service:  service,
		renderer: renderer,
		media:    media,
		logger:   logger,
	}
}

type generateRequest struct {
	Content       *content.Item      `json:"content"`
	Platforms     []content.Platform `json:"platforms,omitempty"`
	GenerateMedia bool               `json:"generateMedia,omitempty"`
}

type generateResponse struct {
	Analysis content.Analysis `json:"analysis"`
	Posts    []post.Post      `json:"posts"`
	Media    []MediaRecord    `json:"media,omitempty"`
}

type batchRequest struct {
	Contents  []content.Item     `json:"contents"`
	Platforms []content.Platform `json:"platforms,omitempty"`
}

// MediaRecord is the outcome of rendering one post's overlays
type MediaRecord struct {
	PostID       string             `json:"postId"`
	Platform     content.Platform   `json:"platform"`
	OriginalURL  string             `json:"originalUrl"`
	ProcessedURL *string            `json:"processedUrl"`
	Error        string             `json:"error,omitempty"`
	TextOverlays []post.TextOverlay `json:"textOverlays"`
}

// Generate creates posts for one content item and optionally renders media
func (h *PostHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Content == nil {
		respondWithError(w, http.StatusBadRequest, "content is required")
		return
	}
	if err := req.Content.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	generated, err := h.service.Generate(r.Context(), post.GenerateRequest{
		Items:     []content.Item{*req.Content},
		Platforms: req.Platforms,
	})
	if err != nil {
		h.respondWithGenerateError(w, err)
		return
	}

	g := generated[0]
	resp := generateResponse{
		Analysis: g.Analysis,
		Posts:    g.Posts,
	}

	if req.GenerateMedia {
		resp.Media = h.renderMedia(r.Context(), *req.Content, g.Posts)
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// Batch creates posts for several content items
func (h *PostHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Contents) == 0 {
		respondWithError(w, http.StatusBadRequest, "contents are required")
		return
	}
	for i, item := range req.Contents {
		if err := item.Validate(); err != nil {
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("contents[%d]: %s", i, err))
			return
		}
	}

	generated, err := h.service.Generate(r.Context(), post.GenerateRequest{
		Items:     req.Contents,
		Platforms: req.Platforms,
	})
	if err != nil {
		h.respondWithGenerateError(w, err)
		return
	}

	posts := []post.Post{}
	for _, g := range generated {
		posts = append(posts, g.Posts...)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}

// ListPosts returns stored posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))

	filter := post.Filter{
		ContentID: query.Get("content_id"),
		Platform:  content.Platform(query.Get("platform")),
		Status:    post.Status(query.Get("status")),
		Limit:     limit,
	}

	if filter.Platform != "" && !filter.Platform.Valid() {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("unknown platform %q", filter.Platform))
		return
	}

	posts, err := h.service.FindPosts(r.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list posts")
		respondWithError(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}
	if posts == nil {
		posts = []post.Post{}
	}

	respondWithJSON(w, http.StatusOK, posts)
}

// GetPost returns a stored post by ID
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing post ID")
		return
	}

	p, err := h.service.GetPost(r.Context(), id)
	if errors.Is(err, post.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("post_id", id).Error("Failed to get post")
		respondWithError(w, http.StatusInternalServerError, "Failed to get post")
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *PostHandler) respondWithGenerateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, content.ErrInvalidContent), errors.Is(err, post.ErrUnknownPlatform):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).Error("Failed to generate posts")
		respondWithError(w, http.StatusInternalServerError, "Failed to generate posts")
	}
}

// renderMedia renders every post concurrently. A failed render is reported in
// its record and never fails the request.
func (h *PostHandler) renderMedia(ctx context.Context, item content.Item, posts []post.Post) []MediaRecord {
	records := make([]MediaRecord, len(posts))
	for i, p := range posts {
		records[i] = MediaRecord{
			PostID:       p.ID,
			Platform:     p.Platform,
			OriginalURL:  item.ContentURL,
			TextOverlays: p.TextOverlays,
		}
	}

	if h.renderer == nil {
		for i := range records {
			records[i].Error = "media rendering disabled"
		}
		return records
	}

	if h.media.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.media.Timeout)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.media.Concurrency)

	for i := range records {
		i := i
		g.Go(func() error {
			url, err := h.renderer.Render(gctx, item, records[i].TextOverlays)
			if err != nil {
				h.logger.WithError(err).WithFields(logrus.Fields{
					"post_id":  records[i].PostID,
					"platform": records[i].Platform,
				}).Warn("Failed to render media")
				records[i].Error = err.Error()
				return nil
			}
			records[i].ProcessedURL = &url
			return nil
		})
	}

	_ = g.Wait()
	return records
}
