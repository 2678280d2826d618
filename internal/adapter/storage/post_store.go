// internal/adapter/storage/post_store.go

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"postforge/internal/domain/content"
	"postforge/internal/domain/post"
)

const defaultFindLimit = 100

// PostStore implements storage for generated posts
type PostStore struct {
	db *pgxpool.Pool
}

// NewPostStore creates a new post store
func NewPostStore(db *pgxpool.Pool) *PostStore {
	return &PostStore{
		db: db,
	}
}

// SavePost saves a post to storage
func (s *PostStore) SavePost(ctx context.Context, p post.Post) error {
	query := `
		INSERT INTO posts (
			id, content_id, platform, text_overlays, caption,
			hashtags, status, scheduled_time, analytics, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10
		)
		ON CONFLICT (id) DO UPDATE
		SET
			text_overlays = $4,
			caption = $5,
			hashtags = $6,
			status = $7,
			scheduled_time = $8,
			analytics = $9
	`

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	overlaysJSON, err := json.Marshal(p.TextOverlays)
	if err != nil {
		return fmt.Errorf("error marshaling text overlays: %w", err)
	}

	var analyticsJSON []byte
	if p.Analytics != nil {
		analyticsJSON, err = json.Marshal(p.Analytics)
		if err != nil {
			return fmt.Errorf("error marshaling analytics: %w", err)
		}
	}

	_, err = s.db.Exec(
		ctx,
		query,
		p.ID,
		p.ContentID,
		string(p.Platform),
		overlaysJSON,
		p.Caption,
		p.Hashtags,
		string(p.Status),
		p.ScheduledTime,
		analyticsJSON,
		p.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetPost retrieves a post by ID
func (s *PostStore) GetPost(ctx context.Context, id string) (*post.Post, error) {
	query := `
		SELECT
			id, content_id, platform, text_overlays, caption,
			hashtags, status, scheduled_time, analytics, created_at
		FROM posts
		WHERE id = $1
	`

	p, err := scanPost(s.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying post: %w", err)
	}

	return p, nil
}

// FindPosts finds posts matching the filter, newest first
func (s *PostStore) FindPosts(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	query, args := buildFindQuery(filter)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

func buildFindQuery(filter post.Filter) (string, []interface{}) {
	query := `
		SELECT
			id, content_id, platform, text_overlays, caption,
			hashtags, status, scheduled_time, analytics, created_at
		FROM posts
		WHERE 1 = 1
	`

	var args []interface{}
	argIndex := 1

	if filter.ContentID != "" {
		query += fmt.Sprintf(" AND content_id = $%d", argIndex)
		args = append(args, filter.ContentID)
		argIndex++
	}

	if filter.Platform != "" {
		query += fmt.Sprintf(" AND platform = $%d", argIndex)
		args = append(args, string(filter.Platform))
		argIndex++
	}

	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, string(filter.Status))
		argIndex++
	}

	limit := filter.Limit
	if limit <= 0 || limit > defaultFindLimit {
		limit = defaultFindLimit
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argIndex)
	args = append(args, limit)

	return query, args
}

// scanPost reads one row in the column order used by every query above
func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	var platform, status string
	var overlaysJSON, analyticsJSON []byte

	err := row.Scan(
		&p.ID,
		&p.ContentID,
		&platform,
		&overlaysJSON,
		&p.Caption,
		&p.Hashtags,
		&status,
		&p.ScheduledTime,
		&analyticsJSON,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeColumns(&p, platform, status, overlaysJSON, analyticsJSON); err != nil {
		return nil, err
	}

	return &p, nil
}

func decodeColumns(p *post.Post, platform, status string, overlaysJSON, analyticsJSON []byte) error {
	p.Platform = content.Platform(platform)
	p.Status = post.Status(status)

	if len(overlaysJSON) > 0 {
		if err := json.Unmarshal(overlaysJSON, &p.TextOverlays); err != nil {
			return fmt.Errorf("error unmarshaling text overlays: %w", err)
		}
	}

	if len(analyticsJSON) > 0 {
		var a post.Analytics
		if err := json.Unmarshal(analyticsJSON, &a); err != nil {
			return fmt.Errorf("error unmarshaling analytics: %w", err)
		}
		p.Analytics = &a
	}

	return nil
}
