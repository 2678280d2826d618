package post

import (
	"time"

	"postforge/internal/domain/content"
	"postforge/internal/domain/overlay"
)

// Status of a post in its publishing lifecycle
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
	StatusFailed    Status = "failed"
)

// TextOverlay is a single text annotation drawn on the media
type TextOverlay struct {
	Text      string            `json:"text"`
	Placement overlay.Placement `json:"placement"`
	Style     overlay.Style     `json:"style"`
}

// Analytics counters collected after publishing
type Analytics struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
}

// Post is a ready-to-schedule social media post for one platform
type Post struct {
	ID            string           `json:"id"`
	ContentID     string           `json:"contentId"`
	Platform      content.Platform `json:"platform"`
	TextOverlays  []TextOverlay    `json:"textOverlays"`
	Caption       string           `json:"caption"`
	Hashtags      []string         `json:"hashtags"`
	Status        Status           `json:"status"`
	ScheduledTime *time.Time       `json:"scheduledTime,omitempty"`
	Analytics     *Analytics       `json:"analytics,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Filter defines criteria for listing stored posts
type Filter struct {
	ContentID string
	Platform  content.Platform
	Status    Status
	Limit     int
}
