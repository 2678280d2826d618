package content

import (
	"time"
)

// Kind is the coarse media classification that drives most lookups
type Kind string

const (
	KindVideo   Kind = "video"
	KindMeme    Kind = "meme"
	KindGraphic Kind = "graphic"
)

// Valid reports whether k is a known media kind
func (k Kind) Valid() bool {
	switch k {
	case KindVideo, KindMeme, KindGraphic:
		return true
	}
	return false
}

// Platform is a social network a post can target
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
)

// Platforms lists every supported platform
var Platforms = []Platform{
	PlatformTikTok,
	PlatformInstagram,
	PlatformYouTube,
	PlatformTwitter,
	PlatformFacebook,
}

// Valid reports whether p is a supported platform
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// Dimensions of the media in pixels
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Engagement counters reported for the media
type Engagement struct {
	Likes    int `json:"likes"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
	Views    int `json:"views"`
}

// Item is a unit of media to be promoted. It is never mutated by the engine.
type Item struct {
	ID           string      `json:"id"`
	Type         Kind        `json:"type"`
	Category     string      `json:"category"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
	ContentURL   string      `json:"contentUrl"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	PublicID     string      `json:"publicId,omitempty"`
	Duration     *float64    `json:"duration,omitempty"`
	Dimensions   Dimensions  `json:"dimensions"`
	UploadedAt   time.Time   `json:"uploadedAt"`
	Engagement   *Engagement `json:"engagement,omitempty"`
}

// EngagementOrZero returns the counters, or zero counters when none were reported
func (i Item) EngagementOrZero() Engagement {
	if i.Engagement == nil {
		return Engagement{}
	}
	return *i.Engagement
}

// Analysis is the platform-level view of an item
type Analysis struct {
	Category          string     `json:"category"`
	TargetAudience    []string   `json:"targetAudience"`
	BestPlatforms     []Platform `json:"bestPlatforms"`
	TrendingScore     int        `json:"trendingScore"`
	SuggestedHashtags []string   `json:"suggestedHashtags"`
}
