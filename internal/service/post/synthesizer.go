// internal/service/post/synthesizer.go

package post

import (
	"fmt"
	"strings"
	"time"

	"postforge/internal/domain/content"
	"postforge/internal/domain/overlay"
	"postforge/internal/domain/post"
	"postforge/internal/service/textoverlay"
)

// Fixed overlay copy
const (
	viralBadgeText = "🔥 VIRAL"
	learnMoreText  = "Learn More →"
)

type platformCTA struct {
	text     string
	position overlay.Position
}

var videoCTAs = map[content.Platform]platformCTA{
	content.PlatformTikTok:    {"Follow for more! 👆", overlay.BottomCenter},
	content.PlatformInstagram: {"Double tap if you agree ❤️", overlay.BottomLeft},
	content.PlatformYouTube:   {"Subscribe for more! 🔔", overlay.BottomRight},
	content.PlatformTwitter:   {"Retweet if you relate 🔁", overlay.BottomCenter},
	content.PlatformFacebook:  {"Share with your friends! 👥", overlay.BottomCenter},
}

// SynthesizerConfig contains configuration for the post synthesizer
type SynthesizerConfig struct {
	// ScheduleWindow bounds the random delay added to the scheduled time
	ScheduleWindow time.Duration
}

// Synthesizer assembles complete posts from an item. It is not safe for
// concurrent use because it draws from a single Random.
type Synthesizer struct {
	overlays  *textoverlay.Generator
	analyzer  content.Analyzer
	templates *Templates
	random    Random
	clock     Clock
	config    SynthesizerConfig
}

// NewSynthesizer creates a new post synthesizer
func NewSynthesizer(
	overlays *textoverlay.Generator,
	analyzer content.Analyzer,
	templates *Templates,
	random Random,
	clock Clock,
	config SynthesizerConfig,
) *Synthesizer {
	if clock == nil {
		clock = time.Now
	}
	return &Synthesizer{
		overlays:  overlays,
		analyzer:  analyzer,
		templates: templates,
		random:    random,
		clock:     clock,
		config:    config,
	}
}

// Analyze runs the platform analysis for an item
func (s *Synthesizer) Analyze(item content.Item) (content.Analysis, error) {
	return s.analyzer.Analyze(item)
}

// Overlays builds the text overlays for an item on a platform
func (s *Synthesizer) Overlays(item content.Item, platform content.Platform) ([]post.TextOverlay, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if !platform.Valid() {
		return nil, fmt.Errorf("%w: %q", post.ErrUnknownPlatform, platform)
	}

	media := mediaContextFor(item, platform)

	switch item.Type {
	case content.KindVideo:
		title := s.overlays.Generate(pick(s.random, s.templates.Titles(item.Category)), media, &overlay.Options{
			ContentType: overlay.ContentTitle,
			Importance:  overlay.ImportanceHigh,
		})
		cta := videoCTAs[platform]
		return []post.TextOverlay{
			fromResult(title),
			{
				Text:      cta.text,
				Placement: overlay.PlacementFromPosition(cta.position),
				Style:     ctaStyle(),
			},
		}, nil

	case content.KindMeme:
		callout := s.overlays.Generate(pick(s.random, s.templates.Callouts(item.Category)), media, &overlay.Options{
			ContentType: overlay.ContentCallout,
			Style:       memeCalloutStyle(),
		})
		return []post.TextOverlay{
			fromResult(callout),
			{
				Text:      viralBadgeText,
				Placement: overlay.PlacementFromPosition(overlay.TopRight),
				Style:     badgeStyle(),
			},
		}, nil

	default:
		message := s.overlays.Generate(pick(s.random, s.templates.BrandMessages(item.Category)), media, &overlay.Options{
			ContentType: overlay.ContentTitle,
		})
		return []post.TextOverlay{
			fromResult(message),
			{
				Text:      learnMoreText,
				Placement: overlay.PlacementFromPosition(overlay.BottomCenter),
				Style:     ctaStyle(),
			},
		}, nil
	}
}

// Caption renders the base caption, a platform call to action and the
// hashtags, separated by blank lines
func (s *Synthesizer) Caption(item content.Item, platform content.Platform, hashtags []string) string {
	parts := []string{pick(s.random, s.templates.Captions(item.Category))}

	if cta := pick(s.random, s.templates.CallsToAction(platform)); cta != "" {
		parts = append(parts, cta)
	}

	if len(hashtags) > 0 {
		tags := make([]string, len(hashtags))
		for i, h := range hashtags {
			tags[i] = "#" + h
		}
		parts = append(parts, strings.Join(tags, " "))
	}

	return strings.Join(parts, "\n\n")
}

// Post synthesizes a single draft post for an item on a platform
func (s *Synthesizer) Post(item content.Item, platform content.Platform) (post.Post, error) {
	analysis, err := s.analyzer.Analyze(item)
	if err != nil {
		return post.Post{}, err
	}
	return s.postWithAnalysis(item, platform, analysis)
}

// MultiPlatform synthesizes one post per platform
func (s *Synthesizer) MultiPlatform(item content.Item, platforms []content.Platform) ([]post.Post, error) {
	analysis, err := s.analyzer.Analyze(item)
	if err != nil {
		return nil, err
	}

	posts := make([]post.Post, 0, len(platforms))
	for _, platform := range platforms {
		p, err := s.postWithAnalysis(item, platform, analysis)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// Batch synthesizes posts for every item on every platform,
// ordered by item then platform
func (s *Synthesizer) Batch(items []content.Item, platforms []content.Platform) ([]post.Post, error) {
	posts := make([]post.Post, 0, len(items)*len(platforms))
	for _, item := range items {
		itemPosts, err := s.MultiPlatform(item, platforms)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", item.ID, err)
		}
		posts = append(posts, itemPosts...)
	}
	return posts, nil
}

func (s *Synthesizer) postWithAnalysis(item content.Item, platform content.Platform, analysis content.Analysis) (post.Post, error) {
	overlays, err := s.Overlays(item, platform)
	if err != nil {
		return post.Post{}, err
	}

	hashtags := append([]string(nil), analysis.SuggestedHashtags...)
	caption := s.Caption(item, platform, hashtags)

	now := s.clock()
	id, err := newPostID(s.random, now)
	if err != nil {
		return post.Post{}, fmt.Errorf("error generating post id: %w", err)
	}

	scheduled := now
	if s.config.ScheduleWindow > 0 {
		scheduled = now.Add(time.Duration(s.random.Int63n(int64(s.config.ScheduleWindow))))
	}

	return post.Post{
		ID:            id,
		ContentID:     item.ID,
		Platform:      platform,
		TextOverlays:  overlays,
		Caption:       caption,
		Hashtags:      hashtags,
		Status:        post.StatusDraft,
		ScheduledTime: &scheduled,
		CreatedAt:     now,
	}, nil
}

func mediaContextFor(item content.Item, platform content.Platform) overlay.MediaContext {
	media := overlay.MediaContext{
		Type:     overlay.MediaImage,
		Width:    item.Dimensions.Width,
		Height:   item.Dimensions.Height,
		Platform: string(platform),
	}
	if item.Type == content.KindVideo {
		media.Type = overlay.MediaVideo
		media.Duration = item.Duration
	}
	return media
}

func fromResult(r textoverlay.Result) post.TextOverlay {
	return post.TextOverlay{
		Text:      r.Text,
		Placement: r.Placement,
		Style:     r.Style,
	}
}

func ctaStyle() overlay.Style {
	return overlay.Style{
		FontFamily:      "Arial",
		FontSize:        28,
		Color:           "#FFFFFF",
		BackgroundColor: "rgba(0,0,0,0.6)",
		Opacity:         1,
		FontWeight:      "bold",
		FontStyle:       "normal",
		TextDecoration:  "none",
		TextAlign:       "center",
		Stroke:          &overlay.Stroke{Color: "#000000", Width: 2},
		Animation:       &overlay.Animation{Type: overlay.AnimationSlide, Duration: 0.5},
	}
}

func badgeStyle() overlay.Style {
	return overlay.Style{
		FontFamily:      "Arial Black",
		FontSize:        24,
		Color:           "#FFFFFF",
		BackgroundColor: "#FF0000",
		Opacity:         1,
		FontWeight:      "900",
		FontStyle:       "normal",
		TextDecoration:  "none",
		TextAlign:       "center",
		Animation:       &overlay.Animation{Type: overlay.AnimationZoom, Duration: 0.4},
	}
}

func memeCalloutStyle() *overlay.StyleOverride {
	font := "Impact"
	weight := "900"
	strokeColor := "#000000"
	strokeWidth := 4.0
	return &overlay.StyleOverride{
		FontFamily: &font,
		FontWeight: &weight,
		Stroke: &overlay.StrokeOverride{
			Color: &strokeColor,
			Width: &strokeWidth,
		},
	}
}
