package post

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postforge/internal/domain/content"
	"postforge/internal/domain/overlay"
	"postforge/internal/domain/post"
	"postforge/internal/service/analysis"
	"postforge/internal/service/textoverlay"
)

var fixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestSynthesizer(seed int64) *Synthesizer {
	return NewSynthesizer(
		textoverlay.NewGenerator(quietLogger()),
		analysis.NewAnalyzer(analysis.Options{}),
		NewTemplates(),
		NewRandom(seed),
		func() time.Time { return fixedNow },
		SynthesizerConfig{ScheduleWindow: 24 * time.Hour},
	)
}

func testItem(kind content.Kind, category string) content.Item {
	it := content.Item{
		ID:         "content-1",
		Type:       kind,
		Category:   category,
		Title:      "Sample",
		ContentURL: "https://res.cloudinary.com/demo/image/upload/v1/sample.jpg",
		Dimensions: content.Dimensions{Width: 1080, Height: 1920},
	}
	if kind == content.KindVideo {
		d := 30.0
		it.Duration = &d
	}
	return it
}

func TestGraphicInstagramPost(t *testing.T) {
	s := newTestSynthesizer(42)
	p, err := s.Post(testItem(content.KindGraphic, "brand"), content.PlatformInstagram)
	require.NoError(t, err)

	require.Len(t, p.TextOverlays, 2)
	assert.Equal(t, post.StatusDraft, p.Status)
	assert.Contains(t, NewTemplates().BrandMessages("brand"), p.TextOverlays[0].Text)
	assert.Equal(t, "Learn More →", p.TextOverlays[1].Text)
	assert.Equal(t, overlay.BottomCenter, p.TextOverlays[1].Placement.Position)
	assert.Equal(t, content.PlatformInstagram, p.Platform)
	assert.Equal(t, "content-1", p.ContentID)
}

func TestVideoOverlays(t *testing.T) {
	s := newTestSynthesizer(7)
	overlays, err := s.Overlays(testItem(content.KindVideo, "subway-surfers"), content.PlatformTikTok)
	require.NoError(t, err)
	require.Len(t, overlays, 2)

	title := overlays[0]
	assert.Contains(t, NewTemplates().Titles("subway-surfers"), title.Text)
	assert.Equal(t, overlay.TopCenter, title.Placement.Position)
	assert.Equal(t, "bold", title.Style.FontWeight)
	require.NotNil(t, title.Placement.EndTime)
	assert.Equal(t, 5.0, *title.Placement.EndTime)

	assert.Equal(t, "Follow for more! 👆", overlays[1].Text)
	assert.Equal(t, overlay.BottomCenter, overlays[1].Placement.Position)

	overlays, err = s.Overlays(testItem(content.KindVideo, "subway-surfers"), content.PlatformInstagram)
	require.NoError(t, err)
	assert.Equal(t, overlay.BottomLeft, overlays[1].Placement.Position)
}

func TestMemeOverlays(t *testing.T) {
	s := newTestSynthesizer(7)
	overlays, err := s.Overlays(testItem(content.KindMeme, "relatable"), content.PlatformTwitter)
	require.NoError(t, err)
	require.Len(t, overlays, 2)

	callout := overlays[0]
	assert.Equal(t, "Impact", callout.Style.FontFamily)
	require.NotNil(t, callout.Style.Stroke)
	assert.Equal(t, 4.0, callout.Style.Stroke.Width)
	assert.Equal(t, overlay.Center, callout.Placement.Position)

	assert.Equal(t, "🔥 VIRAL", overlays[1].Text)
	assert.Equal(t, overlay.TopRight, overlays[1].Placement.Position)
}

func TestUnknownCategoryFallsBackToGeneric(t *testing.T) {
	s := newTestSynthesizer(1)
	overlays, err := s.Overlays(testItem(content.KindGraphic, "pottery"), content.PlatformFacebook)
	require.NoError(t, err)
	assert.Equal(t, "Quality You Can Trust", overlays[0].Text)

	caption := s.Caption(testItem(content.KindGraphic, "pottery"), content.PlatformFacebook, nil)
	assert.True(t, strings.HasPrefix(caption, "Check this out! 🔥"))
}

func TestCaptionLayout(t *testing.T) {
	s := newTestSynthesizer(3)
	caption := s.Caption(testItem(content.KindVideo, "minecraft"), content.PlatformYouTube, []string{"minecraft", "gaming"})

	parts := strings.Split(caption, "\n\n")
	require.Len(t, parts, 3)
	assert.Contains(t, NewTemplates().Captions("minecraft"), parts[0])
	assert.Contains(t, NewTemplates().CallsToAction(content.PlatformYouTube), parts[1])
	assert.Equal(t, "#minecraft #gaming", parts[2])
}

func TestPostIdentityAndSchedule(t *testing.T) {
	s := newTestSynthesizer(99)
	p, err := s.Post(testItem(content.KindVideo, "minecraft"), content.PlatformYouTube)
	require.NoError(t, err)

	prefix := "post_1704110400000_"
	require.True(t, strings.HasPrefix(p.ID, prefix), p.ID)
	assert.Len(t, strings.TrimPrefix(p.ID, prefix), 9)

	require.NotNil(t, p.ScheduledTime)
	assert.False(t, p.ScheduledTime.Before(fixedNow))
	assert.True(t, p.ScheduledTime.Before(fixedNow.Add(24*time.Hour)))
	assert.Equal(t, fixedNow, p.CreatedAt)
	assert.Contains(t, p.Hashtags, "minecraft")
	assert.Contains(t, p.Hashtags, "viral")
}

func TestSeededSynthesisIsDeterministic(t *testing.T) {
	item := testItem(content.KindMeme, "dank")
	a, err := newTestSynthesizer(2024).Post(item, content.PlatformInstagram)
	require.NoError(t, err)
	b, err := newTestSynthesizer(2024).Post(item, content.PlatformInstagram)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMultiPlatformAndBatchOrdering(t *testing.T) {
	s := newTestSynthesizer(5)
	platforms := []content.Platform{content.PlatformTikTok, content.PlatformTwitter}

	posts, err := s.MultiPlatform(testItem(content.KindVideo, "gaming"), platforms)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, content.PlatformTikTok, posts[0].Platform)
	assert.Equal(t, content.PlatformTwitter, posts[1].Platform)

	first := testItem(content.KindVideo, "gaming")
	second := testItem(content.KindMeme, "dank")
	second.ID = "content-2"

	batch, err := s.Batch([]content.Item{first, second}, platforms)
	require.NoError(t, err)
	require.Len(t, batch, 4)
	var order []string
	for _, p := range batch {
		order = append(order, p.ContentID+"/"+string(p.Platform))
	}
	assert.Equal(t, []string{
		"content-1/tiktok", "content-1/twitter",
		"content-2/tiktok", "content-2/twitter",
	}, order)
}

func TestSynthesizerErrors(t *testing.T) {
	s := newTestSynthesizer(5)

	_, err := s.Post(testItem(content.KindVideo, "gaming"), "myspace")
	assert.True(t, errors.Is(err, post.ErrUnknownPlatform))

	bad := testItem(content.KindVideo, "gaming")
	bad.Title = ""
	_, err = s.Post(bad, content.PlatformTikTok)
	assert.True(t, errors.Is(err, content.ErrInvalidContent))

	_, err = s.Batch([]content.Item{testItem(content.KindMeme, "dank"), bad}, []content.Platform{content.PlatformTikTok})
	assert.True(t, errors.Is(err, content.ErrInvalidContent))
}
