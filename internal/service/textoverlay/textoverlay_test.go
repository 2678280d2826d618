package textoverlay

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postforge/internal/domain/overlay"
)

var allContentTypes = []overlay.ContentType{
	overlay.ContentTitle, overlay.ContentSubtitle, overlay.ContentCaption,
	overlay.ContentWatermark, overlay.ContentCallout, overlay.ContentQuote,
	overlay.ContentStatistic, overlay.ContentInstruction, overlay.ContentDisclaimer,
	overlay.ContentCredit, "unknown",
}

var allImportance = []overlay.Importance{
	overlay.ImportanceLow, overlay.ImportanceMedium, overlay.ImportanceHigh, overlay.ImportanceCritical,
}

func portrait() overlay.MediaContext {
	return overlay.MediaContext{Type: overlay.MediaImage, Width: 1080, Height: 1920}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestPlacementAlwaysPreset(t *testing.T) {
	frames := []overlay.MediaContext{
		portrait(),
		{Type: overlay.MediaImage, Width: 3000, Height: 1000},
		{Type: overlay.MediaImage, Width: 1000, Height: 1000},
	}
	for _, ct := range allContentTypes {
		for _, imp := range allImportance {
			for _, m := range frames {
				p := OptimalPlacement(overlay.TextAnalysis{ContentType: ct, Importance: imp}, m)
				assert.True(t, overlay.IsValidPosition(p.Position), "content type %s gave %q", ct, p.Position)
				assert.Empty(t, p.Gravity)
			}
		}
	}
}

func TestPlacementBaseTable(t *testing.T) {
	landscape := overlay.MediaContext{Type: overlay.MediaImage, Width: 1920, Height: 1080}
	tests := []struct {
		ct    overlay.ContentType
		media overlay.MediaContext
		want  overlay.Position
	}{
		{overlay.ContentTitle, landscape, overlay.TopCenter},
		{overlay.ContentSubtitle, landscape, overlay.TopCenter},
		{overlay.ContentSubtitle, portrait(), overlay.Center},
		{overlay.ContentCaption, landscape, overlay.BottomCenter},
		{overlay.ContentWatermark, landscape, overlay.BottomRight},
		{overlay.ContentQuote, landscape, overlay.Center},
		{overlay.ContentDisclaimer, landscape, overlay.BottomLeft},
		{overlay.ContentCredit, landscape, overlay.BottomRight},
		{"unknown", landscape, overlay.BottomCenter},
	}
	for _, tt := range tests {
		p := OptimalPlacement(overlay.TextAnalysis{ContentType: tt.ct, Importance: overlay.ImportanceMedium}, tt.media)
		assert.Equal(t, tt.want, p.Position, string(tt.ct))
	}
}

func TestCriticalAlwaysCentered(t *testing.T) {
	ultrawide := overlay.MediaContext{Type: overlay.MediaImage, Width: 3000, Height: 1000}
	for _, ct := range allContentTypes {
		p := OptimalPlacement(overlay.TextAnalysis{ContentType: ct, Importance: overlay.ImportanceCritical}, ultrawide)
		assert.Equal(t, overlay.Center, p.Position)
	}
}

func TestUltrawideTitleMovesLeft(t *testing.T) {
	p := OptimalPlacement(overlay.TextAnalysis{ContentType: overlay.ContentTitle},
		overlay.MediaContext{Width: 2560, Height: 1000})
	assert.Equal(t, overlay.TopLeft, p.Position)
}

func TestVideoTimingWindow(t *testing.T) {
	long := 30.0
	p := OptimalPlacement(overlay.TextAnalysis{ContentType: overlay.ContentTitle},
		overlay.MediaContext{Type: overlay.MediaVideo, Width: 1080, Height: 1920, Duration: &long})
	require.NotNil(t, p.StartTime)
	require.NotNil(t, p.EndTime)
	assert.Equal(t, 0.0, *p.StartTime)
	assert.Equal(t, 5.0, *p.EndTime)

	short := 3.5
	p = OptimalPlacement(overlay.TextAnalysis{ContentType: overlay.ContentTitle},
		overlay.MediaContext{Type: overlay.MediaVideo, Width: 1080, Height: 1920, Duration: &short})
	assert.Equal(t, 3.5, *p.EndTime)

	p = OptimalPlacement(overlay.TextAnalysis{ContentType: overlay.ContentTitle}, portrait())
	assert.Nil(t, p.StartTime)
}

func TestFontSizeBounds(t *testing.T) {
	lengths := []overlay.TextLength{overlay.LengthShort, overlay.LengthMedium, overlay.LengthLong}
	audiences := []overlay.Audience{overlay.AudienceGeneral, overlay.AudienceElderly, overlay.AudienceYouth}
	for _, ct := range allContentTypes {
		for _, l := range lengths {
			for _, aud := range audiences {
				s := OptimalStyle(overlay.TextAnalysis{ContentType: ct, TextLength: l, Audience: aud}, portrait())
				assert.GreaterOrEqual(t, s.FontSize, 16)
				assert.LessOrEqual(t, s.FontSize, 72)
			}
		}
	}
}

func TestLengthScaling(t *testing.T) {
	short := OptimalStyle(overlay.TextAnalysis{ContentType: overlay.ContentTitle, TextLength: overlay.LengthShort}, portrait())
	assert.Equal(t, 58, short.FontSize) // 48 * 1.2

	long := OptimalStyle(overlay.TextAnalysis{ContentType: overlay.ContentWatermark, TextLength: overlay.LengthLong}, portrait())
	assert.Equal(t, 16, long.FontSize)
}

func TestImportanceOverridesBrightness(t *testing.T) {
	bright := portrait()
	bright.Brightness = overlay.BrightnessBright

	s := OptimalStyle(overlay.TextAnalysis{ContentType: overlay.ContentCaption}, bright)
	assert.Equal(t, "#000000", s.Color)

	s = OptimalStyle(overlay.TextAnalysis{ContentType: overlay.ContentCaption, Importance: overlay.ImportanceCritical}, bright)
	assert.Equal(t, "#FF0000", s.Color)
	assert.Equal(t, "bold", s.FontWeight)
	require.NotNil(t, s.Stroke)
	assert.Equal(t, "#FFFFFF", s.Stroke.Color)
	assert.Equal(t, 3.0, s.Stroke.Width)

	s = OptimalStyle(overlay.TextAnalysis{ContentType: overlay.ContentCaption, Importance: overlay.ImportanceHigh}, bright)
	assert.Equal(t, 2.0, s.Stroke.Width)
	assert.Equal(t, "#000000", s.Stroke.Color)
}

func TestToneAndAudienceApplyLast(t *testing.T) {
	s := OptimalStyle(overlay.TextAnalysis{
		ContentType: overlay.ContentCaption,
		Importance:  overlay.ImportanceCritical,
		Tone:        overlay.TonePlayful,
	}, portrait())
	assert.Equal(t, "#FF7F50", s.Color)
	assert.Equal(t, "Fredoka One", s.FontFamily)

	s = OptimalStyle(overlay.TextAnalysis{
		ContentType: overlay.ContentCaption,
		Tone:        overlay.ToneProfessional,
		Audience:    overlay.AudienceYouth,
	}, portrait())
	assert.Equal(t, "Poppins", s.FontFamily)
	assert.Equal(t, "#008080", s.Color)
	assert.Equal(t, "600", s.FontWeight)

	s = OptimalStyle(overlay.TextAnalysis{ContentType: overlay.ContentWatermark, Audience: overlay.AudienceElderly}, portrait())
	assert.Equal(t, 32, s.FontSize)
	assert.Equal(t, "bold", s.FontWeight)
}

func TestGenerateAppliesOptionsAndBrand(t *testing.T) {
	g := NewGenerator(quietLogger())
	r := g.Generate("a calm caption", portrait(), &overlay.Options{
		ContentType: overlay.ContentTitle,
		Importance:  overlay.ImportanceHigh,
		Brand:       &overlay.BrandGuidelines{PrimaryColor: "#112233", SecondaryColor: "#445566", FontFamily: "Brand Sans"},
	})

	assert.Equal(t, "a calm caption", r.Text)
	assert.Equal(t, overlay.ContentTitle, r.Analysis.ContentType)
	assert.Equal(t, overlay.TopCenter, r.Placement.Position)
	assert.Equal(t, "#112233", r.Style.Color)
	assert.Equal(t, "Brand Sans", r.Style.FontFamily)
	assert.Equal(t, "#445566", r.Style.Stroke.Color)
	assert.Empty(t, r.Warnings)
}

func TestGenerateLogsValidationFindings(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	g := NewGenerator(logger)

	huge := 500
	r := g.Generate("Headline", portrait(), &overlay.Options{
		Style: &overlay.StyleOverride{FontSize: &huge},
	})

	require.NotEmpty(t, r.Warnings)
	assert.Contains(t, r.Warnings[0], "font size")
	assert.Equal(t, 500, r.Style.FontSize)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestGenerateMultipleStaggers(t *testing.T) {
	g := NewGenerator(quietLogger())
	segments := []string{"One", "Two", "Three", "Four", "Five"}
	results := g.GenerateMultiple(segments, portrait())
	require.Len(t, results, 5)

	assert.Nil(t, results[0].Placement.Offset)
	want := []overlay.Offset{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: -20, Y: 30}, {X: 0, Y: 30}}
	for i, w := range want {
		require.NotNil(t, results[i+1].Placement.Offset)
		assert.Equal(t, w, *results[i+1].Placement.Offset)
	}
}
