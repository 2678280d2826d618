package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"postforge/internal/domain/overlay"
)

func TestContentTypeRules(t *testing.T) {
	tests := []struct {
		text string
		want overlay.ContentType
	}{
		{"© 2024 Studio", overlay.ContentWatermark},
		{"Copyright holders reserve all rights!", overlay.ContentWatermark},
		{"Don't miss this!", overlay.ContentCallout},
		{"this is important to read", overlay.ContentCallout},
		{`"Stay hungry, stay foolish"`, overlay.ContentQuote},
		{"and then he said it was fine", overlay.ContentQuote},
		{"75% of gamers agree", overlay.ContentStatistic},
		{"only $5 per month", overlay.ContentStatistic},
		{"tap the link below to join", overlay.ContentInstruction},
		{"see terms for details", overlay.ContentDisclaimer},
		{"photo by jane doe", overlay.ContentCredit},
		{"Epic Minecraft Build", overlay.ContentTitle},
		{"The most satisfying parkour run you will see on the internet today", overlay.ContentSubtitle},
		{"lowercase text describing a clip in a relaxed way", overlay.ContentCaption},
		{"Two sentences here. And another one here.", overlay.ContentCaption},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text).ContentType)
		})
	}
}

func TestRuleOrderWatermarkBeatsCallout(t *testing.T) {
	// matches both watermark and callout; watermark is checked first
	assert.Equal(t, overlay.ContentWatermark, Classify("watermark!").ContentType)
}

func TestEntertainmentIsNotInstruction(t *testing.T) {
	assert.NotEqual(t, overlay.ContentInstruction, Classify("pure entertainment for everyone tonight").ContentType)
}

func TestTextLength(t *testing.T) {
	assert.Equal(t, overlay.LengthShort, Classify("Hi").TextLength)
	assert.Equal(t, overlay.LengthMedium, Classify("This is a medium length sentence").TextLength)
	long := "This sentence keeps going and going well past the one hundred character threshold used for long text buckets"
	assert.Equal(t, overlay.LengthLong, Classify(long).TextLength)
}

func TestTone(t *testing.T) {
	assert.Equal(t, overlay.ToneUrgent, Classify("hurry, sale ends tonight").Tone)
	assert.Equal(t, overlay.TonePlayful, Classify("this is so much fun").Tone)
	assert.Equal(t, overlay.ToneProfessional, Classify("enterprise grade solution").Tone)
	assert.Equal(t, overlay.ToneCasual, Classify("hey there").Tone)
	assert.Equal(t, overlay.ToneFormal, Classify("quarterly report").Tone)
}

func TestImportance(t *testing.T) {
	assert.Equal(t, overlay.ImportanceCritical, Classify("emergency update").Importance)
	assert.Equal(t, overlay.ImportanceHigh, Classify("weather alert for today").Importance)
	assert.Equal(t, overlay.ImportanceHigh, Classify("Big News").Importance)                     // title
	assert.Equal(t, overlay.ImportanceLow, Classify("© studio").Importance)                      // watermark
	assert.Equal(t, overlay.ImportanceMedium, Classify("a calm caption about nothing").Importance) // caption
}

func TestDefaults(t *testing.T) {
	a := Classify("anything")
	assert.Equal(t, overlay.AudienceGeneral, a.Audience)
	assert.Equal(t, overlay.ContextImage, a.Context)
	assert.Equal(t, overlay.SchemeLight, a.ColorScheme)
	assert.Nil(t, a.Brand)
}

func TestClassifyIsIdempotent(t *testing.T) {
	s := "Limited time: 50% off, tap to shop"
	assert.Equal(t, Classify(s), Classify(s))
}

func TestApplyOptions(t *testing.T) {
	a := ClassifyWithOptions("a calm caption", overlay.Options{
		ContentType: overlay.ContentTitle,
		Importance:  overlay.ImportanceCritical,
		Audience:    overlay.AudienceElderly,
		Brand:       &overlay.BrandGuidelines{PrimaryColor: "#123456"},
	})
	assert.Equal(t, overlay.ContentTitle, a.ContentType)
	assert.Equal(t, overlay.ImportanceCritical, a.Importance)
	assert.Equal(t, overlay.AudienceElderly, a.Audience)
	assert.Equal(t, overlay.ToneFormal, a.Tone)
	assert.Equal(t, "#123456", a.Brand.PrimaryColor)
}

func TestAspectRatioOf(t *testing.T) {
	assert.Equal(t, overlay.AspectUltrawide, AspectRatioOf(2560, 1080))
	assert.Equal(t, overlay.AspectLandscape, AspectRatioOf(1920, 1080))
	assert.Equal(t, overlay.AspectPortrait, AspectRatioOf(1080, 1920))
	assert.Equal(t, overlay.AspectSquare, AspectRatioOf(1080, 1080))
	assert.Equal(t, overlay.AspectSquare, AspectRatioOf(1080, 0))
}
