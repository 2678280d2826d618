package overlay

// ContentType is the role a piece of text plays on screen
type ContentType string

const (
	ContentTitle       ContentType = "title"
	ContentSubtitle    ContentType = "subtitle"
	ContentCaption     ContentType = "caption"
	ContentWatermark   ContentType = "watermark"
	ContentCallout     ContentType = "callout"
	ContentQuote       ContentType = "quote"
	ContentStatistic   ContentType = "statistic"
	ContentInstruction ContentType = "instruction"
	ContentDisclaimer  ContentType = "disclaimer"
	ContentCredit      ContentType = "credit"
)

// TextLength buckets text by character count
type TextLength string

const (
	LengthShort  TextLength = "short"
	LengthMedium TextLength = "medium"
	LengthLong   TextLength = "long"
)

// Tone of the text
type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneUrgent       Tone = "urgent"
	TonePlayful      Tone = "playful"
	ToneProfessional Tone = "professional"
)

// Importance of the text relative to the rest of the frame
type Importance string

const (
	ImportanceLow      Importance = "low"
	ImportanceMedium   Importance = "medium"
	ImportanceHigh     Importance = "high"
	ImportanceCritical Importance = "critical"
)

// Audience bucket
type Audience string

const (
	AudienceGeneral      Audience = "general"
	AudienceYouth        Audience = "youth"
	AudienceAdult        Audience = "adult"
	AudienceElderly      Audience = "elderly"
	AudienceProfessional Audience = "professional"
)

// Context the text is displayed in
type Context string

const (
	ContextImage        Context = "image"
	ContextVideo        Context = "video"
	ContextSocial       Context = "social"
	ContextPresentation Context = "presentation"
)

// ColorScheme of the surrounding design
type ColorScheme string

const (
	SchemeLight      ColorScheme = "light"
	SchemeDark       ColorScheme = "dark"
	SchemeColorful   ColorScheme = "colorful"
	SchemeMonochrome ColorScheme = "monochrome"
)

// BrandGuidelines override colors and fonts with the brand's own
type BrandGuidelines struct {
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	FontFamily     string `json:"fontFamily,omitempty"`
	LogoURL        string `json:"logoUrl,omitempty"`
}

// TextAnalysis is the classifier's view of a piece of overlay text
type TextAnalysis struct {
	ContentType ContentType      `json:"contentType"`
	TextLength  TextLength       `json:"textLength"`
	Tone        Tone             `json:"tone"`
	Importance  Importance       `json:"importance"`
	Audience    Audience         `json:"audience"`
	Context     Context          `json:"context"`
	ColorScheme ColorScheme      `json:"colorScheme"`
	Brand       *BrandGuidelines `json:"brandGuidelines,omitempty"`
}

// AspectRatio bucket of the media frame
type AspectRatio string

const (
	AspectUltrawide AspectRatio = "ultrawide"
	AspectLandscape AspectRatio = "landscape"
	AspectPortrait  AspectRatio = "portrait"
	AspectSquare    AspectRatio = "square"
)

// MediaKind of the frame an overlay is drawn on
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Brightness of the frame behind the text
type Brightness string

const (
	BrightnessDark   Brightness = "dark"
	BrightnessMedium Brightness = "medium"
	BrightnessBright Brightness = "bright"
)

// MediaContext is the geometry and timing of the frame an overlay is drawn on
type MediaContext struct {
	Type       MediaKind  `json:"type"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Duration   *float64   `json:"duration,omitempty"`
	Brightness Brightness `json:"backgroundBrightness,omitempty"`
	Platform   string     `json:"platform,omitempty"`
}

// Options are caller overrides applied over the rule-based analysis.
// Style is merged into the synthesized style after brand guidelines.
type Options struct {
	ContentType ContentType      `json:"contentType,omitempty"`
	Importance  Importance       `json:"importance,omitempty"`
	Tone        Tone             `json:"tone,omitempty"`
	Audience    Audience         `json:"audience,omitempty"`
	Context     Context          `json:"context,omitempty"`
	ColorScheme ColorScheme      `json:"colorScheme,omitempty"`
	Brand       *BrandGuidelines `json:"brandGuidelines,omitempty"`
	Style       *StyleOverride   `json:"style,omitempty"`
}
