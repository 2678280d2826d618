// internal/service/textoverlay/style.go

package textoverlay

import (
	"math"

	"postforge/internal/domain/overlay"
)

// Font size bounds after all adjustments
const (
	minStyledFontSize = 16
	maxStyledFontSize = 72
	elderlyFontSize   = 32
)

// Colors used by the style rules
const (
	colorWhite = "#FFFFFF"
	colorBlack = "#000000"
	colorRed   = "#FF0000"
	colorGold  = "#FFD700"
	colorCoral = "#FF7F50"
	colorTeal  = "#008080"
)

func titlePreset() overlay.Style {
	return overlay.Style{
		FontFamily:     "Montserrat",
		FontSize:       48,
		Color:          colorWhite,
		Opacity:        1,
		FontWeight:     "bold",
		FontStyle:      "normal",
		TextDecoration: "none",
		TextAlign:      "center",
		Stroke:         &overlay.Stroke{Color: colorBlack, Width: 2},
		Shadow:         &overlay.Shadow{Color: "rgba(0,0,0,0.5)", Blur: 4, OffsetX: 2, OffsetY: 2},
	}
}

func subtitlePreset() overlay.Style {
	return overlay.Style{
		FontFamily:     "Open Sans",
		FontSize:       32,
		Color:          colorWhite,
		Opacity:        1,
		FontWeight:     "600",
		FontStyle:      "normal",
		TextDecoration: "none",
		TextAlign:      "center",
		Shadow:         &overlay.Shadow{Color: "rgba(0,0,0,0.4)", Blur: 3, OffsetX: 1, OffsetY: 1},
	}
}

func watermarkPreset() overlay.Style {
	return overlay.Style{
		FontFamily:     "Arial",
		FontSize:       16,
		Color:          colorWhite,
		Opacity:        0.6,
		FontWeight:     "normal",
		FontStyle:      "normal",
		TextDecoration: "none",
		TextAlign:      "right",
	}
}

func calloutPreset() overlay.Style {
	return overlay.Style{
		FontFamily:     "Impact",
		FontSize:       40,
		Color:          colorGold,
		Opacity:        1,
		FontWeight:     "bold",
		FontStyle:      "normal",
		TextDecoration: "none",
		TextAlign:      "center",
		Stroke:         &overlay.Stroke{Color: colorBlack, Width: 3},
		Animation:      &overlay.Animation{Type: overlay.AnimationBounce, Duration: 0.6},
	}
}

func bodyPreset() overlay.Style {
	return overlay.Style{
		FontFamily:     "Arial",
		FontSize:       24,
		Color:          colorWhite,
		Opacity:        1,
		FontWeight:     "normal",
		FontStyle:      "normal",
		TextDecoration: "none",
		TextAlign:      "center",
	}
}

func presetFor(ct overlay.ContentType) overlay.Style {
	switch ct {
	case overlay.ContentTitle:
		return titlePreset()
	case overlay.ContentSubtitle:
		return subtitlePreset()
	case overlay.ContentWatermark:
		return watermarkPreset()
	case overlay.ContentCallout:
		return calloutPreset()
	default:
		return bodyPreset()
	}
}

// OptimalStyle derives a style for the analysed text.
// Later steps override earlier ones: length, brightness, importance, tone, audience.
func OptimalStyle(a overlay.TextAnalysis, media overlay.MediaContext) overlay.Style {
	s := presetFor(a.ContentType)

	switch a.TextLength {
	case overlay.LengthShort:
		s.FontSize = int(math.Min(math.Round(float64(s.FontSize)*1.2), maxStyledFontSize))
	case overlay.LengthLong:
		s.FontSize = int(math.Max(math.Round(float64(s.FontSize)*0.8), minStyledFontSize))
	}

	switch media.Brightness {
	case overlay.BrightnessDark:
		s.Color = colorWhite
	case overlay.BrightnessBright:
		s.Color = colorBlack
	}

	switch a.Importance {
	case overlay.ImportanceCritical:
		s.FontWeight = "bold"
		s.Color = colorRed
		s.Stroke = &overlay.Stroke{Color: colorWhite, Width: 3}
	case overlay.ImportanceHigh:
		s.FontWeight = "bold"
		s.Stroke = &overlay.Stroke{Color: colorBlack, Width: 2}
	}

	switch a.Tone {
	case overlay.TonePlayful:
		s.FontFamily = "Fredoka One"
		s.Color = colorCoral
	case overlay.ToneProfessional:
		s.FontFamily = "Helvetica Neue"
		s.FontWeight = "600"
	}

	switch a.Audience {
	case overlay.AudienceElderly:
		if s.FontSize < elderlyFontSize {
			s.FontSize = elderlyFontSize
		}
		s.FontWeight = "bold"
	case overlay.AudienceYouth:
		s.FontFamily = "Poppins"
		s.Color = colorTeal
	}

	s.FontSize = clampFontSize(s.FontSize)

	return s
}

// applyBrand gives brand guidelines the final word on color and font
func applyBrand(s overlay.Style, b *overlay.BrandGuidelines) overlay.Style {
	if b == nil {
		return s
	}
	if b.PrimaryColor != "" {
		s.Color = b.PrimaryColor
	}
	if b.FontFamily != "" {
		s.FontFamily = b.FontFamily
	}
	if b.SecondaryColor != "" && s.Stroke != nil {
		stroke := *s.Stroke
		stroke.Color = b.SecondaryColor
		s.Stroke = &stroke
	}
	return s
}

func clampFontSize(size int) int {
	if size < minStyledFontSize {
		return minStyledFontSize
	}
	if size > maxStyledFontSize {
		return maxStyledFontSize
	}
	return size
}
