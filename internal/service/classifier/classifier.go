// Package classifier infers the role, tone and importance of overlay text
// from ordered keyword rules. It is pure and safe for concurrent use.
package classifier

import (
	"strings"
	"unicode/utf8"

	"postforge/internal/domain/overlay"
)

// Classify runs the rule chains over s
func Classify(s string) overlay.TextAnalysis {
	t := text{raw: s, lower: strings.ToLower(s)}

	contentType := detectContentType(t)

	return overlay.TextAnalysis{
		ContentType: contentType,
		TextLength:  lengthOf(s),
		Tone:        detectTone(t),
		Importance:  detectImportance(t, contentType),
		Audience:    overlay.AudienceGeneral,
		Context:     overlay.ContextImage,
		ColorScheme: overlay.SchemeLight,
	}
}

// ClassifyWithOptions classifies s then overwrites any field set in opts
func ClassifyWithOptions(s string, opts overlay.Options) overlay.TextAnalysis {
	return ApplyOptions(Classify(s), opts)
}

// ApplyOptions overwrites analysis fields with the non-empty option values
func ApplyOptions(a overlay.TextAnalysis, opts overlay.Options) overlay.TextAnalysis {
	if opts.ContentType != "" {
		a.ContentType = opts.ContentType
	}
	if opts.Importance != "" {
		a.Importance = opts.Importance
	}
	if opts.Tone != "" {
		a.Tone = opts.Tone
	}
	if opts.Audience != "" {
		a.Audience = opts.Audience
	}
	if opts.Context != "" {
		a.Context = opts.Context
	}
	if opts.ColorScheme != "" {
		a.ColorScheme = opts.ColorScheme
	}
	if opts.Brand != nil {
		b := *opts.Brand
		a.Brand = &b
	}
	return a
}

// AspectRatioOf buckets a frame by width/height
func AspectRatioOf(width, height int) overlay.AspectRatio {
	if height <= 0 {
		return overlay.AspectSquare
	}
	ratio := float64(width) / float64(height)
	switch {
	case ratio > 2:
		return overlay.AspectUltrawide
	case ratio > 1.2:
		return overlay.AspectLandscape
	case ratio < 0.8:
		return overlay.AspectPortrait
	default:
		return overlay.AspectSquare
	}
}

func detectContentType(t text) overlay.ContentType {
	for _, r := range contentTypeRules {
		if r.match(t) {
			return r.result
		}
	}
	return overlay.ContentCaption
}

func lengthOf(s string) overlay.TextLength {
	n := utf8.RuneCountInString(s)
	switch {
	case n < 20:
		return overlay.LengthShort
	case n < 100:
		return overlay.LengthMedium
	default:
		return overlay.LengthLong
	}
}

func detectTone(t text) overlay.Tone {
	for _, r := range toneRules {
		if r.match(t) {
			return r.result
		}
	}
	return overlay.ToneFormal
}

func detectImportance(t text, ct overlay.ContentType) overlay.Importance {
	for _, r := range importanceRules {
		if r.match(t) {
			return r.result
		}
	}
	if imp, ok := importanceByType[ct]; ok {
		return imp
	}
	return overlay.ImportanceMedium
}
