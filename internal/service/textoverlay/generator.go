// internal/service/textoverlay/generator.go

package textoverlay

import (
	"github.com/sirupsen/logrus"

	"postforge/internal/domain/overlay"
	"postforge/internal/metrics"
	"postforge/internal/service/classifier"
)

// Result is a synthesized overlay together with the analysis that produced it
type Result struct {
	Text      string               `json:"text"`
	Placement overlay.Placement    `json:"placement"`
	Style     overlay.Style        `json:"style"`
	Analysis  overlay.TextAnalysis `json:"analysis"`
	Warnings  []string             `json:"warnings,omitempty"`
}

// Generator synthesizes overlay placement and style for text
type Generator struct {
	logger logrus.FieldLogger
}

// NewGenerator creates a new overlay generator
func NewGenerator(logger logrus.FieldLogger) *Generator {
	return &Generator{
		logger: logger,
	}
}

// Generate classifies text and derives placement and style for it.
// Validation findings are logged and returned but never block the result.
func (g *Generator) Generate(text string, media overlay.MediaContext, opts *overlay.Options) Result {
	analysis := classifier.Classify(text)
	if opts != nil {
		analysis = classifier.ApplyOptions(analysis, *opts)
	}

	placement := OptimalPlacement(analysis, media)
	style := applyBrand(OptimalStyle(analysis, media), analysis.Brand)
	if opts != nil && opts.Style != nil {
		style = overlay.MergeStyle(style, *opts.Style)
	}

	var warnings []string
	if res := overlay.ValidatePlacement(placement); !res.Valid {
		warnings = append(warnings, res.Errors...)
	}
	if res := overlay.ValidateStyle(style); !res.Valid {
		warnings = append(warnings, res.Errors...)
	}
	if len(warnings) > 0 {
		g.logger.WithFields(logrus.Fields{
			"text":     text,
			"findings": warnings,
		}).Warn("Generated overlay failed validation")
		metrics.OverlayWarnings(len(warnings))
	}

	return Result{
		Text:      text,
		Placement: placement,
		Style:     style,
		Analysis:  analysis,
		Warnings:  warnings,
	}
}

// GenerateMultiple generates one overlay per segment and staggers every
// segment after the first so they do not stack exactly on top of each other
func (g *Generator) GenerateMultiple(segments []string, media overlay.MediaContext) []Result {
	results := make([]Result, 0, len(segments))
	for i, text := range segments {
		r := g.Generate(text, media, nil)
		if i > 0 {
			r.Placement.Offset = staggerOffset(i)
		}
		results = append(results, r)
	}
	return results
}

func staggerOffset(i int) *overlay.Offset {
	return &overlay.Offset{
		X: float64((i%3)-1) * 20,
		Y: float64(i/3) * 30,
	}
}
