// internal/service/analysis/analyzer.go

package analysis

import (
	"math"

	"postforge/internal/domain/content"
)

// Options tune the analyzer
type Options struct {
	// DeduplicateHashtags drops repeated tags from the base and category lists
	DeduplicateHashtags bool
}

// Analyzer implements content.Analyzer with fixed lookup tables
type Analyzer struct {
	options Options
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(options Options) *Analyzer {
	return &Analyzer{
		options: options,
	}
}

// Analyze maps an item to its audience, best platforms, trending score and hashtags
func (a *Analyzer) Analyze(item content.Item) (content.Analysis, error) {
	if err := item.Validate(); err != nil {
		return content.Analysis{}, err
	}

	var result content.Analysis
	switch item.Type {
	case content.KindVideo:
		result = analyzeVideo(item)
	case content.KindMeme:
		result = analyzeMeme(item)
	case content.KindGraphic:
		result = analyzeGraphic(item)
	}

	result.SuggestedHashtags = a.Hashtags(item)
	return result, nil
}

// Hashtags concatenates the kind's base tags with the category's tags
func (a *Analyzer) Hashtags(item content.Item) []string {
	base := baseHashtags[item.Type]
	category := lookup(categoryHashtags, item.Category)

	tags := make([]string, 0, len(base)+len(category))
	tags = append(tags, base...)
	tags = append(tags, category...)

	if a.options.DeduplicateHashtags {
		return dedupe(tags)
	}
	return tags
}

func analyzeVideo(item content.Item) content.Analysis {
	e := item.EngagementOrZero()
	score := 50 + videoCategoryBonus[item.Category] +
		math.Min(float64(e.Views)/1000, 20) +
		math.Min(float64(e.Likes)/100, 15)

	return content.Analysis{
		Category:       lookup(videoCategories, item.Category),
		TargetAudience: clone(lookup(videoAudiences, item.Category)),
		BestPlatforms:  clone(lookup(videoPlatforms, item.Category)),
		TrendingScore:  clampScore(score),
	}
}

func analyzeMeme(item content.Item) content.Analysis {
	e := item.EngagementOrZero()
	score := 60 +
		math.Min(float64(e.Shares)/50, 25) +
		math.Min(float64(e.Comments)/20, 15)

	return content.Analysis{
		Category:       memeCategory,
		TargetAudience: clone(memeAudience),
		BestPlatforms:  clone(memePlatforms),
		TrendingScore:  clampScore(score),
	}
}

func analyzeGraphic(item content.Item) content.Analysis {
	e := item.EngagementOrZero()
	score := 40 +
		math.Min(float64(e.Likes)/100, 20) +
		math.Min(float64(e.Shares)/30, 20)

	return content.Analysis{
		Category:       graphicCategory,
		TargetAudience: clone(graphicAudience),
		BestPlatforms:  clone(graphicPlatforms),
		TrendingScore:  clampScore(score),
	}
}

func clampScore(score float64) int {
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
