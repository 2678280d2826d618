// internal/domain/content/analyzer.go

package content

// Analyzer defines the interface for platform-level content analysis
type Analyzer interface {
	// Analyze maps an item to audience, platforms, trending score and hashtags
	Analyze(item Item) (Analysis, error)
}
