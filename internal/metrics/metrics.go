// Package metrics holds the Prometheus collectors for the post pipeline
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "postforge"

var (
	postsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_generated_total",
			Help:      "Total posts synthesized",
		},
		[]string{"platform", "kind"},
	)

	overlayWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overlay_validation_warnings_total",
			Help:      "Total advisory findings raised while validating generated overlays",
		},
	)

	mediaRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_renders_total",
			Help:      "Total media render requests by outcome",
		},
		[]string{"status"}, // "ok", "error"
	)

	eventPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Total post events that could not be published",
		},
	)
)

// PostGenerated counts a synthesized post
func PostGenerated(platform, kind string) {
	postsGenerated.WithLabelValues(platform, kind).Inc()
}

// OverlayWarnings counts validation findings
func OverlayWarnings(n int) {
	if n > 0 {
		overlayWarnings.Add(float64(n))
	}
}

// MediaRendered counts a render attempt
func MediaRendered(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	mediaRenders.WithLabelValues(status).Inc()
}

// EventPublishFailed counts a failed event publication
func EventPublishFailed() {
	eventPublishFailures.Inc()
}
