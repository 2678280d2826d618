// internal/service/textoverlay/placement.go

package textoverlay

import (
	"math"

	"postforge/internal/domain/overlay"
	"postforge/internal/service/classifier"
)

// maxTimedWindow caps how long a video overlay stays on screen, in seconds
const maxTimedWindow = 5.0

var basePosition = map[overlay.ContentType]overlay.Position{
	overlay.ContentTitle:       overlay.TopCenter,
	overlay.ContentCaption:     overlay.BottomCenter,
	overlay.ContentWatermark:   overlay.BottomRight,
	overlay.ContentCallout:     overlay.Center,
	overlay.ContentQuote:       overlay.Center,
	overlay.ContentStatistic:   overlay.Center,
	overlay.ContentInstruction: overlay.BottomCenter,
	overlay.ContentDisclaimer:  overlay.BottomLeft,
	overlay.ContentCredit:      overlay.BottomRight,
}

// OptimalPlacement picks an anchor for the analysed text on the given frame
func OptimalPlacement(a overlay.TextAnalysis, media overlay.MediaContext) overlay.Placement {
	aspect := classifier.AspectRatioOf(media.Width, media.Height)

	position, ok := basePosition[a.ContentType]
	switch {
	case a.ContentType == overlay.ContentSubtitle:
		position = overlay.TopCenter
		if aspect == overlay.AspectPortrait {
			position = overlay.Center
		}
	case !ok:
		position = overlay.BottomCenter
	}

	if a.Importance == overlay.ImportanceCritical {
		position = overlay.Center
	}

	if position == overlay.TopCenter && aspect == overlay.AspectUltrawide {
		position = overlay.TopLeft
	}

	if media.Type == overlay.MediaVideo && media.Duration != nil && *media.Duration > 0 {
		return overlay.PlacementFromPosition(position,
			overlay.WithTiming(0, math.Min(*media.Duration, maxTimedWindow)))
	}

	return overlay.PlacementFromPosition(position)
}
