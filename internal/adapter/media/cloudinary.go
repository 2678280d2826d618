// internal/adapter/media/cloudinary.go

package media

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"

	"postforge/internal/domain/content"
	"postforge/internal/domain/overlay"
	"postforge/internal/domain/post"
	"postforge/internal/metrics"
)

// Common errors
var (
	ErrMissingPublicID = errors.New("media public id missing")
	ErrNotConfigured   = errors.New("media cloud name not configured")
)

var versionSegment = regexp.MustCompile(`^v\d+$`)

// Config for the Cloudinary renderer
type Config struct {
	BaseURL   string
	CloudName string
}

// Renderer composes Cloudinary delivery URLs with text layers
type Renderer struct {
	config Config
}

var _ post.Renderer = (*Renderer)(nil)

// NewRenderer creates a new renderer
func NewRenderer(config Config) *Renderer {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &Renderer{config: config}
}

// Render returns the delivery URL of the item with every overlay burned in
func (r *Renderer) Render(ctx context.Context, item content.Item, overlays []post.TextOverlay) (string, error) {
	u, err := r.render(ctx, item, overlays)
	metrics.MediaRendered(err)
	return u, err
}

func (r *Renderer) render(ctx context.Context, item content.Item, overlays []post.TextOverlay) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if r.config.CloudName == "" {
		return "", ErrNotConfigured
	}

	publicID := item.PublicID
	if publicID == "" {
		publicID = PublicIDFromURL(item.ContentURL)
	}
	if publicID == "" {
		return "", fmt.Errorf("item %q: %w", item.ID, ErrMissingPublicID)
	}

	resource := "image"
	if item.Type == content.KindVideo {
		resource = "video"
	}

	parts := []string{r.config.BaseURL, r.config.CloudName, resource, "upload"}
	for _, o := range overlays {
		parts = append(parts, textLayer(o.Text, o.Style), applyLayer(o.Placement))
	}
	parts = append(parts, publicID)

	return strings.Join(parts, "/"), nil
}

// PublicIDFromURL extracts the asset id from a Cloudinary delivery URL. The
// path after "/upload/" minus any transformation or version segments and
// the file extension. Returns "" for other URLs.
func PublicIDFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	_, rest, found := strings.Cut(u.Path, "/upload/")
	if !found {
		return ""
	}

	segments := strings.Split(rest, "/")
	start := 0
	for i, s := range segments {
		if versionSegment.MatchString(s) {
			start = i + 1
			break
		}
	}
	if start == 0 {
		// Without a version marker, skip leading transformation segments
		for start < len(segments)-1 && strings.Contains(segments[start], "_") && strings.Contains(segments[start], ",") {
			start++
		}
	}

	id := strings.Join(segments[start:], "/")
	return strings.TrimSuffix(id, path.Ext(id))
}

func textLayer(text string, style overlay.Style) string {
	font := url.PathEscape(style.FontFamily)
	if font == "" {
		font = "Arial"
	}

	fontSpec := fmt.Sprintf("%s_%d", font, style.FontSize)
	if isBold(style.FontWeight) {
		fontSpec += "_bold"
	}
	if style.FontStyle == "italic" {
		fontSpec += "_italic"
	}

	params := []string{
		fmt.Sprintf("l_text:%s:%s", fontSpec, escapeText(text)),
		colorParam("co", style.Color),
	}

	if style.Opacity > 0 && style.Opacity < 1 {
		params = append(params, fmt.Sprintf("o_%d", int(math.Round(style.Opacity*100))))
	}

	if style.Stroke != nil && style.Stroke.Width > 0 {
		params = append(params, fmt.Sprintf("bo_%spx_solid_%s", formatNumber(style.Stroke.Width), colorValue(style.Stroke.Color)))
	}

	return strings.Join(params, ",")
}

func applyLayer(p overlay.Placement) string {
	params := []string{"fl_layer_apply"}

	switch {
	case p.HasCoordinates():
		params = append(params, "g_"+string(overlay.GravityNorthWest))
		params = append(params,
			"x_"+formatNumber(valueOr(p.X)/100),
			"y_"+formatNumber(valueOr(p.Y)/100),
			"fl_relative",
		)
	default:
		gravity := p.Gravity
		if gravity == "" {
			gravity = overlay.GravityFor(p.Position)
		}
		params = append(params, "g_"+string(gravity))
		if p.Offset != nil {
			params = append(params,
				"x_"+formatNumber(p.Offset.X),
				"y_"+formatNumber(p.Offset.Y),
			)
		}
	}

	if p.StartTime != nil {
		params = append(params, "so_"+formatNumber(*p.StartTime))
	}
	if p.EndTime != nil {
		params = append(params, "eo_"+formatNumber(*p.EndTime))
	}

	return strings.Join(params, ",")
}

// escapeText percent-encodes overlay text, including the separators the
// provider treats as syntax
func escapeText(text string) string {
	escaped := url.PathEscape(text)
	return strings.NewReplacer(",", "%2C", ":", "%3A").Replace(escaped)
}

func isBold(weight string) bool {
	if weight == "bold" || weight == "bolder" {
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

func colorParam(key, color string) string {
	return key + "_" + colorValue(color)
}

func colorValue(color string) string {
	if color == "" {
		return "rgb:FFFFFF"
	}
	if strings.HasPrefix(color, "#") {
		return "rgb:" + strings.ToUpper(strings.TrimPrefix(color, "#"))
	}
	return color
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func valueOr(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
