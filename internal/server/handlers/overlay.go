// internal/server/handlers/overlay.go

package handlers

import (
	"net/http"
	"strings"

	"postforge/internal/domain/overlay"
	"postforge/internal/service/textoverlay"
)

// OverlayHandler handles text overlay requests
type OverlayHandler struct {
	generator *textoverlay.Generator
}

// NewOverlayHandler creates a new overlay handler
func NewOverlayHandler(generator *textoverlay.Generator) *OverlayHandler {
	return &OverlayHandler{
		generator: generator,
	}
}

type overlayRequest struct {
	Text    string               `json:"text"`
	Media   overlay.MediaContext `json:"media"`
	Options *overlay.Options     `json:"options,omitempty"`
}

type multiOverlayRequest struct {
	Segments []string             `json:"segments"`
	Media    overlay.MediaContext `json:"media"`
}

type validateRequest struct {
	Placement *overlay.Placement `json:"placement,omitempty"`
	Style     *overlay.Style     `json:"style,omitempty"`
}

type validateResponse struct {
	Valid     bool                      `json:"valid"`
	Placement *overlay.ValidationResult `json:"placement,omitempty"`
	Style     *overlay.ValidationResult `json:"style,omitempty"`
}

// Generate synthesizes placement and style for one piece of text
func (h *OverlayHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req overlayRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		respondWithError(w, http.StatusBadRequest, "text is required")
		return
	}
	if msg := validateMedia(req.Media); msg != "" {
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	respondWithJSON(w, http.StatusOK, h.generator.Generate(req.Text, req.Media, req.Options))
}

// GenerateMultiple synthesizes staggered overlays for several text segments
func (h *OverlayHandler) GenerateMultiple(w http.ResponseWriter, r *http.Request) {
	var req multiOverlayRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Segments) == 0 {
		respondWithError(w, http.StatusBadRequest, "segments are required")
		return
	}
	if msg := validateMedia(req.Media); msg != "" {
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"results": h.generator.GenerateMultiple(req.Segments, req.Media),
	})
}

// Validate reports advisory findings for a placement and/or style
func (h *OverlayHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Placement == nil && req.Style == nil {
		respondWithError(w, http.StatusBadRequest, "placement or style is required")
		return
	}

	resp := validateResponse{Valid: true}
	if req.Placement != nil {
		res := overlay.ValidatePlacement(*req.Placement)
		resp.Placement = &res
		resp.Valid = resp.Valid && res.Valid
	}
	if req.Style != nil {
		res := overlay.ValidateStyle(*req.Style)
		resp.Style = &res
		resp.Valid = resp.Valid && res.Valid
	}

	respondWithJSON(w, http.StatusOK, resp)
}

func validateMedia(m overlay.MediaContext) string {
	switch {
	case m.Type != overlay.MediaImage && m.Type != overlay.MediaVideo:
		return "media type must be image or video"
	case m.Width <= 0 || m.Height <= 0:
		return "media dimensions must be positive"
	}
	return ""
}
