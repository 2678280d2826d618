// internal/server/handlers/content.go

package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"postforge/internal/domain/content"
)

// ContentHandler handles content analysis requests
type ContentHandler struct {
	analyzer content.Analyzer
	logger   logrus.FieldLogger
}

// NewContentHandler creates a new content handler
func NewContentHandler(analyzer content.Analyzer, logger logrus.FieldLogger) *ContentHandler {
	return &ContentHandler{
		analyzer: analyzer,
		logger:   logger,
	}
}

// Analyze returns the platform-level analysis of a content item
func (h *ContentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var item content.Item
	if err := decodeJSON(r, &item); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := item.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := h.analyzer.Analyze(item)
	if errors.Is(err, content.ErrInvalidContent) {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("content_id", item.ID).Error("Failed to analyze content")
		respondWithError(w, http.StatusInternalServerError, "Failed to analyze content")
		return
	}

	respondWithJSON(w, http.StatusOK, analysis)
}
