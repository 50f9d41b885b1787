// Package handlers exposes reference dimension tables over HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aristath/folio/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Loader loads the reference tables
type Loader interface {
	LoadReferenceData(ctx context.Context) (domain.ReferenceData, error)
}

// Handler handles reference data requests
type Handler struct {
	loader Loader
	log    zerolog.Logger
}

// NewHandler creates a new reference handler
func NewHandler(loader Loader, log zerolog.Logger) *Handler {
	return &Handler{
		loader: loader,
		log:    log.With().Str("handler", "reference").Logger(),
	}
}

// HandleGetDimension returns the rows of one reference table
func (h *Handler) HandleGetDimension(w http.ResponseWriter, r *http.Request) {
	dim, ok := domain.ParseDimension(chi.URLParam(r, "dimension"))
	if !ok {
		h.writeError(w, http.StatusBadRequest, "Unknown reference dimension")
		return
	}

	ref, ok := h.load(w, r)
	if !ok {
		return
	}

	var rows interface{}
	switch dim {
	case domain.DimensionMarket:
		rows = nonNil(ref.Markets)
	case domain.DimensionAssetClass:
		rows = nonNil(ref.AssetClasses)
	case domain.DimensionSector:
		rows = nonNil(ref.Sectors)
	case domain.DimensionIndustry:
		rows = nonNil(ref.Industries)
	case domain.DimensionCurrency:
		rows = nonNil(ref.Currencies)
	case domain.DimensionCountry:
		rows = nonNil(ref.Countries)
	case domain.DimensionRegion:
		rows = nonNil(ref.Regions)
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"dimension": dim,
		"rows":      rows,
	})
}

// HandleGetInstruments returns the instrument universe
func (h *Handler) HandleGetInstruments(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.load(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":       len(ref.Instruments),
		"instruments": nonNil(ref.Instruments),
	})
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (domain.ReferenceData, bool) {
	ref, err := h.loader.LoadReferenceData(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load reference data")
		h.writeError(w, http.StatusInternalServerError, "Failed to load reference data")
		return domain.ReferenceData{}, false
	}
	return ref, true
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
