// Package handlers provides HTTP handlers for portfolio snapshots.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aristath/folio/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	contentTypeMsgpack = "application/msgpack"
	requestIDHeader    = "X-Snapshot-Request"
)

// SnapshotProvider builds a fresh snapshot on every call
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

// Handler handles portfolio HTTP requests
type Handler struct {
	provider     SnapshotProvider
	baseCurrency string
	log          zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(provider SnapshotProvider, baseCurrency string, log zerolog.Logger) *Handler {
	return &Handler{
		provider:     provider,
		baseCurrency: baseCurrency,
		log:          log.With().Str("handler", "portfolio").Logger(),
	}
}

// HandleGetSnapshot returns the full snapshot as JSON, or msgpack when the
// client asks for it
func (h *Handler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	view := newSnapshotView(snap, h.baseCurrency)
	if strings.Contains(r.Header.Get("Accept"), contentTypeMsgpack) {
		h.writeMsgpack(w, http.StatusOK, view)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// HandleGetHoldings returns enriched holdings
func (h *Handler) HandleGetHoldings(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_value": money(snap.TotalValue),
		"holdings":    newHoldingViews(snap.Holdings),
	})
}

// HandleGetAllocations returns the buckets of every dimension in display order
func (h *Handler) HandleGetAllocations(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	allocations := make([]map[string]interface{}, 0, len(domain.Dimensions))
	for _, dim := range domain.Dimensions {
		allocations = append(allocations, map[string]interface{}{
			"dimension": dim,
			"buckets":   bucketsFor(snap, dim),
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_value": money(snap.TotalValue),
		"allocations": allocations,
	})
}

// HandleGetAllocation returns the buckets of one dimension
func (h *Handler) HandleGetAllocation(w http.ResponseWriter, r *http.Request) {
	dim, ok := domain.ParseDimension(chi.URLParam(r, "dimension"))
	if !ok {
		names := make([]string, 0, len(domain.Dimensions))
		for _, d := range domain.Dimensions {
			names = append(names, string(d))
		}
		h.writeError(w, http.StatusBadRequest, "Unknown allocation dimension, expected one of: "+strings.Join(names, ", "))
		return
	}

	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"dimension":   dim,
		"total_value": money(snap.TotalValue),
		"buckets":     bucketsFor(snap, dim),
	})
}

func bucketsFor(snap *domain.Snapshot, dim domain.Dimension) interface{} {
	switch dim {
	case domain.DimensionAssetClass:
		return newBucketViews(snap.AssetClasses)
	case domain.DimensionSector:
		return newBucketViews(snap.Sectors)
	case domain.DimensionIndustry:
		return newIndustryViews(snap.Industries)
	case domain.DimensionCurrency:
		return newBucketViews(snap.Currencies)
	case domain.DimensionCountry:
		return newCountryViews(snap.Countries)
	case domain.DimensionRegion:
		return newRegionViews(snap.Regions)
	case domain.DimensionMarket:
		return newBucketViews(snap.Markets)
	}
	return nil
}

// HandleGetStatistics returns dashboard counts and concentration
func (h *Handler) HandleGetStatistics(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	view := newSnapshotView(snap, h.baseCurrency)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"statistics":    view.Statistics,
		"concentration": view.Concentration,
		"degraded":      view.Degraded,
	})
}

// snapshot builds a snapshot for the request and tags the response with a
// request id. On failure the error response is already written.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) (*domain.Snapshot, bool) {
	requestID := uuid.NewString()
	w.Header().Set(requestIDHeader, requestID)

	snap, err := h.provider.Snapshot(r.Context())
	if err != nil {
		h.log.Error().Err(err).Str("request", requestID).Msg("Failed to build snapshot")
		if errors.Is(err, domain.ErrInvalidReferenceData) {
			h.writeError(w, http.StatusUnprocessableEntity, err.Error())
			return nil, false
		}
		h.writeError(w, http.StatusInternalServerError, "Failed to build snapshot")
		return nil, false
	}

	h.log.Debug().
		Str("request", requestID).
		Int("holdings", len(snap.Holdings)).
		Bool("degraded", snap.Degraded()).
		Msg("Snapshot built")

	return snap, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeMsgpack(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeMsgpack)
	w.WriteHeader(status)
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode msgpack response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
