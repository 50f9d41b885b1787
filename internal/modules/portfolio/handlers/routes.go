package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all portfolio routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/portfolio", func(r chi.Router) {
		r.Get("/snapshot", h.HandleGetSnapshot)                  // Full snapshot (JSON or msgpack)
		r.Get("/holdings", h.HandleGetHoldings)                  // Enriched holdings
		r.Get("/allocations", h.HandleGetAllocations)            // Buckets of every dimension
		r.Get("/allocations/{dimension}", h.HandleGetAllocation) // Buckets of one dimension
		r.Get("/statistics", h.HandleGetStatistics)              // Counts and concentration
	})
}
