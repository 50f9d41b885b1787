package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the reference data routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reference", func(r chi.Router) {
		r.Get("/instruments", h.HandleGetInstruments) // Instrument universe
		r.Get("/{dimension}", h.HandleGetDimension)   // One dimension table
	})
}
