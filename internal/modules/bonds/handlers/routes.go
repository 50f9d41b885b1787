package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the bond calculator routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/bonds", func(r chi.Router) {
		r.Post("/ytm", h.HandleYTM) // Yield to maturity from a quoted price
	})
}
