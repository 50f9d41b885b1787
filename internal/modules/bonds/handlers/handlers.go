// Package handlers provides the HTTP surface of the bond calculator.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/folio/internal/modules/bonds"
	"github.com/aristath/folio/pkg/formulas"
	"github.com/rs/zerolog"
)

// Handler handles bond calculator requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new bond handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "bonds").Logger(),
	}
}

// YTMRequest is the calculator form. CouponRate is a percentage (5 means 5%).
type YTMRequest struct {
	FaceValue       float64 `json:"face_value"`
	Price           float64 `json:"price"`
	CouponRate      float64 `json:"coupon_rate"`
	Years           float64 `json:"years"`
	PaymentsPerYear int     `json:"payments_per_year"`
}

// YTMResponse carries the solved yield and derived figures
type YTMResponse struct {
	YTM          float64 `json:"ytm"`
	TotalCoupons float64 `json:"total_coupons"`
	CapitalGain  float64 `json:"capital_gain"`
	TotalReturn  float64 `json:"total_return"`
	CurrentYield float64 `json:"current_yield"`
	Iterations   int     `json:"iterations"`
	Converged    bool    `json:"converged"`
	Termination  string  `json:"termination"`
}

// HandleYTM solves yield to maturity
func (h *Handler) HandleYTM(w http.ResponseWriter, r *http.Request) {
	var req YTMRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := bonds.SolveYTM(bonds.Input{
		FaceValue:       req.FaceValue,
		Price:           req.Price,
		CouponRate:      req.CouponRate / 100,
		Years:           req.Years,
		PaymentsPerYear: req.PaymentsPerYear,
	})
	if err != nil {
		if errors.Is(err, bonds.ErrInvalidInput) {
			h.writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !result.Converged {
		h.log.Warn().
			Str("termination", string(result.Termination)).
			Int("iterations", result.Iterations).
			Float64("price", req.Price).
			Msg("YTM solver did not converge")
	}

	h.writeJSON(w, http.StatusOK, YTMResponse{
		YTM:          formulas.Round(result.YTMPercent, 4),
		TotalCoupons: formulas.Round(result.TotalCoupons, formulas.MoneyPlaces),
		CapitalGain:  formulas.Round(result.CapitalGain, formulas.MoneyPlaces),
		TotalReturn:  formulas.Round(result.TotalReturn, formulas.MoneyPlaces),
		CurrentYield: formulas.Round(result.CurrentYieldPercent, 4),
		Iterations:   result.Iterations,
		Converged:    result.Converged,
		Termination:  string(result.Termination),
	})
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
