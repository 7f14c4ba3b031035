package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Handler is the inbound HTTP adapter. It decodes requests into ledger
// operations, maps domain errors onto status codes and logs internal
// failures. Routes are registered on a chi.Router.
type Handler struct {
	ledger port.CampaignLedger
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(ledger port.CampaignLedger, logger *slog.Logger) *Handler {
	h := &Handler{ledger: ledger, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/{address}", h.handleGetCampaign)
		r.Post("/campaigns/{address}/donations", h.handleDonate)
		r.Post("/campaigns/{address}/withdrawals", h.handleWithdraw)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps ledger errors onto HTTP status codes. Validation and
// balance-floor failures are 422, authorization 403, missing records 404,
// duplicate creation 409. Anything unrecognized is logged and hidden
// behind a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNameTooLong),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, domain.ErrInsufficientDonatedFunds),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrArithmeticOverflow):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, port.ErrCampaignExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrAccountNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error("ledger error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
