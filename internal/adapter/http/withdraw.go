package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

// handleWithdraw moves funds from the campaign at {address} to the caller.
// Admin-only: a non-admin caller gets 403. The donated-funds and reserve
// floors surface as 422. Responds 200 with the updated record.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	addr := chi.URLParam(r, "address")
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Caller == "" {
		http.Error(w, "missing caller", http.StatusBadRequest)
		return
	}
	c, err := h.ledger.Withdraw(r.Context(), domain.Identity(req.Caller), domain.Address(addr), req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}
