package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

// amountRequest is the body of donate and withdraw calls. Caller is the
// host-authenticated identity; Amount is in the smallest currency unit.
type amountRequest struct {
	Caller string `json:"caller"`
	Amount uint64 `json:"amount"`
}

type donationResponse struct {
	Token     string    `json:"token"`
	Campaign  string    `json:"campaign"`
	Donor     string    `json:"donor"`
	Amount    uint64    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// handleDonate moves funds from the caller into the campaign at {address}
// and responds 201 with the receipt. Any caller with an account may
// donate; 404 covers an unknown campaign or donor account, 422 an
// overdrawn donor or accumulator overflow.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
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
	d, err := h.ledger.Donate(r.Context(), domain.Identity(req.Caller), domain.Address(addr), req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, donationResponse{
		Token:     d.Token,
		Campaign:  string(d.Campaign),
		Donor:     string(d.Donor),
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
	})
}
