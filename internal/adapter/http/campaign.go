package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

// createCampaignRequest is the body of POST /campaigns. Caller is the
// host-authenticated identity of the future admin.
type createCampaignRequest struct {
	Caller      string `json:"caller"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type campaignResponse struct {
	Address       string    `json:"address"`
	Admin         string    `json:"admin"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	AmountDonated uint64    `json:"amount_donated"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		Address:       string(c.Address),
		Admin:         string(c.Admin),
		Name:          c.Name,
		Description:   c.Description,
		AmountDonated: c.AmountDonated,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// handleCreateCampaign creates a campaign owned by the caller at its
// derived address. Responds 201 with the record, 422 on metadata
// validation or reserve-funding failures, 409 when the caller already has
// a campaign, 404 when the caller has no account.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Caller == "" {
		http.Error(w, "missing caller", http.StatusBadRequest)
		return
	}
	c, err := h.ledger.Create(r.Context(), domain.Identity(req.Caller), req.Name, req.Description)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleGetCampaign returns the record at the {address} path parameter.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	addr := chi.URLParam(r, "address")
	if addr == "" {
		http.Error(w, "missing address", http.StatusBadRequest)
		return
	}
	c, err := h.ledger.GetCampaign(r.Context(), domain.Address(addr))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}
