package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// stubLedger implements port.CampaignLedger with function fields so each
// test supplies exactly the behavior it needs.
type stubLedger struct {
	create   func(ctx context.Context, admin domain.Identity, name, description string) (*domain.Campaign, error)
	get      func(ctx context.Context, addr domain.Address) (*domain.Campaign, error)
	donate   func(ctx context.Context, donor domain.Identity, addr domain.Address, amount uint64) (*domain.Donation, error)
	withdraw func(ctx context.Context, caller domain.Identity, addr domain.Address, amount uint64) (*domain.Campaign, error)
}

func (s *stubLedger) Create(ctx context.Context, admin domain.Identity, name, description string) (*domain.Campaign, error) {
	return s.create(ctx, admin, name, description)
}

func (s *stubLedger) GetCampaign(ctx context.Context, addr domain.Address) (*domain.Campaign, error) {
	return s.get(ctx, addr)
}

func (s *stubLedger) Donate(ctx context.Context, donor domain.Identity, addr domain.Address, amount uint64) (*domain.Donation, error) {
	return s.donate(ctx, donor, addr, amount)
}

func (s *stubLedger) Withdraw(ctx context.Context, caller domain.Identity, addr domain.Address, amount uint64) (*domain.Campaign, error) {
	return s.withdraw(ctx, caller, addr, amount)
}

func newTestHandler(ledger port.CampaignLedger) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(ledger, logger).Router()
}

func sampleCampaign() *domain.Campaign {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Campaign{
		Address:       "addr-1",
		Admin:         "admin-1",
		Name:          "Help Build a School",
		Description:   "Funding for rural education",
		AmountDonated: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCreateCampaignEndpoint(t *testing.T) {
	ledger := &stubLedger{
		create: func(_ context.Context, admin domain.Identity, name, description string) (*domain.Campaign, error) {
			c := sampleCampaign()
			c.Admin = admin
			c.Name = name
			c.Description = description
			return c, nil
		},
	}
	router := newTestHandler(ledger)

	body := `{"caller":"admin-1","name":"Help Build a School","description":"Funding for rural education"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp campaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "addr-1", resp.Address)
	require.Equal(t, "admin-1", resp.Admin)
	require.Zero(t, resp.AmountDonated)
}

func TestCreateCampaignErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"name too long", `{"caller":"a","name":"x"}`, domain.ErrNameTooLong, http.StatusUnprocessableEntity},
		{"description too long", `{"caller":"a","name":"x"}`, domain.ErrDescriptionTooLong, http.StatusUnprocessableEntity},
		{"already exists", `{"caller":"a","name":"x"}`, port.ErrCampaignExists, http.StatusConflict},
		{"no account", `{"caller":"a","name":"x"}`, port.ErrAccountNotFound, http.StatusNotFound},
		{"reserve unfunded", `{"caller":"a","name":"x"}`, domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{"missing caller", `{"name":"x"}`, nil, http.StatusBadRequest},
		{"invalid json", `{`, nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &stubLedger{
				create: func(context.Context, domain.Identity, string, string) (*domain.Campaign, error) {
					return nil, tt.err
				},
			}
			router := newTestHandler(ledger)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetCampaignEndpoint(t *testing.T) {
	ledger := &stubLedger{
		get: func(_ context.Context, addr domain.Address) (*domain.Campaign, error) {
			if addr != "addr-1" {
				return nil, port.ErrCampaignNotFound
			}
			return sampleCampaign(), nil
		},
	}
	router := newTestHandler(ledger)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/addr-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/unknown", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDonateEndpoint(t *testing.T) {
	ledger := &stubLedger{
		donate: func(_ context.Context, donor domain.Identity, addr domain.Address, amount uint64) (*domain.Donation, error) {
			return &domain.Donation{
				ID:        1,
				Token:     "tok-1",
				Campaign:  addr,
				Donor:     donor,
				Amount:    amount,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	router := newTestHandler(ledger)

	body := `{"caller":"donor-1","amount":1000000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/addr-1/donations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp donationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "tok-1", resp.Token)
	require.Equal(t, "addr-1", resp.Campaign)
	require.Equal(t, uint64(1_000_000), resp.Amount)
}

func TestWithdrawEndpointErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden},
		{"donated floor", domain.ErrInsufficientDonatedFunds, http.StatusUnprocessableEntity},
		{"reserve floor", domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{"unknown campaign", port.ErrCampaignNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &stubLedger{
				withdraw: func(context.Context, domain.Identity, domain.Address, uint64) (*domain.Campaign, error) {
					return nil, tt.err
				},
			}
			router := newTestHandler(ledger)
			body := `{"caller":"donor-1","amount":1}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/addr-1/withdrawals", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestWithdrawEndpoint(t *testing.T) {
	ledger := &stubLedger{
		withdraw: func(_ context.Context, caller domain.Identity, addr domain.Address, amount uint64) (*domain.Campaign, error) {
			c := sampleCampaign()
			c.AmountDonated = 600_000
			return c, nil
		},
	}
	router := newTestHandler(ledger)

	body := `{"caller":"admin-1","amount":400000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/addr-1/withdrawals", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp campaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, uint64(600_000), resp.AmountDonated)
}
