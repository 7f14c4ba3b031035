package usecase

import (
	"context"

	"github.com/google/uuid"

	"crowdfund/internal/address"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// campaignTag is the domain-separation tag for campaign record addresses.
// One campaign per admin under this tag.
const campaignTag = "CAMPAIGN"

// CampaignLedger implements the accounting core behind port.CampaignLedger.
// It is a pure orchestrator: validation and state transitions live in the
// domain types, atomicity and funds movement in the repository. It holds no
// mutable state of its own; construct one per deployment.
type CampaignLedger struct {
	repo port.CampaignRepository
}

// NewCampaignLedger creates the ledger service over the given repository.
func NewCampaignLedger(repo port.CampaignRepository) *CampaignLedger {
	return &CampaignLedger{repo: repo}
}

// Create validates metadata, derives the campaign's address from the admin
// identity and persists the record with a zeroed accumulator.
func (l *CampaignLedger) Create(ctx context.Context, admin domain.Identity, name, description string) (*domain.Campaign, error) {
	c, err := domain.NewCampaign(admin, name, description)
	if err != nil {
		return nil, err
	}
	c.Address = address.Derive(campaignTag, admin)
	return l.repo.CreateCampaign(ctx, c)
}

// GetCampaign returns the record at addr.
func (l *CampaignLedger) GetCampaign(ctx context.Context, addr domain.Address) (*domain.Campaign, error) {
	return l.repo.GetCampaign(ctx, addr)
}

// Donate moves amount from donor into the campaign at addr. The transfer
// and the accumulator increment are one atomic step in the repository; the
// returned receipt carries a unique token.
func (l *CampaignLedger) Donate(ctx context.Context, donor domain.Identity, addr domain.Address, amount uint64) (*domain.Donation, error) {
	d := &domain.Donation{
		Token:    uuid.NewString(),
		Campaign: addr,
		Donor:    donor,
		Amount:   amount,
	}
	if err := l.repo.DonateAndAccumulate(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Withdraw moves amount from the campaign at addr to the caller. The
// repository applies the ordered checks (authorization, donated-funds
// floor, reserve floor) against the live balances before committing.
func (l *CampaignLedger) Withdraw(ctx context.Context, caller domain.Identity, addr domain.Address, amount uint64) (*domain.Campaign, error) {
	return l.repo.WithdrawAndDeduct(ctx, addr, caller, amount)
}
