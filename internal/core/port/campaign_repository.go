package port

import (
	"context"
	"errors"

	"crowdfund/internal/core/domain"
)

// Host-layer failures. Record uniqueness and account existence are the
// storage host's responsibility, not the core's.
var (
	ErrCampaignExists   = errors.New("campaign record already exists")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrAccountNotFound  = errors.New("account not found")
)

// CampaignRepository is the outbound port onto the hosting ledger
// environment: record storage, the atomic funds-transfer primitive and the
// minimum-reserve rule. Implementations must apply each method as one
// atomic, serialized unit against the campaign record it touches — either
// every state change commits or none does.
type CampaignRepository interface {
	// CreateCampaign persists a freshly validated record at c.Address and
	// funds its minimum reserve from the admin's account. Fails with
	// ErrCampaignExists when the address is already occupied and with
	// domain.ErrInsufficientFunds when the admin cannot cover the reserve.
	CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)

	// GetCampaign loads the record at addr, or ErrCampaignNotFound.
	GetCampaign(ctx context.Context, addr domain.Address) (*domain.Campaign, error)

	// DonateAndAccumulate moves d.Amount from the donor's account into the
	// campaign's held balance, increments the donation accumulator and
	// stores the receipt, all in one transaction. On success d.ID and
	// d.CreatedAt are filled in.
	DonateAndAccumulate(ctx context.Context, d *domain.Donation) error

	// WithdrawAndDeduct runs the ordered withdrawal checks against the live
	// held balance and minimum reserve, then moves amount from the
	// campaign's held balance to the caller's account and decrements the
	// accumulator. Returns the updated record.
	WithdrawAndDeduct(ctx context.Context, addr domain.Address, caller domain.Identity, amount uint64) (*domain.Campaign, error)
}
