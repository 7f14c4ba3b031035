package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// CampaignLedger is the primary port into the accounting core. Every
// operation takes the already-authenticated caller identity as an explicit
// parameter; signature verification happens in the host, never here.
type CampaignLedger interface {
	// Create validates metadata and persists a new campaign owned by admin
	// at its derived address. Fails with domain.ErrNameTooLong or
	// domain.ErrDescriptionTooLong on oversized metadata, and with
	// ErrCampaignExists when the admin already has a campaign.
	Create(ctx context.Context, admin domain.Identity, name, description string) (*domain.Campaign, error)

	// GetCampaign returns the record at addr.
	GetCampaign(ctx context.Context, addr domain.Address) (*domain.Campaign, error)

	// Donate moves amount from the donor into the campaign at addr and
	// returns the receipt. Any caller may donate to any campaign.
	Donate(ctx context.Context, donor domain.Identity, addr domain.Address, amount uint64) (*domain.Donation, error)

	// Withdraw moves amount from the campaign at addr to the caller,
	// admin-only, subject to the donated-funds and reserve floors. Returns
	// the updated record.
	Withdraw(ctx context.Context, caller domain.Identity, addr domain.Address, amount uint64) (*domain.Campaign, error)
}
