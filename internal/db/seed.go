package db

import (
	"context"
	"crypto/sha256"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mr-tron/base58"

	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Seed funds two demo accounts and creates one demo campaign through the
// ledger itself, so the seeded state satisfies every invariant. Re-running
// is harmless: accounts are upserted and an existing campaign is left
// alone.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	admin := demoIdentity("demo-admin")
	donor := demoIdentity("demo-donor")

	for id, balance := range map[domain.Identity]int64{
		admin: 10_000_000,
		donor: 5_000_000,
	} {
		_, err := pool.Exec(ctx, `INSERT INTO accounts (address, balance, created_at, updated_at)
VALUES ($1, $2, now(), now()) ON CONFLICT (address) DO NOTHING`, string(id), balance)
		if err != nil {
			return err
		}
	}

	ledger := usecase.NewCampaignLedger(postgres.NewCampaignRepository(pool))
	_, err := ledger.Create(ctx, admin, "Help Build a School", "Funding for rural education")
	if errors.Is(err, port.ErrCampaignExists) {
		return nil
	}
	return err
}

// demoIdentity derives a stable base58 identity from a label.
func demoIdentity(label string) domain.Identity {
	sum := sha256.Sum256([]byte(label))
	return domain.Identity(base58.Encode(sum[:]))
}
