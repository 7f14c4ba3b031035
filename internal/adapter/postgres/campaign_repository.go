package postgres

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Record footprint in bytes: 8 discriminator, 32 admin, length-prefixed
// name and description at 4 bytes per character, 8 accumulator. The
// minimum reserve is a flat per-byte rate over this footprint; every
// campaign record has the same footprint because the metadata fields are
// budgeted at their maximum lengths.
const (
	recordFootprint = 8 + 32 + (4 + 4*domain.MaxNameLen) + (4 + 4*domain.MaxDescriptionLen) + 8
	reservePerByte  = 10

	// maxStoredAmount caps amounts at what a BIGINT column can hold.
	maxStoredAmount = math.MaxInt64
)

// CampaignRepository implements port.CampaignRepository on PostgreSQL. It
// plays the hosting ledger environment: record storage, account balances,
// the atomic transfer primitive and the minimum-reserve rule. Each
// operation runs in a serializable transaction with row locks on every
// record it touches, so operations on the same campaign never interleave
// and commit all-or-nothing.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a repository over the given pool.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// MinimumReserve is the balance floor a campaign account must retain for
// its record to remain valid storage.
func (r *CampaignRepository) MinimumReserve() uint64 {
	return reservePerByte * recordFootprint
}

// CreateCampaign inserts the record at c.Address and funds its account with
// the minimum reserve, debited from the admin's account in the same
// transaction.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) (created *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	reserve := r.MinimumReserve()
	adminBalance, err := lockAccount(ctx, tx, c.Admin)
	if err != nil {
		return nil, err
	}
	if adminBalance < reserve {
		err = domain.ErrInsufficientFunds
		return nil, err
	}

	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	_, err = tx.Exec(ctx, `INSERT INTO campaigns (address, admin, name, description, amount_donated, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.Address, c.Admin, c.Name, c.Description, int64(c.AmountDonated), c.CreatedAt, c.UpdatedAt)
	if isUniqueViolation(err) {
		err = port.ErrCampaignExists
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if err = setBalance(ctx, tx, c.Admin, adminBalance-reserve); err != nil {
		return nil, err
	}
	// the campaign account is born holding exactly the reserve
	_, err = tx.Exec(ctx, `INSERT INTO accounts (address, balance, created_at, updated_at) VALUES ($1,$2,$3,$3)`,
		string(c.Address), int64(reserve), c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCampaign loads the record at addr.
func (r *CampaignRepository) GetCampaign(ctx context.Context, addr domain.Address) (*domain.Campaign, error) {
	return scanCampaign(r.pool.QueryRow(ctx, `SELECT address, admin, name, description, amount_donated, created_at, updated_at
FROM campaigns WHERE address = $1`, addr))
}

// DonateAndAccumulate moves d.Amount from the donor into the campaign's
// held balance, increments the accumulator and stores the receipt, all in
// one transaction. The transfer and the increment succeed or fail together.
func (r *CampaignRepository) DonateAndAccumulate(ctx context.Context, d *domain.Donation) (err error) {
	if d.Amount > maxStoredAmount {
		return domain.ErrArithmeticOverflow
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, d.Campaign)
	if err != nil {
		return err
	}
	held, err := lockAccount(ctx, tx, domain.Identity(c.Address))
	if err != nil {
		return err
	}
	donorBalance, err := lockAccount(ctx, tx, d.Donor)
	if err != nil {
		return err
	}
	if donorBalance < d.Amount {
		err = domain.ErrInsufficientFunds
		return err
	}
	if held+d.Amount > maxStoredAmount {
		err = domain.ErrArithmeticOverflow
		return err
	}
	if err = c.RecordDonation(d.Amount); err != nil {
		return err
	}

	if err = setBalance(ctx, tx, d.Donor, donorBalance-d.Amount); err != nil {
		return err
	}
	if err = setBalance(ctx, tx, domain.Identity(c.Address), held+d.Amount); err != nil {
		return err
	}
	d.CreatedAt = time.Now().UTC()
	if err = updateAccumulator(ctx, tx, c, d.CreatedAt); err != nil {
		return err
	}
	err = tx.QueryRow(ctx, `INSERT INTO donations (token, campaign_address, donor, amount, created_at)
VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		d.Token, d.Campaign, d.Donor, int64(d.Amount), d.CreatedAt).Scan(&d.ID)
	return err
}

// WithdrawAndDeduct applies the ordered withdrawal checks against the live
// held balance and reserve, then moves amount to the caller's account and
// persists the decremented accumulator.
func (r *CampaignRepository) WithdrawAndDeduct(ctx context.Context, addr domain.Address, caller domain.Identity, amount uint64) (updated *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	c, err := lockCampaign(ctx, tx, addr)
	if err != nil {
		return nil, err
	}
	held, err := lockAccount(ctx, tx, domain.Identity(c.Address))
	if err != nil {
		return nil, err
	}
	// ordered checks run before the caller's account is even consulted
	if err = c.RecordWithdrawal(caller, amount, held, r.MinimumReserve()); err != nil {
		return nil, err
	}
	callerBalance, err := lockAccount(ctx, tx, caller)
	if err != nil {
		return nil, err
	}
	if callerBalance+amount > maxStoredAmount {
		err = domain.ErrArithmeticOverflow
		return nil, err
	}

	if err = setBalance(ctx, tx, domain.Identity(c.Address), held-amount); err != nil {
		return nil, err
	}
	if err = setBalance(ctx, tx, caller, callerBalance+amount); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if err = updateAccumulator(ctx, tx, c, now); err != nil {
		return nil, err
	}
	return c, nil
}

// lockCampaign loads the record at addr under FOR UPDATE.
func lockCampaign(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.Campaign, error) {
	return scanCampaign(tx.QueryRow(ctx, `SELECT address, admin, name, description, amount_donated, created_at, updated_at
FROM campaigns WHERE address = $1 FOR UPDATE`, addr))
}

// lockAccount returns the balance of id under FOR UPDATE, or
// port.ErrAccountNotFound.
func lockAccount(ctx context.Context, tx pgx.Tx, id domain.Identity) (uint64, error) {
	var balance int64
	err := tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE address = $1 FOR UPDATE`, string(id)).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrAccountNotFound
	}
	if err != nil {
		return 0, err
	}
	return uint64(balance), nil
}

func setBalance(ctx context.Context, tx pgx.Tx, id domain.Identity, balance uint64) error {
	_, err := tx.Exec(ctx, `UPDATE accounts SET balance = $1, updated_at = now() WHERE address = $2`,
		int64(balance), string(id))
	return err
}

func updateAccumulator(ctx context.Context, tx pgx.Tx, c *domain.Campaign, at time.Time) error {
	c.UpdatedAt = at
	_, err := tx.Exec(ctx, `UPDATE campaigns SET amount_donated = $1, updated_at = $2 WHERE address = $3`,
		int64(c.AmountDonated), c.UpdatedAt, c.Address)
	return err
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c     domain.Campaign
		total int64
	)
	err := row.Scan(&c.Address, &c.Admin, &c.Name, &c.Description, &total, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	c.AmountDonated = uint64(total)
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
