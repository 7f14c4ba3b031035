package domain

import (
	"time"
	"unicode/utf8"
)

// Maximum metadata lengths, in characters. The storage layer budgets
// 4 bytes per character for each field.
const (
	MaxNameLen        = 50
	MaxDescriptionLen = 100
)

// Campaign is the persistent record of one crowdfunding effort. All amounts
// are denominated in the smallest unit of the ledger's native currency.
// AmountDonated tracks the logical donation total still withdrawable; the
// held balance of the campaign's account is kept by the storage host and is
// always at least AmountDonated plus the host's minimum reserve.
type Campaign struct {
	Address       Address
	Admin         Identity
	Name          string
	Description   string
	AmountDonated uint64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCampaign validates metadata and returns a fresh record owned by admin.
// Name length is checked before description length; the first failure wins.
func NewCampaign(admin Identity, name, description string) (Campaign, error) {
	if utf8.RuneCountInString(name) > MaxNameLen {
		return Campaign{}, ErrNameTooLong
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return Campaign{}, ErrDescriptionTooLong
	}
	return Campaign{
		Admin:         admin,
		Name:          name,
		Description:   description,
		AmountDonated: 0,
	}, nil
}

// RecordDonation increments the donation accumulator. The caller must have
// already moved amount into the campaign's held balance; both happen in one
// atomic unit at the storage host. Fails with ErrArithmeticOverflow instead
// of wrapping, leaving the record untouched.
func (c *Campaign) RecordDonation(amount uint64) error {
	if c.AmountDonated+amount < c.AmountDonated {
		return ErrArithmeticOverflow
	}
	c.AmountDonated += amount
	return nil
}

// RecordWithdrawal applies the ordered withdrawal checks and, when they all
// pass, decrements the accumulator. heldBalance and minReserve are supplied
// by the storage host for the campaign's account. Checks run in order:
// authorization, donated-funds floor, reserve floor; the first failure
// aborts with no mutation. The donated-funds check doubles as the underflow
// guard on the accumulator.
func (c *Campaign) RecordWithdrawal(caller Identity, amount, heldBalance, minReserve uint64) error {
	if caller != c.Admin {
		return ErrUnauthorized
	}
	if amount > c.AmountDonated {
		return ErrInsufficientDonatedFunds
	}
	if heldBalance < amount || heldBalance-amount < minReserve {
		return ErrInsufficientFunds
	}
	c.AmountDonated -= amount
	return nil
}
