package domain

import "errors"

// Terminal errors of the campaign state machine. Every operation either
// fully succeeds or fails with exactly one of these and no observable side
// effect.
var (
	// ErrNameTooLong rejects a campaign name above MaxNameLen characters.
	ErrNameTooLong = errors.New("campaign name too long")
	// ErrDescriptionTooLong rejects a description above MaxDescriptionLen characters.
	ErrDescriptionTooLong = errors.New("campaign description too long")
	// ErrUnauthorized rejects a withdrawal by anyone but the campaign admin.
	ErrUnauthorized = errors.New("caller is not the campaign admin")
	// ErrInsufficientDonatedFunds rejects a withdrawal above the donation accumulator.
	ErrInsufficientDonatedFunds = errors.New("withdrawal exceeds donated funds")
	// ErrInsufficientFunds rejects a transfer that would breach the minimum
	// reserve of the paying account or exceeds its balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrArithmeticOverflow rejects an amount the accumulator cannot represent.
	ErrArithmeticOverflow = errors.New("amount overflows donation accumulator")
)
