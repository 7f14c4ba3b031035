package domain

import "time"

// Identity is the base58 address of an external ledger account. The host
// authenticates callers before any operation runs, so an Identity reaching
// the core is already proven; the core only compares it against stored
// authorization state.
type Identity string

// Address identifies a campaign record's storage slot. It is derived
// deterministically from a domain tag and the admin's Identity, so each
// admin has one campaign at a well-known address.
type Address string

// Account holds the external balance of one identity.
type Account struct {
	Address   Identity
	Balance   uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}
