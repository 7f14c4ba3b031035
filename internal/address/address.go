// Package address derives deterministic storage addresses for ledger
// records. A record address is a keyed hash of its owner's identity, keyed
// by a fixed domain tag, so distinct record kinds owned by the same
// identity never collide.
package address

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/mr-tron/base58"

	"crowdfund/internal/core/domain"
)

// Derive returns the well-known address of the record owned by owner under
// tag: base58 over HMAC-SHA256(tag, owner). Pure and collision-resistant;
// the same (tag, owner) pair always yields the same address.
func Derive(tag string, owner domain.Identity) domain.Address {
	mac := hmac.New(sha256.New, []byte(tag))
	mac.Write([]byte(owner))
	return domain.Address(base58.Encode(mac.Sum(nil)))
}
