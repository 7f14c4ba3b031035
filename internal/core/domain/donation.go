package domain

import "time"

// Donation is the receipt of a single donate operation. It is written in
// the same atomic unit as the funds transfer and returned to the donor.
type Donation struct {
	ID       int64
	Token    string
	Campaign Address
	Donor    Identity
	Amount   uint64

	CreatedAt time.Time
}
