package model

import "time"

// Profile tracks per-customer cancellation history, keyed by phone number.
// PenaltyUntil, when set and in the future, blocks new checkouts.
type Profile struct {
	Phone             string
	CancellationCount int
	PenaltyUntil      *time.Time
}
