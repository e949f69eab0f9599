package domain

import "time"

// Session is the proof of an authenticated account. Token is the opaque
// bearer credential and doubles as the primary key in storage. Account is
// the joined projection of the owning account so callers don't need a
// second lookup.
type Session struct {
	Token     string
	AccountID string
	CreatedAt time.Time
	ExpiresAt time.Time

	Account Profile
}

// Expired reports whether the session is past its expiry at the given
// instant. An expired session is indistinguishable from an absent one to
// callers, even while the row still exists.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
