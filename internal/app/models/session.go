package models

import "time"

// Session binds an opaque token to a user between login and signout. ExpiresAt
// is nil for non-expiring sessions (the default configuration).
type Session struct {
	Token     string     `json:"token" db:"token"`
	UserID    int64      `json:"userId" db:"user_id"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" db:"expires_at"`
}

// Expired reports whether the session has passed its expiry time.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(now)
}
