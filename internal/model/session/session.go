package session

import "time"

// Record is the full bundle of credential and identity data behind one
// issued token. If the token is gone the whole record is gone; there is
// no partial invalidation.
type Record struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	LoginTime time.Time `json:"loginTime"`
}

// Age reports how long ago the record was issued. Lifetime is always
// measured from the original login, never from last activity.
func (r Record) Age(now time.Time) time.Duration {
	return now.Sub(r.LoginTime)
}
