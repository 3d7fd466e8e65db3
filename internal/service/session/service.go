package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/designdynasty/site/backend/internal/model/session"
)

// ErrNotAuthenticated covers every invalid-session case uniformly: absent
// token, unknown token, and expired record all look the same to callers.
var ErrNotAuthenticated = errors.New("not authenticated")

// Service owns the token-keyed session records. Lifetime is fixed: a
// record expires when its age exceeds the configured timeout, measured
// from the original login. There is no sliding renewal.
type Service struct {
	mu            sync.RWMutex
	records       map[string]session.Record
	timeout       time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

// New bootstraps the in-memory session service.
func New(timeout, sweepInterval time.Duration) *Service {
	return NewWithClock(timeout, sweepInterval, time.Now)
}

// NewWithClock is New with an injected clock so tests can probe the
// expiry boundary without sleeping.
func NewWithClock(timeout, sweepInterval time.Duration, now func() time.Time) *Service {
	return &Service{
		records:       make(map[string]session.Record),
		timeout:       timeout,
		sweepInterval: sweepInterval,
		now:           now,
	}
}

// Timeout reports the configured fixed session lifetime.
func (s *Service) Timeout() time.Duration {
	return s.timeout
}

// Create issues a fresh record for an authenticated identity.
func (s *Service) Create(role, username, email string) session.Record {
	record := session.Record{
		Token:     uuid.NewString(),
		Role:      role,
		Username:  username,
		Email:     email,
		LoginTime: s.now().UTC(),
	}

	s.mu.Lock()
	s.records[record.Token] = record
	s.mu.Unlock()

	return record
}

// Get retrieves a record without touching its validity.
func (s *Service) Get(token string) (session.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[token]
	if !ok {
		return session.Record{}, ErrNotAuthenticated
	}
	return record, nil
}

// Validate applies the gate checks in order: missing credential, unknown
// credential, expired record. An expired record is deleted wholesale
// before reporting failure, so no stale identity data survives doubt.
// A record is still valid at exactly timeout age; only strictly older
// records expire.
func (s *Service) Validate(token string) (session.Record, error) {
	if token == "" {
		return session.Record{}, ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[token]
	if !ok {
		return session.Record{}, ErrNotAuthenticated
	}

	if record.Age(s.now()) > s.timeout {
		delete(s.records, token)
		return session.Record{}, ErrNotAuthenticated
	}

	return record, nil
}

// Clear destroys a record, e.g. on explicit logout. Unknown tokens are a
// no-op: the end state is the same either way.
func (s *Service) Clear(token string) {
	s.mu.Lock()
	delete(s.records, token)
	s.mu.Unlock()
}

// Count reports how many live records exist. Used by the sweeper log and
// by tests.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Sweep runs the periodic expiry check until ctx is cancelled, so idle
// sessions self-expire without any request traffic.
func (s *Service) Sweep(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sweepOnce(); removed > 0 {
				log.Printf("[session] swept %d expired session(s)", removed)
			}
		}
	}
}

func (s *Service) sweepOnce() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, record := range s.records {
		if record.Age(now) > s.timeout {
			delete(s.records, token)
			removed++
		}
	}
	return removed
}
