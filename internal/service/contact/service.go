package contact

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameTooShort    = errors.New("name must be at least 2 characters")
	ErrInvalidEmail    = errors.New("a valid email address is required")
	ErrServiceRequired = errors.New("please select a service")
	ErrMessageTooShort = errors.New("message must be at least 10 characters")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is one stored contact-form lead.
type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Service    string    `json:"service"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Service stores contact-form submissions in memory. There is no retry
// or queueing: a submission either validates and lands, or is rejected.
type Service struct {
	mu          sync.RWMutex
	submissions []Submission
}

// NewService bootstraps the submission store.
func NewService() *Service {
	return &Service{}
}

// Submit validates and stores one lead.
func (s *Service) Submit(_ context.Context, name, email, service, message string) (Submission, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if len(name) < 2 {
		return Submission{}, ErrNameTooShort
	}
	if !emailPattern.MatchString(email) {
		return Submission{}, ErrInvalidEmail
	}
	if service == "" {
		return Submission{}, ErrServiceRequired
	}
	if len(message) < 10 {
		return Submission{}, ErrMessageTooShort
	}

	submission := Submission{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Service:    service,
		Message:    message,
		ReceivedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.submissions = append(s.submissions, submission)
	s.mu.Unlock()

	return submission, nil
}

// List returns all stored submissions in arrival order.
func (s *Service) List(_ context.Context) []Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Submission(nil), s.submissions...)
}
