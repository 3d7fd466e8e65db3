package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/designdynasty/site/backend/internal/model/session"
	sessionservice "github.com/designdynasty/site/backend/internal/service/session"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidEmail       = errors.New("a valid email address is required")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("otp is invalid or expired")
	ErrNotVerified        = errors.New("account is not verified")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Account is a registered site user. Passwords are stored as bcrypt
// hashes only.
type Account struct {
	ID           string
	Name         string
	Email        string
	Role         string
	Verified     bool
	passwordHash []byte
}

type otpEntry struct {
	code    string
	expires time.Time
}

// Service owns the account registry and the OTP verification flow, and
// issues session records on successful login.
type Service struct {
	mu       sync.Mutex
	accounts map[string]*Account // keyed by lower-cased email
	otps     map[string]otpEntry
	sessions *sessionservice.Service
	otpTTL   time.Duration
	now      func() time.Time
}

// New bootstraps the in-memory auth service.
func New(sessions *sessionservice.Service, otpTTL time.Duration) *Service {
	return &Service{
		accounts: make(map[string]*Account),
		otps:     make(map[string]otpEntry),
		sessions: sessions,
		otpTTL:   otpTTL,
		now:      time.Now,
	}
}

// SeedAdmin registers a pre-verified admin account. Used at startup when
// admin credentials are configured.
func (s *Service) SeedAdmin(email, password string) error {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[email] = &Account{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Email:        email,
		Role:         "admin",
		Verified:     true,
		passwordHash: hash,
	}
	return nil
}

// Register creates an unverified account and issues its 6-digit OTP. The
// OTP is returned so the caller can hand it to the mail delivery path.
func (s *Service) Register(_ context.Context, name, email, password string) (string, error) {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	if len(password) < 8 {
		return "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	otp, err := generateOTP()
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[email]; ok {
		return "", ErrEmailTaken
	}

	s.accounts[email] = &Account{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		Role:         "user",
		passwordHash: hash,
	}
	s.otps[email] = otpEntry{code: otp, expires: s.now().Add(s.otpTTL)}

	return otp, nil
}

// VerifyOTP marks the account verified when the supplied code matches
// and has not expired. Codes are single-use either way.
func (s *Service) VerifyOTP(_ context.Context, email, otp string) error {
	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.otps[email]
	if !ok {
		return ErrInvalidOTP
	}
	delete(s.otps, email)

	if s.now().After(entry.expires) {
		return ErrInvalidOTP
	}
	if subtle.ConstantTimeCompare([]byte(entry.code), []byte(otp)) != 1 {
		return ErrInvalidOTP
	}

	account, ok := s.accounts[email]
	if !ok {
		return ErrInvalidOTP
	}
	account.Verified = true
	return nil
}

// Login checks the credentials and issues a session record. The login
// timestamp is stamped by the session service; expiry is entirely the
// guard's business from here on.
func (s *Service) Login(_ context.Context, email, password string) (session.Record, error) {
	email = normalizeEmail(email)

	// Snapshot the account while holding the lock. VerifyOTP mutates
	// Verified on the stored record, and the bcrypt compare below must
	// not read it concurrently.
	s.mu.Lock()
	stored, ok := s.accounts[email]
	var account Account
	if ok {
		account = *stored
	}
	s.mu.Unlock()

	if !ok {
		// Burn a comparison anyway so missing and wrong-password cases
		// take similar time.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return session.Record{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password)); err != nil {
		return session.Record{}, ErrInvalidCredentials
	}
	if !account.Verified {
		return session.Record{}, ErrNotVerified
	}

	return s.sessions.Create(account.Role, account.Name, account.Email), nil
}

// Logout destroys the session for the supplied token.
func (s *Service) Logout(token string) {
	s.sessions.Clear(token)
}

var dummyHash = mustHash("design-dynasty-placeholder")

func mustHash(p string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return h
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
