package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	authservice "github.com/designdynasty/site/backend/internal/service/auth"
	sessionservice "github.com/designdynasty/site/backend/internal/service/session"
)

func newServices() (*authservice.Service, *sessionservice.Service) {
	sessions := sessionservice.New(5*time.Minute, 15*time.Second)
	return authservice.New(sessions, 10*time.Minute), sessions
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	authSvc, _ := newServices()
	ctx := context.Background()

	otp, err := authSvc.Register(ctx, "Jane Doe", "jane@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if len(otp) != 6 {
		t.Fatalf("expected 6-digit otp, got %q", otp)
	}

	// Unverified accounts cannot log in yet.
	if _, err := authSvc.Login(ctx, "jane@example.com", "s3cret-pass"); !errors.Is(err, authservice.ErrNotVerified) {
		t.Fatalf("expected ErrNotVerified, got %v", err)
	}

	if err := authSvc.VerifyOTP(ctx, "jane@example.com", otp); err != nil {
		t.Fatalf("VerifyOTP err: %v", err)
	}

	record, err := authSvc.Login(ctx, "jane@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if record.Token == "" || record.Role != "user" || record.Email != "jane@example.com" {
		t.Fatalf("unexpected session record: %+v", record)
	}
	if record.LoginTime.IsZero() {
		t.Fatal("login time not stamped")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	authSvc, _ := newServices()
	ctx := context.Background()

	if _, err := authSvc.Register(ctx, "Jane", "jane@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("first Register err: %v", err)
	}
	if _, err := authSvc.Register(ctx, "Other", "jane@example.com", "password123"); !errors.Is(err, authservice.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	authSvc, _ := newServices()
	ctx := context.Background()

	if _, err := authSvc.Register(ctx, "Jane", "not-an-email", "s3cret-pass"); !errors.Is(err, authservice.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := authSvc.Register(ctx, "Jane", "jane@example.com", "short"); !errors.Is(err, authservice.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestVerifyOTPWrongCodeIsSingleUse(t *testing.T) {
	authSvc, _ := newServices()
	ctx := context.Background()

	otp, _ := authSvc.Register(ctx, "Jane", "jane@example.com", "s3cret-pass")

	if err := authSvc.VerifyOTP(ctx, "jane@example.com", "000000"); !errors.Is(err, authservice.ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP for wrong code, got %v", err)
	}

	// Codes burn on first use, even a failed one.
	if err := authSvc.VerifyOTP(ctx, "jane@example.com", otp); !errors.Is(err, authservice.ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP after burn, got %v", err)
	}
}

func TestVerifyOTPExpires(t *testing.T) {
	sessions := sessionservice.New(5*time.Minute, 15*time.Second)
	authSvc := authservice.New(sessions, time.Nanosecond)
	ctx := context.Background()

	otp, _ := authSvc.Register(ctx, "Jane", "jane@example.com", "s3cret-pass")
	time.Sleep(time.Millisecond)

	if err := authSvc.VerifyOTP(ctx, "jane@example.com", otp); !errors.Is(err, authservice.ErrInvalidOTP) {
		t.Fatalf("expected expired otp to fail, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	authSvc, _ := newServices()
	ctx := context.Background()

	otp, _ := authSvc.Register(ctx, "Jane", "jane@example.com", "s3cret-pass")
	_ = authSvc.VerifyOTP(ctx, "jane@example.com", otp)

	if _, err := authSvc.Login(ctx, "jane@example.com", "wrong-pass"); !errors.Is(err, authservice.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := authSvc.Login(ctx, "nobody@example.com", "whatever1"); !errors.Is(err, authservice.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLoginConcurrentWithVerifyOTP(t *testing.T) {
	authSvc, _ := newServices()
	ctx := context.Background()

	otp, err := authSvc.Register(ctx, "Jane", "jane@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}

	// Login's bcrypt compare runs outside the lock while VerifyOTP flips
	// the verified flag under it. Run them together so the race detector
	// watches the interleaving.
	done := make(chan error, 1)
	go func() {
		_, err := authSvc.Login(ctx, "jane@example.com", "s3cret-pass")
		done <- err
	}()

	time.Sleep(5 * time.Millisecond)
	if err := authSvc.VerifyOTP(ctx, "jane@example.com", otp); err != nil {
		t.Fatalf("VerifyOTP err: %v", err)
	}

	// Either outcome is fine depending on which side won; corruption or
	// a third error is not.
	if err := <-done; err != nil && !errors.Is(err, authservice.ErrNotVerified) {
		t.Fatalf("unexpected Login err: %v", err)
	}

	if _, err := authSvc.Login(ctx, "jane@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("Login after verification err: %v", err)
	}
}

func TestSeedAdminAndLogout(t *testing.T) {
	authSvc, sessions := newServices()
	ctx := context.Background()

	if err := authSvc.SeedAdmin("admin@designdynasty.com", "super-secret"); err != nil {
		t.Fatalf("SeedAdmin err: %v", err)
	}

	record, err := authSvc.Login(ctx, "admin@designdynasty.com", "super-secret")
	if err != nil {
		t.Fatalf("admin Login err: %v", err)
	}
	if record.Role != "admin" {
		t.Fatalf("expected admin role, got %s", record.Role)
	}

	authSvc.Logout(record.Token)
	if _, err := sessions.Validate(record.Token); err == nil {
		t.Fatal("expected session to be cleared after logout")
	}
}
