package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sirpyerre/merch-store-api/internal/core/domain"
)

func TestAuthService_Register_Success(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != 1 {
		t.Fatalf("expected id 1, got %d", user.ID)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.TotalSpent.IsZero() || user.TotalPurchases != 0 {
		t.Fatalf("expected zeroed totals, got %+v", user)
	}

	snap, _ := store.Load(context.Background())
	if len(snap.Users) != 1 {
		t.Fatalf("expected 1 persisted user, got %d", len(snap.Users))
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), "", "a@example.com", "pass"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Bob", "", "pass"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Bob", "b@example.com", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "pass2"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	snap, _ := store.Load(context.Background())
	if len(snap.Users) != 1 {
		t.Fatalf("duplicate registration must not create a second record, got %d users", len(snap.Users))
	}
}

func TestAuthService_Register_EmailComparisonIsExact(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// Emails compare byte-wise as stored; a different casing is a new account.
	if _, _, err := svc.Register(context.Background(), "Bob", "Bob@example.com", "pass"); err != nil {
		t.Fatalf("expected case-different email to register, got %v", err)
	}
}

func TestAuthService_Register_ConcurrentDuplicates(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, "secret", time.Hour, zerolog.Nop())

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "pass")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrEmailTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one success and one conflict, got %d/%d", successes, conflicts)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, "secret", 7*24*time.Hour, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if id, _ := claims["user_id"].(float64); int64(id) != user.ID {
		t.Fatalf("expected user_id %d in claims, got %v", user.ID, claims["user_id"])
	}
	if claims["email"] != "carol@example.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}

	exp, _ := claims["exp"].(float64)
	week := time.Now().Add(7 * 24 * time.Hour).Unix()
	if int64(exp) < week-60 || int64(exp) > week+60 {
		t.Fatalf("expected ~7 day expiry, got %v", claims["exp"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, "secret", time.Hour, zerolog.Nop())

	_, _, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, "secret", time.Hour, zerolog.Nop())

	// Unknown email and wrong password are indistinguishable.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, "secret", time.Hour, zerolog.Nop())

	_, registered, err := svc.Register(context.Background(), "Eve", "eve@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Profile(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if user.Email != "eve@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
