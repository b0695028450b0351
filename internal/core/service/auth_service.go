package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/sirpyerre/merch-store-api/internal/core/domain"
	"github.com/sirpyerre/merch-store-api/internal/core/ports"
)

// AuthService implements registration, login, and token issuance.
type AuthService struct {
	store     ports.SnapshotStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(store ports.SnapshotStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates a new user and returns a signed token for it. The
// duplicate-email check and the insert run inside a single store update, so
// two concurrent registrations with the same email serialize and the second
// one fails with ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: name, email and password are required", domain.ErrInvalidInput)
	}

	// Hashing is slow on purpose; keep it outside the store's critical section.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	var user *domain.User
	err = s.store.Update(ctx, func(snap *domain.Snapshot) error {
		if _, err := snap.FindUserByEmail(email); err == nil {
			return domain.ErrEmailTaken
		}
		user = &domain.User{
			ID:             snap.NextUserID(),
			Name:           name,
			Email:          email,
			PasswordHash:   string(hash),
			RegisteredAt:   time.Now().UTC(),
			TotalSpent:     decimal.Zero,
			TotalPurchases: 0,
		}
		snap.Users = append(snap.Users, user)
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return token, user, nil
}

// Login verifies the credentials and returns a fresh token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	snap, err := s.store.Load(ctx)
	if err != nil {
		return "", nil, err
	}

	user, err := snap.FindUserByEmail(email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// Profile returns the user behind a verified identity.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.FindUserByID(userID)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
