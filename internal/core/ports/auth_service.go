package ports

import (
	"context"

	"github.com/sirpyerre/merch-store-api/internal/core/domain"
)

// AuthService implements registration, login and profile lookup. Register
// and Login return a signed bearer token alongside the user.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}
