package ports

import (
	"context"

	"github.com/cinehub/rental-service/internal/core/domain"
)

// AuthService implements registration, login and identity lookup.
type AuthService interface {
	// Register creates a user with a hashed password and returns the stored
	// user together with a freshly issued token.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, email, password string) (string, error)
	// Me returns the user identified by the token subject.
	Me(ctx context.Context, userID string) (*domain.User, error)
}

// LoginThrottle guards the login endpoint against brute force. Implemented
// by the Redis failed-attempt counter.
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
