package ports

import (
	"context"

	"github.com/cinehub/rental-service/internal/core/domain"
)

// UserRepository defines persistence for registered users.
type UserRepository interface {
	// Create inserts the user and returns it with the store-generated id.
	// Returns domain.ErrUserExists when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
