package ports

import (
	"context"

	"github.com/cinehub/rental-service/internal/core/domain"
)

// GenreRepository defines persistence for genres.
type GenreRepository interface {
	Create(ctx context.Context, genre *domain.Genre) error
	// FindAll returns all genres sorted by name.
	FindAll(ctx context.Context) ([]domain.Genre, error)
	FindByID(ctx context.Context, id string) (*domain.Genre, error)
	Update(ctx context.Context, id string, name string) (*domain.Genre, error)
	Delete(ctx context.Context, id string) (*domain.Genre, error)
}
