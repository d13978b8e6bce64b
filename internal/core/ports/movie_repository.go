package ports

import (
	"context"

	"github.com/cinehub/rental-service/internal/core/domain"
)

// MovieRepository defines persistence for movies.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	// FindAll returns all movies sorted by title.
	FindAll(ctx context.Context) ([]domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	Update(ctx context.Context, id string, movie *domain.Movie) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
	// AdjustStock atomically applies delta to number_in_stock. A negative
	// delta is guarded so stock never drops below zero; when no copy is
	// left the call fails with domain.ErrMovieOutOfStock.
	AdjustStock(ctx context.Context, id string, delta int) error
}
