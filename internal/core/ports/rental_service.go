package ports

import (
	"context"

	"github.com/cinehub/rental-service/internal/core/domain"
)

// RentalService is the rental lifecycle engine: creation decrements stock,
// return computes the fee and increments stock. It holds no state across
// requests; it orchestrates repository-fetched snapshots.
type RentalService interface {
	List(ctx context.Context) ([]domain.Rental, error)
	Get(ctx context.Context, id string) (*domain.Rental, error)
	Create(ctx context.Context, customerID, movieID string) (*domain.Rental, error)
	Return(ctx context.Context, customerID, movieID string) (*domain.Rental, error)
}

// StockReconciler accepts movie ids whose stock increment failed after a
// return was committed, for asynchronous retry.
type StockReconciler interface {
	EnqueueIncrement(movieID string)
}
