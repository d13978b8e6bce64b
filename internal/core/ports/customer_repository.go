package ports

import (
	"context"

	"github.com/cinehub/rental-service/internal/core/domain"
)

// CustomerRepository defines persistence for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	// FindAll returns all customers sorted by name.
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	// Update replaces the mutable fields and returns the updated document.
	Update(ctx context.Context, id string, customer *domain.Customer) (*domain.Customer, error)
	// Delete removes the customer and returns the removed document.
	Delete(ctx context.Context, id string) (*domain.Customer, error)
}
