package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cinehub/rental-service/internal/core/domain"
	"github.com/cinehub/rental-service/internal/core/ports"
)

type customerService struct {
	customers ports.CustomerRepository
	log       zerolog.Logger
}

// NewCustomerService returns a CustomerService implementation.
func NewCustomerService(customers ports.CustomerRepository, log zerolog.Logger) ports.CustomerService {
	return &customerService{customers: customers, log: log}
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.FindAll(ctx)
}

func (s *customerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

func (s *customerService) Create(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{Name: in.Name, Phone: in.Phone, IsGold: in.IsGold}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, id string, in ports.CustomerInput) (*domain.Customer, error) {
	return s.customers.Update(ctx, id, &domain.Customer{Name: in.Name, Phone: in.Phone, IsGold: in.IsGold})
}

func (s *customerService) Delete(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.Delete(ctx, id)
}
