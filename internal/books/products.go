package books

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/errs"
	"github.com/fyrel/books/internal/ledger"
)

// ProductInput carries the caller-supplied fields of a product. Stock
// counters are engine-managed and never accepted from the caller.
type ProductInput struct {
	Code         string
	Name         string
	Cost         decimal.Decimal
	Price        decimal.Decimal
	InitialStock int64
}

func (in ProductInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: product name is required", errs.ErrInvalid)
	}
	if in.Cost.IsNegative() || in.Price.IsNegative() {
		return fmt.Errorf("%w: cost and price must not be negative", errs.ErrInvalid)
	}
	return nil
}

// AddProduct registers a stock item. Stock starts at the initial quantity
// with zero cumulative movements.
func (s *Service) AddProduct(ctx context.Context, in ProductInput) (ledger.Product, error) {
	if err := in.validate(); err != nil {
		return ledger.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &ledger.Product{
		ID:           uuid.New(),
		Code:         in.Code,
		Name:         in.Name,
		Cost:         in.Cost,
		Price:        in.Price,
		InitialStock: in.InitialStock,
		Stock:        in.InitialStock,
	}
	s.products = append(s.products, p)
	s.productByID[p.ID] = p
	s.persist(ctx)
	return *p, nil
}

// UpdateProduct replaces the descriptive fields of a product. The movement
// counters are preserved and the stock recomputed, keeping the invariant
// stock = initial + inbound - outbound.
func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, in ProductInput) (ledger.Product, error) {
	if err := in.validate(); err != nil {
		return ledger.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.productByID[id]
	if p == nil {
		return ledger.Product{}, errs.ErrNotFound
	}
	p.Code = in.Code
	p.Name = in.Name
	p.Cost = in.Cost
	p.Price = in.Price
	p.InitialStock = in.InitialStock
	p.Stock = p.InitialStock + p.Inbound - p.Outbound
	s.persist(ctx)
	return *p, nil
}

// DeleteProduct removes a product record. Transactions referencing it keep
// their postings; future postings for the id fall back to cost estimation.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.productByID[id] == nil {
		return errs.ErrNotFound
	}
	delete(s.productByID, id)
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	s.persist(ctx)
	return nil
}

// Products lists the products in insertion order.
func (s *Service) Products() []ledger.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out
}

// Product returns a single product by id.
func (s *Service) Product(id uuid.UUID) (ledger.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.productByID[id]
	if p == nil {
		return ledger.Product{}, errs.ErrNotFound
	}
	return *p, nil
}
