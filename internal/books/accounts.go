package books

import (
	"context"

	"github.com/fyrel/books/internal/ledger"
)

// AddAccount registers a new account in the chart.
func (s *Service) AddAccount(ctx context.Context, a ledger.Account) (ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created, err := s.registry.Add(a)
	if err != nil {
		return ledger.Account{}, err
	}
	s.persist(ctx)
	return created, nil
}

// UpdateAccount replaces the account matching the given code.
func (s *Service) UpdateAccount(ctx context.Context, a ledger.Account) (ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := s.registry.Update(a)
	if err != nil {
		return ledger.Account{}, err
	}
	s.persist(ctx)
	return updated, nil
}

// DeleteAccount removes an account from the chart. Journal lines already
// posted against the code are left in place and drop out of the reports.
func (s *Service) DeleteAccount(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.registry.Delete(code); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// Accounts lists the chart of accounts in insertion order.
func (s *Service) Accounts() []ledger.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.All()
}
