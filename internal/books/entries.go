package books

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/errs"
	"github.com/fyrel/books/internal/ledger"
	"github.com/fyrel/books/internal/posting"
)

// AddManualEntry posts caller-specified lines as one journal entry group.
// Fails with ErrUnbalancedEntry when debits and credits differ or both are zero.
func (s *Service) AddManualEntry(ctx context.Context, date time.Time, description string, lines []ledger.ManualLine) (ledger.ManualEntry, error) {
	if len(lines) == 0 {
		return ledger.ManualEntry{}, fmt.Errorf("%w: entry needs at least one line", errs.ErrInvalid)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ln := range lines {
		if ln.AccountCode == "" {
			return ledger.ManualEntry{}, fmt.Errorf("%w: line %d account code is required", errs.ErrInvalid, i)
		}
		// Unknown codes are tolerated (they drop out of the reports), but
		// structural header accounts never take postings.
		if a, ok := s.registry.Lookup(ln.AccountCode); ok && a.Type == ledger.AccountHeader {
			return ledger.ManualEntry{}, fmt.Errorf("%w: account %s", errs.ErrHeaderAccount, ln.AccountCode)
		}
	}
	entry := ledger.ManualEntry{
		ID:          uuid.New(),
		Date:        orNow(date),
		Description: description,
		Lines:       lines,
	}
	posted, err := posting.Post(posting.Manual{
		EntryID:     entry.ID,
		Date:        entry.Date,
		Description: entry.Description,
		Lines:       entry.Lines,
	})
	if err != nil {
		return ledger.ManualEntry{}, err
	}
	s.journal.Append(posted...)
	s.manualEntries = append(s.manualEntries, entry)
	s.persist(ctx)
	return entry, nil
}

// AddIncome records income outside the sales flow: the named account is
// debited and generic revenue credited. No entity beyond the journal lines
// is stored.
func (s *Service) AddIncome(ctx context.Context, date time.Time, description string, amount decimal.Decimal, contactID uuid.UUID, accountCode string) error {
	if err := validateSimple(amount, accountCode); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := posting.Post(posting.SimpleIncome{
		ID:          uuid.New(),
		Date:        orNow(date),
		Description: description,
		Amount:      amount,
		AccountCode: accountCode,
		ContactName: s.contactName(contactID),
	})
	if err != nil {
		return err
	}
	s.journal.Append(lines...)
	s.persist(ctx)
	return nil
}

// AddExpense records an expense outside the purchase flow: generic expenses
// are debited and the named account credited.
func (s *Service) AddExpense(ctx context.Context, date time.Time, description string, amount decimal.Decimal, contactID uuid.UUID, accountCode string) error {
	if err := validateSimple(amount, accountCode); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := posting.Post(posting.SimpleExpense{
		ID:          uuid.New(),
		Date:        orNow(date),
		Description: description,
		Amount:      amount,
		AccountCode: accountCode,
		ContactName: s.contactName(contactID),
	})
	if err != nil {
		return err
	}
	s.journal.Append(lines...)
	s.persist(ctx)
	return nil
}

// ManualEntries lists the recorded manual entries in insertion order.
func (s *Service) ManualEntries() []ledger.ManualEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.ManualEntry, len(s.manualEntries))
	copy(out, s.manualEntries)
	return out
}

// JournalLines returns every posted line in posting order (the journal book).
func (s *Service) JournalLines() []ledger.JournalLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.journal.All()
}

func validateSimple(amount decimal.Decimal, accountCode string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalid)
	}
	if accountCode == "" {
		return fmt.Errorf("%w: account code is required", errs.ErrInvalid)
	}
	return nil
}
