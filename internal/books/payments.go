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

// PaymentInput carries the caller-supplied fields of a supplier payment.
type PaymentInput struct {
	Date               time.Time
	ContactID          uuid.UUID
	Amount             decimal.Decimal
	PaymentAccountCode string
	Description        string
}

// CollectionInput carries the caller-supplied fields of a customer
// collection. InvoiceID optionally links the collection to an open invoice.
type CollectionInput struct {
	Date               time.Time
	ContactID          uuid.UUID
	Amount             decimal.Decimal
	PaymentAccountCode string
	Description        string
	InvoiceID          uuid.UUID
}

// AddPayment settles payables: payable debited, the chosen cash or bank
// account credited. Payments are add-only.
func (s *Service) AddPayment(ctx context.Context, in PaymentInput) (ledger.Payment, error) {
	if err := validateSimple(in.Amount, in.PaymentAccountCode); err != nil {
		return ledger.Payment{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := ledger.Payment{
		ID:                 uuid.New(),
		Date:               orNow(in.Date),
		ContactID:          in.ContactID,
		Amount:             in.Amount,
		PaymentAccountCode: in.PaymentAccountCode,
		Description:        in.Description,
	}
	lines, err := posting.Post(posting.PaymentMade{
		Payment:     p,
		ContactName: s.contactName(p.ContactID),
		AccountName: s.accountName(p.PaymentAccountCode),
	})
	if err != nil {
		return ledger.Payment{}, err
	}
	s.journal.Append(lines...)
	s.payments = append(s.payments, p)
	s.persist(ctx)
	return p, nil
}

// AddCollection settles receivables: the chosen cash or bank account debited,
// receivable credited. A collection referencing an invoice marks it paid.
func (s *Service) AddCollection(ctx context.Context, in CollectionInput) (ledger.Collection, error) {
	if err := validateSimple(in.Amount, in.PaymentAccountCode); err != nil {
		return ledger.Collection{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.InvoiceID != uuid.Nil && s.invoiceIndexLocked(in.InvoiceID) < 0 {
		return ledger.Collection{}, fmt.Errorf("%w: invoice %s", errs.ErrNotFound, in.InvoiceID)
	}

	c := ledger.Collection{
		ID:                 uuid.New(),
		Date:               orNow(in.Date),
		ContactID:          in.ContactID,
		Amount:             in.Amount,
		PaymentAccountCode: in.PaymentAccountCode,
		Description:        in.Description,
		InvoiceID:          in.InvoiceID,
	}
	lines, err := posting.Post(posting.CollectionReceived{
		Collection:  c,
		ContactName: s.contactName(c.ContactID),
		AccountName: s.accountName(c.PaymentAccountCode),
	})
	if err != nil {
		return ledger.Collection{}, err
	}
	s.journal.Append(lines...)
	s.collections = append(s.collections, c)
	if c.InvoiceID != uuid.Nil {
		if idx := s.invoiceIndexLocked(c.InvoiceID); idx >= 0 {
			s.invoices[idx].Status = ledger.InvoicePaid
		}
	}
	s.persist(ctx)
	return c, nil
}

// Payments lists the recorded payments in insertion order.
func (s *Service) Payments() []ledger.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// Collections lists the recorded collections in insertion order.
func (s *Service) Collections() []ledger.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Collection, len(s.collections))
	copy(out, s.collections)
	return out
}
