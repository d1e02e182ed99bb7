package books

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/errs"
	"github.com/fyrel/books/internal/inventory"
	"github.com/fyrel/books/internal/ledger"
	"github.com/fyrel/books/internal/posting"
)

// TransactionInput carries the caller-supplied fields of a sale or purchase.
// The total is derived, never accepted.
type TransactionInput struct {
	Type      ledger.TransactionType
	ProductID uuid.UUID
	Quantity  int64
	UnitPrice decimal.Decimal
	ContactID uuid.UUID
	Date      time.Time
}

func (in TransactionInput) validate() error {
	switch in.Type {
	case ledger.TransactionSale, ledger.TransactionPurchase:
	default:
		return fmt.Errorf("%w: transaction type must be sale or purchase", errs.ErrInvalid)
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", errs.ErrInvalid)
	}
	if in.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price must not be negative", errs.ErrInvalid)
	}
	return nil
}

// AddTransaction records a sale or purchase: one balanced journal entry group
// plus the matching inventory adjustment. An unknown product is tolerated;
// the cost leg falls back to the estimation policy and inventory is a no-op.
func (s *Service) AddTransaction(ctx context.Context, in TransactionInput) (ledger.Transaction, error) {
	if err := in.validate(); err != nil {
		return ledger.Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := ledger.Transaction{
		ID:        uuid.New(),
		Type:      in.Type,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Total:     in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity)),
		ContactID: in.ContactID,
		Date:      orNow(in.Date),
	}
	s.postTransactionLocked(t)
	s.transactions = append(s.transactions, t)
	s.persist(ctx)
	return t, nil
}

// UpdateTransaction reworks a posted transaction: the old postings and
// inventory effect are reverted, then the new ones derived and applied.
func (s *Service) UpdateTransaction(ctx context.Context, id uuid.UUID, in TransactionInput) (ledger.Transaction, error) {
	if err := in.validate(); err != nil {
		return ledger.Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.transactionIndexLocked(id)
	if idx < 0 {
		return ledger.Transaction{}, errs.ErrNotFound
	}
	old := s.transactions[idx]
	s.journal.RemoveByRef(ledger.RefTransaction, old.ID)
	inventory.Revert(s.productByID[old.ProductID], old.Type, old.Quantity)

	t := ledger.Transaction{
		ID:        old.ID,
		Type:      in.Type,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Total:     in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity)),
		ContactID: in.ContactID,
		Date:      orNow(in.Date),
	}
	s.postTransactionLocked(t)
	s.transactions[idx] = t
	s.persist(ctx)
	return t, nil
}

// DeleteTransaction removes the transaction, its journal lines and its
// inventory effect.
func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.transactionIndexLocked(id)
	if idx < 0 {
		return errs.ErrNotFound
	}
	t := s.transactions[idx]
	inventory.Revert(s.productByID[t.ProductID], t.Type, t.Quantity)
	s.journal.RemoveByRef(ledger.RefTransaction, t.ID)
	s.transactions = append(s.transactions[:idx], s.transactions[idx+1:]...)
	s.persist(ctx)
	return nil
}

// Transactions lists the recorded transactions in insertion order.
func (s *Service) Transactions() []ledger.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// postTransactionLocked derives and appends the journal lines for t and
// applies the inventory movement. Caller holds the write lock.
func (s *Service) postTransactionLocked(t ledger.Transaction) {
	product := s.productByID[t.ProductID]
	productName := "Producto"
	if product != nil {
		productName = product.Name
	}
	contact := s.contactName(t.ContactID)

	var ev posting.Event
	if t.Type == ledger.TransactionSale {
		ev = posting.Sale{
			TransactionID: t.ID,
			Date:          t.Date,
			Total:         t.Total,
			Quantity:      t.Quantity,
			Product:       product,
			ProductName:   productName,
			ContactName:   contact,
		}
	} else {
		ev = posting.Purchase{
			TransactionID: t.ID,
			Date:          t.Date,
			Total:         t.Total,
			ProductName:   productName,
			ContactName:   contact,
		}
	}
	lines, err := posting.Post(ev)
	if err != nil {
		// Sale/Purchase events are balanced by construction; Post cannot fail.
		s.log.Error("posting failed", "transaction_id", t.ID, "err", err)
		return
	}
	s.journal.Append(lines...)
	inventory.Apply(product, t.Type, t.Quantity)
}

func (s *Service) transactionIndexLocked(id uuid.UUID) int {
	for i, t := range s.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
