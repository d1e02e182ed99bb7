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

// taxRate is the fixed flat VAT applied to invoice subtotals.
var taxRate = decimal.NewFromFloat(0.12)

// InvoiceLineInput is one caller-supplied invoice position.
type InvoiceLineInput struct {
	ProductID uuid.UUID
	Quantity  int64
	UnitPrice decimal.Decimal
}

// InvoiceInput carries the caller-supplied fields of an invoice. Subtotal,
// tax and total are derived from the lines.
type InvoiceInput struct {
	ContactID uuid.UUID
	Date      time.Time
	DueDate   time.Time
	Lines     []InvoiceLineInput
}

func (in InvoiceInput) validate() error {
	if len(in.Lines) == 0 {
		return fmt.Errorf("%w: invoice needs at least one line", errs.ErrInvalid)
	}
	for i, ln := range in.Lines {
		if ln.Quantity <= 0 {
			return fmt.Errorf("%w: line %d quantity must be positive", errs.ErrInvalid, i)
		}
		if ln.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: line %d unit price must not be negative", errs.ErrInvalid, i)
		}
	}
	return nil
}

func (in InvoiceInput) build(id uuid.UUID) ledger.Invoice {
	inv := ledger.Invoice{
		ID:        id,
		ContactID: in.ContactID,
		Date:      orNow(in.Date),
		DueDate:   in.DueDate,
		Status:    ledger.InvoicePending,
	}
	for _, ln := range in.Lines {
		total := ln.UnitPrice.Mul(decimal.NewFromInt(ln.Quantity))
		inv.Lines = append(inv.Lines, ledger.InvoiceLine{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice,
			Total:     total,
		})
		inv.Subtotal = inv.Subtotal.Add(total)
	}
	inv.Tax = inv.Subtotal.Mul(taxRate)
	inv.Total = inv.Subtotal.Add(inv.Tax)
	return inv
}

// AddInvoice records a customer invoice. Every line posts its own four-leg
// sale group and moves its product's stock out.
func (s *Service) AddInvoice(ctx context.Context, in InvoiceInput) (ledger.Invoice, error) {
	if err := in.validate(); err != nil {
		return ledger.Invoice{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := in.build(uuid.New())
	s.postInvoiceLocked(inv)
	s.invoices = append(s.invoices, inv)
	s.persist(ctx)
	return inv, nil
}

// UpdateInvoice reworks an invoice as delete-then-recreate of its derived
// effects: old postings and stock movements are reverted, new ones applied.
// The status of the stored invoice is preserved.
func (s *Service) UpdateInvoice(ctx context.Context, id uuid.UUID, in InvoiceInput) (ledger.Invoice, error) {
	if err := in.validate(); err != nil {
		return ledger.Invoice{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.invoiceIndexLocked(id)
	if idx < 0 {
		return ledger.Invoice{}, errs.ErrNotFound
	}
	old := s.invoices[idx]
	s.journal.RemoveByRef(ledger.RefInvoice, old.ID)
	s.revertInvoiceInventoryLocked(old)

	inv := in.build(old.ID)
	inv.Status = old.Status
	s.postInvoiceLocked(inv)
	s.invoices[idx] = inv
	s.persist(ctx)
	return inv, nil
}

// DeleteInvoice removes the invoice, its journal lines and its stock movements.
func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.invoiceIndexLocked(id)
	if idx < 0 {
		return errs.ErrNotFound
	}
	inv := s.invoices[idx]
	s.journal.RemoveByRef(ledger.RefInvoice, inv.ID)
	s.revertInvoiceInventoryLocked(inv)
	s.invoices = append(s.invoices[:idx], s.invoices[idx+1:]...)
	s.persist(ctx)
	return nil
}

// MarkOverdueInvoices flips pending invoices past their due date to overdue
// and returns how many changed.
func (s *Service) MarkOverdueInvoices(ctx context.Context, asOf time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i := range s.invoices {
		inv := &s.invoices[i]
		if inv.Status == ledger.InvoicePending && !inv.DueDate.IsZero() && inv.DueDate.Before(asOf) {
			inv.Status = ledger.InvoiceOverdue
			changed++
		}
	}
	if changed > 0 {
		s.persist(ctx)
	}
	return changed
}

// Invoices lists the recorded invoices in insertion order.
func (s *Service) Invoices() []ledger.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

func (s *Service) postInvoiceLocked(inv ledger.Invoice) {
	products := make(map[uuid.UUID]*ledger.Product, len(inv.Lines))
	for _, ln := range inv.Lines {
		if p := s.productByID[ln.ProductID]; p != nil {
			products[ln.ProductID] = p
		}
	}
	lines, err := posting.Post(posting.InvoiceIssued{
		Invoice:     inv,
		Products:    products,
		ContactName: s.contactName(inv.ContactID),
	})
	if err != nil {
		s.log.Error("posting failed", "invoice_id", inv.ID, "err", err)
		return
	}
	s.journal.Append(lines...)
	for _, ln := range inv.Lines {
		inventory.Apply(s.productByID[ln.ProductID], ledger.TransactionSale, ln.Quantity)
	}
}

func (s *Service) revertInvoiceInventoryLocked(inv ledger.Invoice) {
	for _, ln := range inv.Lines {
		inventory.Revert(s.productByID[ln.ProductID], ledger.TransactionSale, ln.Quantity)
	}
}

func (s *Service) invoiceIndexLocked(id uuid.UUID) int {
	for i, inv := range s.invoices {
		if inv.ID == id {
			return i
		}
	}
	return -1
}
