// Package posting derives balanced journal line groups from business events.
// Post is pure: it reads the event, never mutates shared state, and every
// group it returns satisfies sum(debits) == sum(credits) by construction.
// Manual entries are the one kind balanced by the caller and verified here.
package posting

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/errs"
	"github.com/fyrel/books/internal/ledger"
)

// fallbackCostRatio estimates cost of sale as 60% of the sale total when the
// product record is missing. Deliberate estimation policy, not a default to tune.
var fallbackCostRatio = decimal.NewFromFloat(0.6)

// Event is a business event the engine knows how to post. The set of variants
// is closed; a new event kind means a new posting rule.
type Event interface {
	refKind() ledger.RefKind
}

// Sale is a single-product sale transaction. Product may be nil, in which
// case the cost leg is estimated from the total.
type Sale struct {
	TransactionID uuid.UUID
	Date          time.Time
	Total         decimal.Decimal
	Quantity      int64
	Product       *ledger.Product
	ProductName   string
	ContactName   string
}

// Purchase is a single-product purchase transaction. Purchases carry no cost
// of sale leg; the value lands in inventory until sold.
type Purchase struct {
	TransactionID uuid.UUID
	Date          time.Time
	Total         decimal.Decimal
	ProductName   string
	ContactName   string
}

// InvoiceIssued posts a customer invoice. Each invoice line produces its own
// four-leg group, mirroring a sale of that line's product.
type InvoiceIssued struct {
	Invoice     ledger.Invoice
	Products    map[uuid.UUID]*ledger.Product
	ContactName string
}

// Manual carries caller-specified lines verbatim.
type Manual struct {
	EntryID     uuid.UUID
	Date        time.Time
	Description string
	Lines       []ledger.ManualLine
}

// PaymentMade settles payables from a cash or bank account.
type PaymentMade struct {
	Payment     ledger.Payment
	ContactName string
	AccountName string
}

// CollectionReceived settles receivables into a cash or bank account.
type CollectionReceived struct {
	Collection  ledger.Collection
	ContactName string
	AccountName string
}

// SimpleIncome records income outside the sales flow: debit the caller's
// account, credit generic revenue.
type SimpleIncome struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	AccountCode string
	ContactName string
}

// SimpleExpense records an expense outside the purchase flow: debit generic
// expenses, credit the caller's account.
type SimpleExpense struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	AccountCode string
	ContactName string
}

func (Sale) refKind() ledger.RefKind               { return ledger.RefTransaction }
func (Purchase) refKind() ledger.RefKind           { return ledger.RefTransaction }
func (InvoiceIssued) refKind() ledger.RefKind      { return ledger.RefInvoice }
func (Manual) refKind() ledger.RefKind             { return ledger.RefManual }
func (PaymentMade) refKind() ledger.RefKind        { return ledger.RefPayment }
func (CollectionReceived) refKind() ledger.RefKind { return ledger.RefCollection }
func (SimpleIncome) refKind() ledger.RefKind       { return ledger.RefIncome }
func (SimpleExpense) refKind() ledger.RefKind      { return ledger.RefExpense }

// Post translates an event into journal lines. The returned lines are grouped
// by EntryGroupID and always balance within each group.
func Post(ev Event) ([]ledger.JournalLine, error) {
	switch e := ev.(type) {
	case Sale:
		return postSale(e), nil
	case Purchase:
		return postPurchase(e), nil
	case InvoiceIssued:
		return postInvoice(e), nil
	case Manual:
		return postManual(e)
	case PaymentMade:
		return postPayment(e), nil
	case CollectionReceived:
		return postCollection(e), nil
	case SimpleIncome:
		return postIncome(e), nil
	case SimpleExpense:
		return postExpense(e), nil
	default:
		return nil, fmt.Errorf("%w: unsupported event %T", errs.ErrInvalid, ev)
	}
}

// CostOfSale returns the cost leg amount for a sold quantity: unit cost times
// quantity, or the fallback ratio of the sale total when the product is unknown.
func CostOfSale(p *ledger.Product, quantity int64, total decimal.Decimal) decimal.Decimal {
	if p == nil {
		return total.Mul(fallbackCostRatio)
	}
	return p.Cost.Mul(decimal.NewFromInt(quantity))
}

func postSale(e Sale) []ledger.JournalLine {
	ref := ledger.Provenance{Kind: ledger.RefTransaction, ID: e.TransactionID}
	cost := CostOfSale(e.Product, e.Quantity, e.Total)
	group := uuid.New()
	return []ledger.JournalLine{
		debit(group, e.Date, ledger.CodeReceivable, "Venta a "+orDefault(e.ContactName, "Cliente")+" - "+e.ProductName, e.Total, ref),
		credit(group, e.Date, ledger.CodeSales, "Ingreso por venta - "+e.ProductName, e.Total, ref),
		debit(group, e.Date, ledger.CodeCostOfSales, "Costo venta de "+e.ProductName, cost, ref),
		credit(group, e.Date, ledger.CodeInventory, "Salida inv. "+e.ProductName, cost, ref),
	}
}

func postPurchase(e Purchase) []ledger.JournalLine {
	ref := ledger.Provenance{Kind: ledger.RefTransaction, ID: e.TransactionID}
	group := uuid.New()
	return []ledger.JournalLine{
		debit(group, e.Date, ledger.CodeInventory, "Compra de "+e.ProductName+" a "+orDefault(e.ContactName, "Proveedor"), e.Total, ref),
		credit(group, e.Date, ledger.CodePayable, "Cuenta por pagar - "+e.ProductName, e.Total, ref),
	}
}

func postInvoice(e InvoiceIssued) []ledger.JournalLine {
	inv := e.Invoice
	ref := ledger.Provenance{Kind: ledger.RefInvoice, ID: inv.ID}
	contact := orDefault(e.ContactName, "Cliente")
	out := make([]ledger.JournalLine, 0, len(inv.Lines)*4)
	for _, line := range inv.Lines {
		product := e.Products[line.ProductID]
		name := "Producto"
		if product != nil {
			name = product.Name
		}
		cost := CostOfSale(product, line.Quantity, line.Total)
		group := uuid.New()
		out = append(out,
			debit(group, inv.Date, ledger.CodeReceivable, "Factura "+inv.ID.String()+" a "+contact+" - "+name, line.Total, ref),
			credit(group, inv.Date, ledger.CodeSales, "Venta "+name, line.Total, ref),
			debit(group, inv.Date, ledger.CodeCostOfSales, "Costo Venta "+name, cost, ref),
			credit(group, inv.Date, ledger.CodeInventory, "Salida Inv. "+name, cost, ref),
		)
	}
	return out
}

func postManual(e Manual) ([]ledger.JournalLine, error) {
	var sumDebit, sumCredit decimal.Decimal
	for _, ln := range e.Lines {
		if ln.Debit.IsNegative() || ln.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line amounts must not be negative", errs.ErrInvalid)
		}
		sumDebit = sumDebit.Add(ln.Debit)
		sumCredit = sumCredit.Add(ln.Credit)
	}
	if !sumDebit.Equal(sumCredit) || sumDebit.IsZero() {
		return nil, fmt.Errorf("%w: debits %s != credits %s", errs.ErrUnbalancedEntry, sumDebit, sumCredit)
	}
	ref := ledger.Provenance{Kind: ledger.RefManual, ID: e.EntryID}
	group := uuid.New()
	out := make([]ledger.JournalLine, 0, len(e.Lines))
	for _, ln := range e.Lines {
		desc := ln.Description
		if desc == "" {
			desc = e.Description
		}
		out = append(out, ledger.JournalLine{
			ID:           uuid.New(),
			EntryGroupID: group,
			Date:         e.Date,
			AccountCode:  ln.AccountCode,
			Description:  desc,
			Debit:        ln.Debit,
			Credit:       ln.Credit,
			Ref:          ref,
		})
	}
	return out, nil
}

func postPayment(e PaymentMade) []ledger.JournalLine {
	p := e.Payment
	ref := ledger.Provenance{Kind: ledger.RefPayment, ID: p.ID}
	group := uuid.New()
	return []ledger.JournalLine{
		debit(group, p.Date, ledger.CodePayable, "Pago a "+orDefault(e.ContactName, "Proveedor"), p.Amount, ref),
		credit(group, p.Date, p.PaymentAccountCode, "Salida de "+orDefault(e.AccountName, "Efectivo/Banco"), p.Amount, ref),
	}
}

func postCollection(e CollectionReceived) []ledger.JournalLine {
	c := e.Collection
	ref := ledger.Provenance{Kind: ledger.RefCollection, ID: c.ID}
	group := uuid.New()
	return []ledger.JournalLine{
		debit(group, c.Date, c.PaymentAccountCode, "Ingreso de "+orDefault(e.AccountName, "Efectivo/Banco"), c.Amount, ref),
		credit(group, c.Date, ledger.CodeReceivable, "Cobro a "+orDefault(e.ContactName, "Cliente"), c.Amount, ref),
	}
}

func postIncome(e SimpleIncome) []ledger.JournalLine {
	ref := ledger.Provenance{Kind: ledger.RefIncome, ID: e.ID}
	group := uuid.New()
	return []ledger.JournalLine{
		debit(group, e.Date, e.AccountCode, "Ingreso de "+orDefault(e.ContactName, "Cliente")+" - "+e.Description, e.Amount, ref),
		credit(group, e.Date, ledger.CodeOtherIncome, "Ingreso por "+e.Description, e.Amount, ref),
	}
}

func postExpense(e SimpleExpense) []ledger.JournalLine {
	ref := ledger.Provenance{Kind: ledger.RefExpense, ID: e.ID}
	group := uuid.New()
	return []ledger.JournalLine{
		debit(group, e.Date, ledger.CodeAdminExp, "Gasto: "+e.Description+" a "+orDefault(e.ContactName, "Proveedor"), e.Amount, ref),
		credit(group, e.Date, e.AccountCode, "Pago gasto "+e.Description, e.Amount, ref),
	}
}

func debit(group uuid.UUID, date time.Time, code, desc string, amount decimal.Decimal, ref ledger.Provenance) ledger.JournalLine {
	return ledger.JournalLine{ID: uuid.New(), EntryGroupID: group, Date: date, AccountCode: code, Description: desc, Debit: amount, Ref: ref}
}

func credit(group uuid.UUID, date time.Time, code, desc string, amount decimal.Decimal, ref ledger.Provenance) ledger.JournalLine {
	return ledger.JournalLine{ID: uuid.New(), EntryGroupID: group, Date: date, AccountCode: code, Description: desc, Credit: amount, Ref: ref}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
