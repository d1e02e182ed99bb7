package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Family enumerates the broad classification of an account, derived from the
// leading digit of its code and fixed at creation time.
type Family string

const (
	// FamilyAsset increases on the debit side and holds resources owned by the business.
	FamilyAsset Family = "asset"
	// FamilyLiability increases on the credit side and tracks obligations.
	FamilyLiability Family = "liability"
	// FamilyEquity captures the owner's residual interest in the business.
	FamilyEquity Family = "equity"
	// FamilyRevenue represents inflows that increase equity.
	FamilyRevenue Family = "revenue"
	// FamilyExpense represents outflows that decrease equity.
	FamilyExpense Family = "expense"
	// FamilyUnknown is returned for codes outside the 1..5 numbering plan.
	FamilyUnknown Family = "unknown"
)

// FamilyOf maps an account code to its family by leading digit:
// 1=asset, 2=liability, 3=equity, 4=revenue, 5=expense.
func FamilyOf(code string) Family {
	if code == "" {
		return FamilyUnknown
	}
	switch code[0] {
	case '1':
		return FamilyAsset
	case '2':
		return FamilyLiability
	case '3':
		return FamilyEquity
	case '4':
		return FamilyRevenue
	case '5':
		return FamilyExpense
	default:
		return FamilyUnknown
	}
}

// DebitNormal reports whether balances for this family are computed as
// debit-credit (assets and expenses) rather than credit-debit.
func (f Family) DebitNormal() bool {
	return f == FamilyAsset || f == FamilyExpense
}

// AccountType distinguishes structural header accounts from postable detail accounts.
type AccountType string

const (
	// AccountHeader groups detail accounts in the chart and never receives postings.
	AccountHeader AccountType = "header"
	// AccountDetail is a postable leaf account.
	AccountDetail AccountType = "detail"
)

// Account is one row of the chart of accounts. Code is a hierarchical numeric
// string unique within the registry; Family is computed once from the code.
type Account struct {
	Code   string      `json:"code"`
	Name   string      `json:"name"`
	Type   AccountType `json:"type"`
	Family Family      `json:"family"`
}

// Fixed account codes the posting rules are written against. They match the
// seeded chart and are not configurable.
const (
	CodeCash        = "1101" // Caja
	CodeBank        = "1102" // Bancos
	CodeReceivable  = "1103" // Cuentas por Cobrar Clientes
	CodeInventory   = "1201" // Inventario de Mercancías
	CodePayable     = "2101" // Cuentas por Pagar Proveedores
	CodeCapital     = "3101" // Capital Social
	CodeSales       = "4101" // Ventas
	CodeOtherIncome = "4102" // Ingresos por Servicios
	CodeCostOfSales = "5101" // Costo de Ventas
	CodeAdminExp    = "5103" // Gastos de Administración
)

// RefKind identifies the business event a journal line was derived from.
type RefKind string

const (
	RefTransaction RefKind = "transaction"
	RefInvoice     RefKind = "invoice"
	RefManual      RefKind = "manual"
	RefPayment     RefKind = "payment"
	RefCollection  RefKind = "collection"
	RefIncome      RefKind = "income"
	RefExpense     RefKind = "expense"
)

// Provenance ties a journal line back to the event that produced it, so that
// deleting or reworking the event can remove its lines in bulk.
type Provenance struct {
	Kind RefKind   `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// JournalLine is a single debit or credit against an account. Lines sharing
// an EntryGroupID form one balanced journal entry.
type JournalLine struct {
	ID           uuid.UUID       `json:"id"`
	EntryGroupID uuid.UUID       `json:"entry_group_id"`
	Date         time.Time       `json:"date"`
	AccountCode  string          `json:"account_code"`
	Description  string          `json:"description"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Ref          Provenance      `json:"ref"`
}

// TransactionType is the direction of a simple stock transaction.
type TransactionType string

const (
	TransactionSale     TransactionType = "sale"
	TransactionPurchase TransactionType = "purchase"
)

// Transaction records a one-product sale or purchase. It produces exactly one
// journal entry group and one inventory adjustment.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	Type      TransactionType `json:"type"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	ContactID uuid.UUID       `json:"contact_id"`
	Date      time.Time       `json:"date"`
}

// Product tracks a stock item. Invariant: Stock = InitialStock + Inbound - Outbound.
type Product struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	InitialStock int64           `json:"initial_stock"`
	Stock        int64           `json:"stock"`
	// Inbound is the cumulative purchased quantity (entradas).
	Inbound int64 `json:"inbound"`
	// Outbound is the cumulative sold quantity (salidas).
	Outbound int64 `json:"outbound"`
}

// InvoiceStatus is the collection state of an invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// InvoiceLine is one product position on an invoice. Each line posts its own
// four-leg sale entry and its own inventory movement.
type InvoiceLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Invoice is a multi-line customer sale with a flat VAT on the subtotal.
// Status moves pending -> paid via a Collection referencing the invoice.
type Invoice struct {
	ID        uuid.UUID       `json:"id"`
	ContactID uuid.UUID       `json:"contact_id"`
	Date      time.Time       `json:"date"`
	DueDate   time.Time       `json:"due_date"`
	Lines     []InvoiceLine   `json:"lines"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	Status    InvoiceStatus   `json:"status"`
}

// ManualLine is a caller-specified debit/credit against an account code.
type ManualLine struct {
	AccountCode string          `json:"account_code"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// ManualEntry is a free-form journal entry; accepted only when its lines
// balance and are nonzero.
type ManualEntry struct {
	ID          uuid.UUID    `json:"id"`
	Date        time.Time    `json:"date"`
	Description string       `json:"description"`
	Lines       []ManualLine `json:"lines"`
}

// Payment settles payables against a cash or bank account.
type Payment struct {
	ID                 uuid.UUID       `json:"id"`
	Date               time.Time       `json:"date"`
	ContactID          uuid.UUID       `json:"contact_id"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentAccountCode string          `json:"payment_account_code"`
	Description        string          `json:"description"`
}

// Collection settles receivables against a cash or bank account. When
// InvoiceID is set, the referenced invoice is marked paid.
type Collection struct {
	ID                 uuid.UUID       `json:"id"`
	Date               time.Time       `json:"date"`
	ContactID          uuid.UUID       `json:"contact_id"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentAccountCode string          `json:"payment_account_code"`
	Description        string          `json:"description"`
	InvoiceID          uuid.UUID       `json:"invoice_id,omitempty"`
}

// ContactKind distinguishes customers from suppliers.
type ContactKind string

const (
	ContactClient   ContactKind = "client"
	ContactSupplier ContactKind = "supplier"
)

// Contact is a customer or supplier referenced by transactions and documents.
type Contact struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Kind  ContactKind `json:"kind"`
	Email string      `json:"email,omitempty"`
	Phone string      `json:"phone,omitempty"`
}
