// Package inventory maintains the running stock counters on product records.
// Adjustments are applied in lockstep with the journal postings that represent
// the physical movement, and reverted symmetrically when the originating
// event is edited or deleted.
package inventory

import "github.com/fyrel/books/internal/ledger"

// Apply records a stock movement on the product. Purchases increase stock and
// the inbound counter; sales decrease stock and increase the outbound counter.
// Stock is allowed to go negative; overselling is not blocked here.
func Apply(p *ledger.Product, t ledger.TransactionType, quantity int64) {
	if p == nil {
		return
	}
	switch t {
	case ledger.TransactionPurchase:
		p.Stock += quantity
		p.Inbound += quantity
	case ledger.TransactionSale:
		p.Stock -= quantity
		p.Outbound += quantity
	}
}

// Revert undoes a previously applied movement. Apply followed by Revert with
// the same arguments leaves the product unchanged.
func Revert(p *ledger.Product, t ledger.TransactionType, quantity int64) {
	if p == nil {
		return
	}
	switch t {
	case ledger.TransactionPurchase:
		p.Stock -= quantity
		p.Inbound -= quantity
	case ledger.TransactionSale:
		p.Stock += quantity
		p.Outbound -= quantity
	}
}
