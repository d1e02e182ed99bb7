package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fyrel/books/internal/ledger"
)

func TestApply(t *testing.T) {
	p := &ledger.Product{InitialStock: 10, Stock: 10}

	Apply(p, ledger.TransactionPurchase, 5)
	assert.Equal(t, int64(15), p.Stock)
	assert.Equal(t, int64(5), p.Inbound)

	Apply(p, ledger.TransactionSale, 3)
	assert.Equal(t, int64(12), p.Stock)
	assert.Equal(t, int64(3), p.Outbound)

	assert.Equal(t, p.InitialStock+p.Inbound-p.Outbound, p.Stock)
}

func TestApplyRevert_Symmetry(t *testing.T) {
	p := &ledger.Product{InitialStock: 10, Stock: 10}
	before := *p

	Apply(p, ledger.TransactionSale, 4)
	Revert(p, ledger.TransactionSale, 4)
	assert.Equal(t, before, *p)

	Apply(p, ledger.TransactionPurchase, 7)
	Revert(p, ledger.TransactionPurchase, 7)
	assert.Equal(t, before, *p)
}

func TestApply_NegativeStockAllowed(t *testing.T) {
	p := &ledger.Product{InitialStock: 2, Stock: 2}
	Apply(p, ledger.TransactionSale, 5)
	assert.Equal(t, int64(-3), p.Stock, "overselling is tolerated")
	assert.Equal(t, p.InitialStock+p.Inbound-p.Outbound, p.Stock)
}

func TestApply_NilProduct(t *testing.T) {
	assert.NotPanics(t, func() {
		Apply(nil, ledger.TransactionSale, 1)
		Revert(nil, ledger.TransactionPurchase, 1)
	})
}
