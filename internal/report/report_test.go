package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrel/books/internal/coa"
	"github.com/fyrel/books/internal/ledger"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func seededRegistry(t *testing.T) *coa.Registry {
	t.Helper()
	r := coa.New()
	for _, a := range coa.DefaultChart() {
		_, err := r.Add(a)
		require.NoError(t, err)
	}
	return r
}

func jl(code string, debit, credit decimal.Decimal, date time.Time) ledger.JournalLine {
	return ledger.JournalLine{
		ID:           uuid.New(),
		EntryGroupID: uuid.New(),
		Date:         date,
		AccountCode:  code,
		Debit:        debit,
		Credit:       credit,
	}
}

func findAccount(t *testing.T, accounts []LedgerAccount, code string) LedgerAccount {
	t.Helper()
	for _, a := range accounts {
		if a.AccountCode == code {
			return a
		}
	}
	t.Fatalf("account %s not in ledger", code)
	return LedgerAccount{}
}

func TestBuildLedger_NormalBalances(t *testing.T) {
	reg := seededRegistry(t)
	now := time.Now()
	// A 100 sale with a 60 cost leg.
	lines := []ledger.JournalLine{
		jl(ledger.CodeReceivable, dec(100), decimal.Zero, now),
		jl(ledger.CodeSales, decimal.Zero, dec(100), now),
		jl(ledger.CodeCostOfSales, dec(60), decimal.Zero, now),
		jl(ledger.CodeInventory, decimal.Zero, dec(60), now),
	}
	accounts := BuildLedger(lines, reg)
	require.Len(t, accounts, 4)

	// Sorted by account code.
	assert.Equal(t, ledger.CodeReceivable, accounts[0].AccountCode)
	assert.Equal(t, ledger.CodeInventory, accounts[1].AccountCode)
	assert.Equal(t, ledger.CodeSales, accounts[2].AccountCode)
	assert.Equal(t, ledger.CodeCostOfSales, accounts[3].AccountCode)

	// Debit-normal: asset and expense balances are debit-credit.
	assert.True(t, findAccount(t, accounts, ledger.CodeReceivable).Balance.Equal(dec(100)))
	assert.True(t, findAccount(t, accounts, ledger.CodeCostOfSales).Balance.Equal(dec(60)))
	assert.True(t, findAccount(t, accounts, ledger.CodeInventory).Balance.Equal(dec(-60)))
	// Credit-normal: revenue balance is credit-debit.
	assert.True(t, findAccount(t, accounts, ledger.CodeSales).Balance.Equal(dec(100)))

	sales := findAccount(t, accounts, ledger.CodeSales)
	assert.Equal(t, "Ventas", sales.AccountName)
	assert.Equal(t, ledger.FamilyRevenue, sales.Family)
}

func TestBuildLedger_RunningIsRawPrefixSum(t *testing.T) {
	reg := seededRegistry(t)
	now := time.Now()
	lines := []ledger.JournalLine{
		jl(ledger.CodeSales, decimal.Zero, dec(100), now),
		jl(ledger.CodeSales, decimal.Zero, dec(50), now),
		jl(ledger.CodeSales, dec(30), decimal.Zero, now),
	}
	acc := findAccount(t, BuildLedger(lines, reg), ledger.CodeSales)
	require.Len(t, acc.Entries, 3)
	// Running is debit-credit even for a credit-normal account.
	assert.True(t, acc.Entries[0].Running.Equal(dec(-100)))
	assert.True(t, acc.Entries[1].Running.Equal(dec(-150)))
	assert.True(t, acc.Entries[2].Running.Equal(dec(-120)))
	assert.True(t, acc.Balance.Equal(dec(120)))
}

func TestBuildLedger_DropsUnregisteredCodes(t *testing.T) {
	reg := seededRegistry(t)
	now := time.Now()
	lines := []ledger.JournalLine{
		jl(ledger.CodeCash, dec(100), decimal.Zero, now),
		jl("8888", decimal.Zero, dec(100), now),
	}
	accounts := BuildLedger(lines, reg)
	require.Len(t, accounts, 1)
	assert.Equal(t, ledger.CodeCash, accounts[0].AccountCode)
}

func TestBuildLedger_Empty(t *testing.T) {
	assert.Empty(t, BuildLedger(nil, seededRegistry(t)))
}

func TestCompose_Identities(t *testing.T) {
	reg := seededRegistry(t)
	now := time.Now()
	// Capital contribution, a sale on credit, and a cash expense.
	lines := []ledger.JournalLine{
		jl(ledger.CodeBank, dec(1000), decimal.Zero, now),
		jl(ledger.CodeCapital, decimal.Zero, dec(1000), now),
		jl(ledger.CodeReceivable, dec(100), decimal.Zero, now),
		jl(ledger.CodeSales, decimal.Zero, dec(100), now),
		jl(ledger.CodeCostOfSales, dec(60), decimal.Zero, now),
		jl(ledger.CodeInventory, decimal.Zero, dec(60), now),
		jl(ledger.CodeAdminExp, dec(40), decimal.Zero, now),
		jl(ledger.CodeCash, decimal.Zero, dec(40), now),
	}
	st := Compose(BuildLedger(lines, reg))

	assert.True(t, st.IncomeStatement.NetIncome.Equal(dec(0)),
		"revenue 100 - cost 60 - expense 40")
	assert.True(t, st.IncomeStatement.TotalRevenues.Equal(dec(100)))
	assert.True(t, st.IncomeStatement.TotalExpenses.Equal(dec(100)))

	// Assets = 1000 (bank) + 100 (receivable) - 60 (inventory) - 40 (cash).
	assert.True(t, st.BalanceSheet.TotalAssets.Equal(dec(1000)))
	// Equity folds net income in, so the accounting equation holds.
	lhs := st.BalanceSheet.TotalAssets
	rhs := st.BalanceSheet.TotalLiabilities.Add(st.BalanceSheet.TotalEquity)
	assert.True(t, lhs.Equal(rhs), "assets %s != liabilities+equity %s", lhs, rhs)
}

func TestCompose_CashFlowMergedByDate(t *testing.T) {
	reg := seededRegistry(t)
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }
	lines := []ledger.JournalLine{
		jl(ledger.CodeBank, dec(500), decimal.Zero, day(3)),
		jl(ledger.CodeCapital, decimal.Zero, dec(500), day(3)),
		jl(ledger.CodeCash, dec(200), decimal.Zero, day(1)),
		jl(ledger.CodeSales, decimal.Zero, dec(200), day(1)),
		jl(ledger.CodeCash, decimal.Zero, dec(80), day(2)),
		jl(ledger.CodeAdminExp, dec(80), decimal.Zero, day(2)),
	}
	cf := Compose(BuildLedger(lines, reg)).CashFlow
	require.Len(t, cf.Entries, 3, "only cash and bank movements")
	assert.Equal(t, day(1), cf.Entries[0].Date)
	assert.Equal(t, day(2), cf.Entries[1].Date)
	assert.Equal(t, day(3), cf.Entries[2].Date)
	// 200 - 80 + 500.
	assert.True(t, cf.NetCashFlow.Equal(dec(620)), "got %s", cf.NetCashFlow)
}
