package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/ledger"
)

// BalanceSheet partitions the ledger into assets, liabilities and equity.
// TotalEquity folds the period's net income into the equity accounts so the
// sheet balances without a closing entry.
type BalanceSheet struct {
	Assets           []LedgerAccount `json:"assets"`
	Liabilities      []LedgerAccount `json:"liabilities"`
	Equity           []LedgerAccount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
}

// IncomeStatement partitions the ledger into revenues and expenses.
type IncomeStatement struct {
	Revenues      []LedgerAccount `json:"revenues"`
	Expenses      []LedgerAccount `json:"expenses"`
	TotalRevenues decimal.Decimal `json:"total_revenues"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
}

// CashFlow merges the movements of the cash and bank accounts in date order.
type CashFlow struct {
	Entries     []LedgerLine    `json:"entries"`
	NetCashFlow decimal.Decimal `json:"net_cash_flow"`
}

// Statements bundles the derived financial statement views.
type Statements struct {
	BalanceSheet    BalanceSheet    `json:"balance_sheet"`
	IncomeStatement IncomeStatement `json:"income_statement"`
	CashFlow        CashFlow        `json:"cash_flow"`
}

// Compose builds the financial statements from a general ledger.
func Compose(accounts []LedgerAccount) Statements {
	var bs BalanceSheet
	var is IncomeStatement
	var cf CashFlow
	for _, acc := range accounts {
		switch acc.Family {
		case ledger.FamilyAsset:
			bs.Assets = append(bs.Assets, acc)
			bs.TotalAssets = bs.TotalAssets.Add(acc.Balance)
		case ledger.FamilyLiability:
			bs.Liabilities = append(bs.Liabilities, acc)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(acc.Balance)
		case ledger.FamilyEquity:
			bs.Equity = append(bs.Equity, acc)
			bs.TotalEquity = bs.TotalEquity.Add(acc.Balance)
		case ledger.FamilyRevenue:
			is.Revenues = append(is.Revenues, acc)
			is.TotalRevenues = is.TotalRevenues.Add(acc.Balance)
		case ledger.FamilyExpense:
			is.Expenses = append(is.Expenses, acc)
			is.TotalExpenses = is.TotalExpenses.Add(acc.Balance)
		}
		if acc.AccountCode == ledger.CodeCash || acc.AccountCode == ledger.CodeBank {
			cf.Entries = append(cf.Entries, acc.Entries...)
			cf.NetCashFlow = cf.NetCashFlow.Add(acc.Balance)
		}
	}
	is.NetIncome = is.TotalRevenues.Sub(is.TotalExpenses)
	bs.TotalEquity = bs.TotalEquity.Add(is.NetIncome)
	sort.SliceStable(cf.Entries, func(i, j int) bool {
		return cf.Entries[i].Date.Before(cf.Entries[j].Date)
	})
	return Statements{BalanceSheet: bs, IncomeStatement: is, CashFlow: cf}
}
