// Package report derives read-side views from the journal: the general ledger
// and the financial statements. Views are recomputed from scratch on every
// query; nothing here caches or mutates engine state.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/coa"
	"github.com/fyrel/books/internal/ledger"
)

// LedgerLine is a journal line annotated with the running balance of its
// account at that point. The running figure is the raw prefix sum of
// debit-credit in insertion order, independent of the account's normal side;
// the account-level Balance applies the family sign rule.
type LedgerLine struct {
	ledger.JournalLine
	Running decimal.Decimal `json:"running"`
}

// LedgerAccount is the per-account roll-up of all journal lines touching it.
type LedgerAccount struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Family      ledger.Family   `json:"family"`
	Entries     []LedgerLine    `json:"entries"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// BuildLedger folds journal lines into per-account ledgers, sorted by account
// code. Lines whose account code is not registered are silently dropped: the
// chart allows deleting accounts that still have postings, and those postings
// simply fall out of the reports.
func BuildLedger(lines []ledger.JournalLine, registry *coa.Registry) []LedgerAccount {
	byCode := make(map[string]*LedgerAccount)
	var codes []string
	for _, ln := range lines {
		account, ok := registry.Lookup(ln.AccountCode)
		if !ok {
			continue
		}
		acc := byCode[ln.AccountCode]
		if acc == nil {
			acc = &LedgerAccount{
				AccountCode: account.Code,
				AccountName: account.Name,
				Family:      account.Family,
			}
			byCode[ln.AccountCode] = acc
			codes = append(codes, ln.AccountCode)
		}
		acc.TotalDebit = acc.TotalDebit.Add(ln.Debit)
		acc.TotalCredit = acc.TotalCredit.Add(ln.Credit)
		running := ln.Debit.Sub(ln.Credit)
		if n := len(acc.Entries); n > 0 {
			running = acc.Entries[n-1].Running.Add(running)
		}
		acc.Entries = append(acc.Entries, LedgerLine{JournalLine: ln, Running: running})
	}
	sort.Strings(codes)
	out := make([]LedgerAccount, 0, len(codes))
	for _, code := range codes {
		acc := byCode[code]
		if acc.Family.DebitNormal() {
			acc.Balance = acc.TotalDebit.Sub(acc.TotalCredit)
		} else {
			acc.Balance = acc.TotalCredit.Sub(acc.TotalDebit)
		}
		out = append(out, *acc)
	}
	return out
}
