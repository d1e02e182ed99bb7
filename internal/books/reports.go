package books

import "github.com/fyrel/books/internal/report"

// GeneralLedger recomputes the per-account ledger from the full journal.
// Derivation is on demand; no state is cached between calls.
func (s *Service) GeneralLedger() []report.LedgerAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.BuildLedger(s.journal.All(), s.registry)
}

// FinancialStatements recomputes the balance sheet, income statement and
// cash flow views from the general ledger.
func (s *Service) FinancialStatements() report.Statements {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.Compose(report.BuildLedger(s.journal.All(), s.registry))
}
