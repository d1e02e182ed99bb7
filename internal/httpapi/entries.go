package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/ledger"
)

type manualLineRequest struct {
	AccountCode string          `json:"account_code" validate:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type manualEntryRequest struct {
	Date        time.Time           `json:"date"`
	Description string              `json:"description"`
	Lines       []manualLineRequest `json:"lines" validate:"required,min=1,dive"`
}

func (s *Server) postManualEntry(w http.ResponseWriter, r *http.Request) {
	var req manualEntryRequest
	if !s.decode(w, r, &req) {
		return
	}
	lines := make([]ledger.ManualLine, 0, len(req.Lines))
	for _, ln := range req.Lines {
		lines = append(lines, ledger.ManualLine{
			AccountCode: ln.AccountCode,
			Description: ln.Description,
			Debit:       ln.Debit,
			Credit:      ln.Credit,
		})
	}
	created, err := s.svc.AddManualEntry(r.Context(), req.Date, req.Description, lines)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, created)
}

// listJournal returns the journal book: every posted line in posting order.
func (s *Server) listJournal(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.svc.JournalLines())
}

type simpleEntryRequest struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	ContactID   uuid.UUID       `json:"contact_id"`
	AccountCode string          `json:"account_code" validate:"required"`
}

func (s *Server) postIncome(w http.ResponseWriter, r *http.Request) {
	var req simpleEntryRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.svc.AddIncome(r.Context(), req.Date, req.Description, req.Amount, req.ContactID, req.AccountCode); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) postExpense(w http.ResponseWriter, r *http.Request) {
	var req simpleEntryRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.svc.AddExpense(r.Context(), req.Date, req.Description, req.Amount, req.ContactID, req.AccountCode); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
