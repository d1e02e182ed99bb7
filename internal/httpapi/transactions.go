package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/books"
	"github.com/fyrel/books/internal/ledger"
)

type transactionRequest struct {
	Type      string          `json:"type" validate:"required,oneof=sale purchase"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ContactID uuid.UUID       `json:"contact_id"`
	Date      time.Time       `json:"date"`
}

func (req transactionRequest) input() books.TransactionInput {
	return books.TransactionInput{
		Type:      ledger.TransactionType(req.Type),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		ContactID: req.ContactID,
		Date:      req.Date,
	}
}

func (s *Server) postTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !s.decode(w, r, &req) {
		return
	}
	created, err := s.svc.AddTransaction(r.Context(), req.input())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, created)
}

func (s *Server) putTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req transactionRequest
	if !s.decode(w, r, &req) {
		return
	}
	updated, err := s.svc.UpdateTransaction(r.Context(), id, req.input())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteTransaction(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.svc.Transactions())
}
