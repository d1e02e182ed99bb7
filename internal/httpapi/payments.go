package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/books"
)

type paymentRequest struct {
	Date               time.Time       `json:"date"`
	ContactID          uuid.UUID       `json:"contact_id"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentAccountCode string          `json:"payment_account_code" validate:"required"`
	Description        string          `json:"description"`
}

type collectionRequest struct {
	Date               time.Time       `json:"date"`
	ContactID          uuid.UUID       `json:"contact_id"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentAccountCode string          `json:"payment_account_code" validate:"required"`
	Description        string          `json:"description"`
	InvoiceID          uuid.UUID       `json:"invoice_id"`
}

func (s *Server) postPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !s.decode(w, r, &req) {
		return
	}
	created, err := s.svc.AddPayment(r.Context(), books.PaymentInput{
		Date:               req.Date,
		ContactID:          req.ContactID,
		Amount:             req.Amount,
		PaymentAccountCode: req.PaymentAccountCode,
		Description:        req.Description,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, created)
}

func (s *Server) postCollection(w http.ResponseWriter, r *http.Request) {
	var req collectionRequest
	if !s.decode(w, r, &req) {
		return
	}
	created, err := s.svc.AddCollection(r.Context(), books.CollectionInput{
		Date:               req.Date,
		ContactID:          req.ContactID,
		Amount:             req.Amount,
		PaymentAccountCode: req.PaymentAccountCode,
		Description:        req.Description,
		InvoiceID:          req.InvoiceID,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, created)
}

func (s *Server) listPayments(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.svc.Payments())
}

func (s *Server) listCollections(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.svc.Collections())
}
