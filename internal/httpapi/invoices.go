package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/books"
)

type invoiceLineRequest struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type invoiceRequest struct {
	ContactID uuid.UUID            `json:"contact_id"`
	Date      time.Time            `json:"date"`
	DueDate   time.Time            `json:"due_date"`
	Lines     []invoiceLineRequest `json:"lines" validate:"required,min=1,dive"`
}

func (req invoiceRequest) input() books.InvoiceInput {
	in := books.InvoiceInput{
		ContactID: req.ContactID,
		Date:      req.Date,
		DueDate:   req.DueDate,
	}
	for _, ln := range req.Lines {
		in.Lines = append(in.Lines, books.InvoiceLineInput{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice,
		})
	}
	return in
}

func (s *Server) postInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if !s.decode(w, r, &req) {
		return
	}
	created, err := s.svc.AddInvoice(r.Context(), req.input())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, created)
}

func (s *Server) putInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req invoiceRequest
	if !s.decode(w, r, &req) {
		return
	}
	updated, err := s.svc.UpdateInvoice(r.Context(), id, req.input())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteInvoice(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) markOverdueInvoices(w http.ResponseWriter, r *http.Request) {
	changed := s.svc.MarkOverdueInvoices(r.Context(), time.Now().UTC())
	toJSON(w, http.StatusOK, map[string]int{"changed": changed})
}

func (s *Server) listInvoices(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.svc.Invoices())
}
