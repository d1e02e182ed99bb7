package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fyrel/books/internal/books"
)

type productRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name" validate:"required"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	InitialStock int64           `json:"initial_stock" validate:"gte=0"`
}

func (req productRequest) input() books.ProductInput {
	return books.ProductInput{
		Code:         req.Code,
		Name:         req.Name,
		Cost:         req.Cost,
		Price:        req.Price,
		InitialStock: req.InitialStock,
	}
}

func (s *Server) postProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !s.decode(w, r, &req) {
		return
	}
	created, err := s.svc.AddProduct(r.Context(), req.input())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, created)
}

func (s *Server) putProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req productRequest
	if !s.decode(w, r, &req) {
		return
	}
	updated, err := s.svc.UpdateProduct(r.Context(), id, req.input())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteProduct(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.svc.Products())
}

// pathID parses the {id} route parameter as a UUID, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid id: "+err.Error())
		return uuid.Nil, false
	}
	return id, true
}
