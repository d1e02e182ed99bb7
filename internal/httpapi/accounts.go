package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/fyrel/books/internal/ledger"
)

type accountRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=header detail"`
}

func (s *Server) postAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !s.decode(w, r, &req) {
		return
	}
	created, err := s.svc.AddAccount(r.Context(), ledger.Account{
		Code: req.Code,
		Name: req.Name,
		Type: ledger.AccountType(req.Type),
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, created)
}

func (s *Server) putAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !s.decode(w, r, &req) {
		return
	}
	code := chi.URLParam(r, "code")
	if req.Code != code {
		badRequest(w, "account code in path and body must match")
		return
	}
	updated, err := s.svc.UpdateAccount(r.Context(), ledger.Account{
		Code: req.Code,
		Name: req.Name,
		Type: ledger.AccountType(req.Type),
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteAccount(r.Context(), chi.URLParam(r, "code")); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.svc.Accounts())
}
