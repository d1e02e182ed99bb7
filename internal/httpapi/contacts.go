package httpapi

import (
	"net/http"

	"github.com/fyrel/books/internal/books"
	"github.com/fyrel/books/internal/ledger"
)

type contactRequest struct {
	Name  string `json:"name" validate:"required"`
	Kind  string `json:"kind" validate:"required,oneof=client supplier"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

func (req contactRequest) input() books.ContactInput {
	return books.ContactInput{
		Name:  req.Name,
		Kind:  ledger.ContactKind(req.Kind),
		Email: req.Email,
		Phone: req.Phone,
	}
}

func (s *Server) postContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !s.decode(w, r, &req) {
		return
	}
	created, err := s.svc.AddContact(r.Context(), req.input())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, created)
}

func (s *Server) putContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req contactRequest
	if !s.decode(w, r, &req) {
		return
	}
	updated, err := s.svc.UpdateContact(r.Context(), id, req.input())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteContact(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.svc.Contacts())
}
