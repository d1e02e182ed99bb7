package httpapi

import (
	"errors"
	"net/http"

	"github.com/fyrel/books/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) { writeErr(w, http.StatusBadRequest, msg, "") }

// writeDomainErr maps domain sentinel errors onto HTTP status codes.
func writeDomainErr(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, errs.ErrNotFound):
		writeErr(w, http.StatusNotFound, msg, "not_found")
	case errors.Is(err, errs.ErrDuplicateCode):
		writeErr(w, http.StatusConflict, msg, "duplicate_code")
	case errors.Is(err, errs.ErrUnbalancedEntry):
		writeErr(w, http.StatusUnprocessableEntity, msg, "unbalanced_entry")
	case errors.Is(err, errs.ErrHeaderAccount):
		writeErr(w, http.StatusUnprocessableEntity, msg, "header_account")
	case errors.Is(err, errs.ErrInvalid):
		writeErr(w, http.StatusBadRequest, msg, "validation_error")
	default:
		writeErr(w, http.StatusInternalServerError, msg, "")
	}
}
