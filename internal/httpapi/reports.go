package httpapi

import "net/http"

func (s *Server) getLedger(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.svc.GeneralLedger())
}

func (s *Server) getStatements(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.svc.FinancialStatements())
}
