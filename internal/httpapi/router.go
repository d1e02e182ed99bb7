// Package httpapi wires the HTTP surface of the bookkeeping service.
// Handlers stay thin: decode, validate, delegate to the orchestrator, encode.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/fyrel/books/internal/books"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	svc   *books.Service
	log   *slog.Logger
	valid *validator.Validate
	rt    *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
func New(svc *books.Service, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)
	r.Use(httprate.LimitByIP(300, time.Minute))

	s := &Server{svc: svc, log: logger, valid: validator.New(), rt: r}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints.
func (s *Server) routes() {
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Handle("/metrics", metricsHandler())

	s.rt.Route("/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", s.listAccounts)
			r.Post("/", s.postAccount)
			r.Put("/{code}", s.putAccount)
			r.Delete("/{code}", s.deleteAccount)
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.listProducts)
			r.Post("/", s.postProduct)
			r.Put("/{id}", s.putProduct)
			r.Delete("/{id}", s.deleteProduct)
		})
		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", s.listContacts)
			r.Post("/", s.postContact)
			r.Put("/{id}", s.putContact)
			r.Delete("/{id}", s.deleteContact)
		})
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", s.listTransactions)
			r.Post("/", s.postTransaction)
			r.Put("/{id}", s.putTransaction)
			r.Delete("/{id}", s.deleteTransaction)
		})
		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", s.listInvoices)
			r.Post("/", s.postInvoice)
			r.Post("/mark-overdue", s.markOverdueInvoices)
			r.Put("/{id}", s.putInvoice)
			r.Delete("/{id}", s.deleteInvoice)
		})
		r.Route("/entries", func(r chi.Router) {
			r.Get("/", s.listJournal)
			r.Post("/", s.postManualEntry)
		})
		r.Post("/income", s.postIncome)
		r.Post("/expenses", s.postExpense)
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", s.listPayments)
			r.Post("/", s.postPayment)
		})
		r.Route("/collections", func(r chi.Router) {
			r.Get("/", s.listCollections)
			r.Post("/", s.postCollection)
		})
		r.Route("/reports", func(r chi.Router) {
			r.Get("/ledger", s.getLedger)
			r.Get("/statements", s.getStatements)
		})
	})
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	toJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Ready(r.Context()); err != nil {
		toJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	toJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
