package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrel/books/internal/books"
	"github.com/fyrel/books/internal/ledger"
	"github.com/fyrel/books/internal/report"
	"github.com/fyrel/books/internal/storage/memory"
)

func setup(t *testing.T) (*Server, *books.Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := books.New(memory.New(), logger)
	require.NoError(t, svc.Load(context.Background()))
	return New(svc, logger), svc
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func createProduct(t *testing.T, s *Server) ledger.Product {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/v1/products", map[string]any{
		"name": "Widget", "cost": 30, "price": 50, "initial_stock": 10,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p ledger.Product
	decodeInto(t, rec, &p)
	return p
}

func TestHealthAndReady(t *testing.T) {
	s, _ := setup(t)
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/readyz", nil).Code)
}

func TestPostTransaction(t *testing.T) {
	s, svc := setup(t)
	p := createProduct(t, s)

	rec := do(t, s, http.MethodPost, "/v1/transactions", map[string]any{
		"type": "sale", "product_id": p.ID, "quantity": 2, "unit_price": 50,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tx ledger.Transaction
	decodeInto(t, rec, &tx)
	assert.Equal(t, "100", tx.Total.String())

	require.Len(t, svc.JournalLines(), 4)
	got, err := svc.Product(p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.Stock)
}

func TestPostTransaction_ValidationFailures(t *testing.T) {
	s, _ := setup(t)

	// Unknown transaction type.
	rec := do(t, s, http.MethodPost, "/v1/transactions", map[string]any{
		"type": "loan", "quantity": 1, "unit_price": 10,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Zero quantity.
	rec = do(t, s, http.MethodPost, "/v1/transactions", map[string]any{
		"type": "sale", "quantity": 0, "unit_price": 10,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown field.
	rec = do(t, s, http.MethodPost, "/v1/transactions", map[string]any{
		"type": "sale", "quantity": 1, "unit_price": 10, "total": 999,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "derived fields are not accepted")

	// Malformed body.
	req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewBufferString("{"))
	recMalformed := httptest.NewRecorder()
	s.Handler().ServeHTTP(recMalformed, req)
	assert.Equal(t, http.StatusBadRequest, recMalformed.Code)
}

func TestDeleteTransaction_Errors(t *testing.T) {
	s, _ := setup(t)
	rec := do(t, s, http.MethodDelete, "/v1/transactions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodDelete, "/v1/transactions/0b36e5f1-9ce1-4c5f-9f4e-2f3b60d5c001", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body errorResponse
	decodeInto(t, rec, &body)
	assert.Equal(t, "not_found", body.Code)
}

func TestPostAccount_Duplicate(t *testing.T) {
	s, _ := setup(t)
	rec := do(t, s, http.MethodPost, "/v1/accounts", map[string]any{
		"code": "1101", "name": "Caja Dos", "type": "detail",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	var body errorResponse
	decodeInto(t, rec, &body)
	assert.Equal(t, "duplicate_code", body.Code)
}

func TestPostManualEntry_Unbalanced(t *testing.T) {
	s, _ := setup(t)
	rec := do(t, s, http.MethodPost, "/v1/entries", map[string]any{
		"description": "desbalance",
		"lines": []map[string]any{
			{"account_code": "1101", "debit": 100},
			{"account_code": "4101", "credit": 50},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body errorResponse
	decodeInto(t, rec, &body)
	assert.Equal(t, "unbalanced_entry", body.Code)
}

func TestPostManualEntry_Balanced(t *testing.T) {
	s, svc := setup(t)
	rec := do(t, s, http.MethodPost, "/v1/entries", map[string]any{
		"description": "aporte de capital",
		"lines": []map[string]any{
			{"account_code": "1102", "debit": 1000},
			{"account_code": "3101", "credit": 1000},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Len(t, svc.JournalLines(), 2)

	list := do(t, s, http.MethodGet, "/v1/entries", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var lines []ledger.JournalLine
	decodeInto(t, list, &lines)
	assert.Len(t, lines, 2)
}

func TestInvoiceAndCollectionFlow(t *testing.T) {
	s, _ := setup(t)
	p := createProduct(t, s)

	rec := do(t, s, http.MethodPost, "/v1/invoices", map[string]any{
		"lines": []map[string]any{
			{"product_id": p.ID, "quantity": 2, "unit_price": 50},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var inv ledger.Invoice
	decodeInto(t, rec, &inv)
	assert.Equal(t, ledger.InvoicePending, inv.Status)
	assert.Equal(t, "112", inv.Total.String(), "subtotal 100 plus 12% VAT")

	rec = do(t, s, http.MethodPost, "/v1/collections", map[string]any{
		"amount": 100, "payment_account_code": "1101", "invoice_id": inv.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	list := do(t, s, http.MethodGet, "/v1/invoices", nil)
	var invoices []ledger.Invoice
	decodeInto(t, list, &invoices)
	require.Len(t, invoices, 1)
	assert.Equal(t, ledger.InvoicePaid, invoices[0].Status)
}

func TestReports(t *testing.T) {
	s, _ := setup(t)
	p := createProduct(t, s)
	rec := do(t, s, http.MethodPost, "/v1/transactions", map[string]any{
		"type": "sale", "product_id": p.ID, "quantity": 2, "unit_price": 50,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	ledgerRec := do(t, s, http.MethodGet, "/v1/reports/ledger", nil)
	require.Equal(t, http.StatusOK, ledgerRec.Code)
	var accounts []report.LedgerAccount
	decodeInto(t, ledgerRec, &accounts)
	require.Len(t, accounts, 4)

	stRec := do(t, s, http.MethodGet, "/v1/reports/statements", nil)
	require.Equal(t, http.StatusOK, stRec.Code)
	var st report.Statements
	decodeInto(t, stRec, &st)
	assert.Equal(t, "100", st.IncomeStatement.TotalRevenues.String())
	assert.Equal(t, "60", st.IncomeStatement.TotalExpenses.String())
	assert.Equal(t, "40", st.IncomeStatement.NetIncome.String())
}

func TestListAccounts(t *testing.T) {
	s, _ := setup(t)
	rec := do(t, s, http.MethodGet, "/v1/accounts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var accounts []ledger.Account
	decodeInto(t, rec, &accounts)
	assert.Len(t, accounts, 19)
}
