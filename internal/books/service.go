// Package books is the business event orchestrator. It owns every entity
// collection, coordinates the posting rules, inventory adjustments and
// journal store for each command, and writes the state through to the
// snapshot store after each mutation.
package books

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/fyrel/books/internal/coa"
	"github.com/fyrel/books/internal/journal"
	"github.com/fyrel/books/internal/ledger"
	"github.com/fyrel/books/internal/storage"
)

// Snapshot keys, one serialized collection per entity kind. The names are
// inherited from the previous incarnation's session store and kept so old
// snapshots restore unchanged.
const (
	keyProducts      = "accounting-products"
	keyTransactions  = "accounting-transactions"
	keyJournalLines  = "accounting-journal-entries"
	keyContacts      = "accounting-contacts"
	keyChart         = "accounting-chartOfAccounts"
	keyInvoices      = "accounting-invoices"
	keyManualEntries = "accounting-manualJournalEntries"
	keyPayments      = "accounting-payments"
	keyCollections   = "accounting-collections"
)

// Service is the single writer over all bookkeeping state. Reads and writes
// are serialized through an RWMutex; every derived effect of a command
// (postings, inventory, invoice status) commits before the method returns.
type Service struct {
	mu    sync.RWMutex
	log   *slog.Logger
	snaps storage.Store

	registry *coa.Registry
	journal  *journal.Store

	products      []*ledger.Product
	productByID   map[uuid.UUID]*ledger.Product
	transactions  []ledger.Transaction
	invoices      []ledger.Invoice
	manualEntries []ledger.ManualEntry
	payments      []ledger.Payment
	collections   []ledger.Collection
	contacts      []ledger.Contact
}

// New constructs a service persisting through snaps. Call Load before
// serving commands.
func New(snaps storage.Store, logger *slog.Logger) *Service {
	return &Service{
		log:         logger,
		snaps:       snaps,
		registry:    coa.New(),
		journal:     journal.New(),
		productByID: make(map[uuid.UUID]*ledger.Product),
	}
}

// Load restores all collections from the snapshot store. A missing chart
// snapshot seeds the default chart of accounts (first run).
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var accounts []ledger.Account
	found, err := s.loadJSON(ctx, keyChart, &accounts)
	if err != nil {
		return err
	}
	if !found {
		accounts = coa.DefaultChart()
		s.log.Info("seeded default chart of accounts", "accounts", len(accounts))
	}
	s.registry.Replace(accounts)

	var lines []ledger.JournalLine
	if _, err := s.loadJSON(ctx, keyJournalLines, &lines); err != nil {
		return err
	}
	s.journal.Replace(lines)

	var products []ledger.Product
	if _, err := s.loadJSON(ctx, keyProducts, &products); err != nil {
		return err
	}
	s.products = s.products[:0]
	s.productByID = make(map[uuid.UUID]*ledger.Product, len(products))
	for i := range products {
		p := products[i]
		s.products = append(s.products, &p)
		s.productByID[p.ID] = &p
	}

	if _, err := s.loadJSON(ctx, keyTransactions, &s.transactions); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, keyInvoices, &s.invoices); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, keyManualEntries, &s.manualEntries); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, keyPayments, &s.payments); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, keyCollections, &s.collections); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, keyContacts, &s.contacts); err != nil {
		return err
	}
	return nil
}

func (s *Service) loadJSON(ctx context.Context, key string, v any) (bool, error) {
	data, found, err := s.snaps.Load(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

// persist rewrites every collection. It runs after the in-memory mutation has
// committed; failures are logged and do not roll the mutation back.
func (s *Service) persist(ctx context.Context) {
	products := make([]ledger.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, *p)
	}
	snapshots := []struct {
		key string
		v   any
	}{
		{keyChart, s.registry.All()},
		{keyJournalLines, s.journal.All()},
		{keyProducts, products},
		{keyTransactions, s.transactions},
		{keyInvoices, s.invoices},
		{keyManualEntries, s.manualEntries},
		{keyPayments, s.payments},
		{keyCollections, s.collections},
		{keyContacts, s.contacts},
	}
	for _, snap := range snapshots {
		data, err := json.Marshal(snap.v)
		if err != nil {
			s.log.Error("snapshot marshal failed", "key", snap.key, "err", err)
			continue
		}
		if err := s.snaps.Save(ctx, snap.key, data); err != nil {
			s.log.Error("snapshot save failed", "key", snap.key, "err", err)
		}
	}
}

// Ready reports whether the snapshot store is reachable.
func (s *Service) Ready(ctx context.Context) error { return s.snaps.Ready(ctx) }

func (s *Service) contactName(id uuid.UUID) string {
	for _, c := range s.contacts {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (s *Service) accountName(code string) string {
	if a, ok := s.registry.Lookup(code); ok {
		return a.Name
	}
	return ""
}
