// Package coa implements the chart of accounts registry: account codes, their
// metadata, and the family classification the rest of the engine keys on.
package coa

import (
	"fmt"

	"github.com/fyrel/books/internal/errs"
	"github.com/fyrel/books/internal/ledger"
)

// Registry owns the chart of accounts. It preserves insertion order for
// listing and indexes by code for lookups. The registry is not safe for
// concurrent use on its own; the orchestrator serializes access.
type Registry struct {
	order  []string
	byCode map[string]ledger.Account
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byCode: make(map[string]ledger.Account)}
}

// Validate checks the structural requirements of an account definition.
func Validate(a ledger.Account) error {
	if a.Code == "" {
		return fmt.Errorf("%w: account code is required", errs.ErrInvalid)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: account name is required", errs.ErrInvalid)
	}
	switch a.Type {
	case ledger.AccountHeader, ledger.AccountDetail:
	default:
		return fmt.Errorf("%w: account type must be header or detail", errs.ErrInvalid)
	}
	return nil
}

// Add registers a new account. The family is computed from the code here and
// never re-derived afterwards. Fails with ErrDuplicateCode on collision.
func (r *Registry) Add(a ledger.Account) (ledger.Account, error) {
	if err := Validate(a); err != nil {
		return ledger.Account{}, err
	}
	if _, exists := r.byCode[a.Code]; exists {
		return ledger.Account{}, fmt.Errorf("%w: account %s already exists", errs.ErrDuplicateCode, a.Code)
	}
	a.Family = ledger.FamilyOf(a.Code)
	r.byCode[a.Code] = a
	r.order = append(r.order, a.Code)
	return a, nil
}

// Update replaces the account matching the given code.
func (r *Registry) Update(a ledger.Account) (ledger.Account, error) {
	if err := Validate(a); err != nil {
		return ledger.Account{}, err
	}
	if _, exists := r.byCode[a.Code]; !exists {
		return ledger.Account{}, errs.ErrNotFound
	}
	a.Family = ledger.FamilyOf(a.Code)
	r.byCode[a.Code] = a
	return a, nil
}

// Delete removes the account with the given code. Existing journal lines
// referencing the code are intentionally not checked: the ledger aggregator
// drops unresolvable lines instead of failing.
func (r *Registry) Delete(code string) error {
	if _, exists := r.byCode[code]; !exists {
		return errs.ErrNotFound
	}
	delete(r.byCode, code)
	for i, c := range r.order {
		if c == code {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Lookup returns the account for a code, if registered.
func (r *Registry) Lookup(code string) (ledger.Account, bool) {
	a, ok := r.byCode[code]
	return a, ok
}

// Family returns the family of the registered account, falling back to the
// code-derived family for unregistered codes.
func (r *Registry) Family(code string) ledger.Family {
	if a, ok := r.byCode[code]; ok {
		return a.Family
	}
	return ledger.FamilyOf(code)
}

// All returns the accounts in insertion order.
func (r *Registry) All() []ledger.Account {
	out := make([]ledger.Account, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.byCode[code])
	}
	return out
}

// Replace swaps the registry contents, used when restoring a snapshot.
// Families are recomputed so snapshots written before a numbering change
// still classify consistently.
func (r *Registry) Replace(accounts []ledger.Account) {
	r.order = r.order[:0]
	r.byCode = make(map[string]ledger.Account, len(accounts))
	for _, a := range accounts {
		if _, dup := r.byCode[a.Code]; dup {
			continue
		}
		a.Family = ledger.FamilyOf(a.Code)
		r.byCode[a.Code] = a
		r.order = append(r.order, a.Code)
	}
}
