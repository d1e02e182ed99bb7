package books

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fyrel/books/internal/errs"
	"github.com/fyrel/books/internal/ledger"
)

// ContactInput carries the caller-supplied fields of a customer or supplier.
type ContactInput struct {
	Name  string
	Kind  ledger.ContactKind
	Email string
	Phone string
}

func (in ContactInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: contact name is required", errs.ErrInvalid)
	}
	switch in.Kind {
	case ledger.ContactClient, ledger.ContactSupplier:
	default:
		return fmt.Errorf("%w: contact kind must be client or supplier", errs.ErrInvalid)
	}
	return nil
}

// AddContact registers a customer or supplier.
func (s *Service) AddContact(ctx context.Context, in ContactInput) (ledger.Contact, error) {
	if err := in.validate(); err != nil {
		return ledger.Contact{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := ledger.Contact{ID: uuid.New(), Name: in.Name, Kind: in.Kind, Email: in.Email, Phone: in.Phone}
	s.contacts = append(s.contacts, c)
	s.persist(ctx)
	return c, nil
}

// UpdateContact replaces a contact's fields.
func (s *Service) UpdateContact(ctx context.Context, id uuid.UUID, in ContactInput) (ledger.Contact, error) {
	if err := in.validate(); err != nil {
		return ledger.Contact{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts[i] = ledger.Contact{ID: id, Name: in.Name, Kind: in.Kind, Email: in.Email, Phone: in.Phone}
			s.persist(ctx)
			return s.contacts[i], nil
		}
	}
	return ledger.Contact{}, errs.ErrNotFound
}

// DeleteContact removes a contact. Documents referencing it keep their
// recorded descriptions.
func (s *Service) DeleteContact(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return errs.ErrNotFound
}

// Contacts lists the contacts in insertion order.
func (s *Service) Contacts() []ledger.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}
