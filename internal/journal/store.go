// Package journal holds the posted journal lines. The store is append/remove
// only: lines are immutable once posted and are removed solely in bulk when
// their originating event is deleted or reworked.
package journal

import (
	"github.com/google/uuid"

	"github.com/fyrel/books/internal/ledger"
)

// Store keeps journal lines in posting order. It has a single owner (the
// orchestrator) and relies on the owner's lock for concurrent access.
type Store struct {
	lines []ledger.JournalLine
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Append adds posted lines, preserving their order.
func (s *Store) Append(lines ...ledger.JournalLine) {
	s.lines = append(s.lines, lines...)
}

// RemoveByRef drops every line whose provenance matches the given event.
// Returns the number of lines removed.
func (s *Store) RemoveByRef(kind ledger.RefKind, id uuid.UUID) int {
	kept := s.lines[:0]
	removed := 0
	for _, ln := range s.lines {
		if ln.Ref.Kind == kind && ln.Ref.ID == id {
			removed++
			continue
		}
		kept = append(kept, ln)
	}
	s.lines = kept
	return removed
}

// RemoveGroup drops a single balanced entry group. Returns the number of
// lines removed.
func (s *Store) RemoveGroup(entryGroupID uuid.UUID) int {
	kept := s.lines[:0]
	removed := 0
	for _, ln := range s.lines {
		if ln.EntryGroupID == entryGroupID {
			removed++
			continue
		}
		kept = append(kept, ln)
	}
	s.lines = kept
	return removed
}

// All returns a copy of the lines in insertion order.
func (s *Store) All() []ledger.JournalLine {
	out := make([]ledger.JournalLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// ByRef returns the lines produced by a single event, in insertion order.
func (s *Store) ByRef(kind ledger.RefKind, id uuid.UUID) []ledger.JournalLine {
	var out []ledger.JournalLine
	for _, ln := range s.lines {
		if ln.Ref.Kind == kind && ln.Ref.ID == id {
			out = append(out, ln)
		}
	}
	return out
}

// Len reports the number of stored lines.
func (s *Store) Len() int { return len(s.lines) }

// Replace swaps the store contents, used when restoring a snapshot.
func (s *Store) Replace(lines []ledger.JournalLine) {
	s.lines = make([]ledger.JournalLine, len(lines))
	copy(s.lines, lines)
}
