package journal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrel/books/internal/ledger"
)

func line(kind ledger.RefKind, refID uuid.UUID, code string) ledger.JournalLine {
	return ledger.JournalLine{
		ID:          uuid.New(),
		AccountCode: code,
		Ref:         ledger.Provenance{Kind: kind, ID: refID},
	}
}

func TestAppendAndAll(t *testing.T) {
	s := New()
	ref := uuid.New()
	s.Append(line(ledger.RefTransaction, ref, "1103"), line(ledger.RefTransaction, ref, "4101"))
	require.Equal(t, 2, s.Len())

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "1103", all[0].AccountCode)
	assert.Equal(t, "4101", all[1].AccountCode)

	// All returns a copy; mutating it must not touch the store.
	all[0].AccountCode = "9999"
	assert.Equal(t, "1103", s.All()[0].AccountCode)
}

func TestRemoveByRef(t *testing.T) {
	s := New()
	txA, txB := uuid.New(), uuid.New()
	s.Append(
		line(ledger.RefTransaction, txA, "1103"),
		line(ledger.RefTransaction, txA, "4101"),
		line(ledger.RefTransaction, txB, "1201"),
		line(ledger.RefManual, txA, "1101"),
	)

	removed := s.RemoveByRef(ledger.RefTransaction, txA)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, s.Len())
	assert.Empty(t, s.ByRef(ledger.RefTransaction, txA))
	assert.Len(t, s.ByRef(ledger.RefManual, txA), 1, "same id under a different kind survives")

	assert.Equal(t, 0, s.RemoveByRef(ledger.RefTransaction, uuid.New()))
}

func TestRemoveGroup(t *testing.T) {
	s := New()
	group := uuid.New()
	a := line(ledger.RefManual, uuid.New(), "1102")
	a.EntryGroupID = group
	b := line(ledger.RefManual, uuid.New(), "3101")
	b.EntryGroupID = group
	c := line(ledger.RefManual, uuid.New(), "1101")
	s.Append(a, b, c)

	assert.Equal(t, 2, s.RemoveGroup(group))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "1101", s.All()[0].AccountCode)
}

func TestReplace(t *testing.T) {
	s := New()
	s.Append(line(ledger.RefTransaction, uuid.New(), "1103"))

	snapshot := []ledger.JournalLine{
		line(ledger.RefInvoice, uuid.New(), "1103"),
		line(ledger.RefInvoice, uuid.New(), "4101"),
	}
	s.Replace(snapshot)
	require.Equal(t, 2, s.Len())

	snapshot[0].AccountCode = "9999"
	assert.Equal(t, "1103", s.All()[0].AccountCode, "store keeps its own copy")
}
