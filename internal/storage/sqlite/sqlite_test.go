package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Ready(ctx))

	_, ok, err := s.Load(ctx, "accounting-journal-entries")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, "accounting-journal-entries", []byte(`[{"id":"x"}]`)))
	data, ok, err := s.Load(ctx, "accounting-journal-entries")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"x"}]`, string(data))

	// Upsert replaces in place.
	require.NoError(t, s.Save(ctx, "accounting-journal-entries", []byte(`[]`)))
	data, _, _ = s.Load(ctx, "accounting-journal-entries")
	assert.JSONEq(t, `[]`, string(data))
}

func TestKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Save(ctx, "a", []byte("1")))
	require.NoError(t, s.Save(ctx, "b", []byte("2")))
	data, ok, err := s.Load(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("1"), data)
}
