package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, ok, err := s.Load(ctx, "accounting-products")
	require.NoError(t, err)
	assert.False(t, ok, "missing key reports not found, not an error")

	require.NoError(t, s.Save(ctx, "accounting-products", []byte(`[]`)))
	data, ok, err := s.Load(ctx, "accounting-products")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), data)

	// Overwrite.
	require.NoError(t, s.Save(ctx, "accounting-products", []byte(`[1]`)))
	data, _, _ = s.Load(ctx, "accounting-products")
	assert.Equal(t, []byte(`[1]`), data)
}

func TestLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Save(ctx, "k", []byte("abc")))

	data, _, _ := s.Load(ctx, "k")
	data[0] = 'z'
	again, _, _ := s.Load(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Save(ctx, "k", []byte("abc")))
	s.Reset()
	_, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
