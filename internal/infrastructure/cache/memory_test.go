package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "hello", time.Minute))
	require.NoError(t, store.Set(ctx, "forever", "kept", 0))

	v, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	now = now.Add(2 * time.Minute)
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, _ = store.Get(ctx, "forever")
	assert.True(t, ok)

	store.Delete("forever")
	_, ok, _ = store.Get(ctx, "forever")
	assert.False(t, ok)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
