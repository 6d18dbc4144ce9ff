package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewSlotStore()

	require.NoError(t, store.SetSlot(ctx, 7, "word-bank", "[]"))
	require.NoError(t, store.SetSlot(ctx, 7, "word-bank", `[{"id":"1"}]`))

	value, ok, err := store.GetSlot(ctx, 7, "word-bank")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)
}

func TestSlotStore_Missing(t *testing.T) {
	value, ok, err := NewSlotStore().GetSlot(context.Background(), 7, "collection")

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}
