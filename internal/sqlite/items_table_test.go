package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

func TestItems_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	created, err := b.Create(ctx, types.Item{Name: "Item3"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, "Item3", created.Name)
	assert.False(t, created.IsComplete)

	got, err := b.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestItems_CreateIgnoresCallerID(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	created, err := b.Create(ctx, types.Item{ID: 1, Name: "collides"})
	require.NoError(t, err)
	assert.NotEqual(t, int64(1), created.ID)

	original, err := b.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Item1", original.Name)
}

func TestItems_CreateRejectsEmptyName(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.Create(context.Background(), types.Item{Name: "  "})
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestItems_IDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	first, err := b.Create(ctx, types.Item{Name: "first"})
	require.NoError(t, err)
	require.NoError(t, b.Delete(ctx, first.ID))

	second, err := b.Create(ctx, types.Item{Name: "second"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestItems_UpdateThenGet(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	want := types.Item{ID: 2, Name: "Item2 done", IsComplete: true}
	require.NoError(t, b.Update(ctx, 2, types.Item{Name: want.Name, IsComplete: true}))

	got, err := b.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestItems_UpdateErrors(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		item    types.Item
		wantErr error
	}{
		{"unknown id", 99, types.Item{Name: "ghost"}, types.ErrNotFound},
		{"non-positive id", 0, types.Item{Name: "zero"}, types.ErrInvalidID},
		{"body id differs", 1, types.Item{ID: 2, Name: "other"}, types.ErrIDMismatch},
		{"empty name", 1, types.Item{Name: ""}, types.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBackend(t)
			assert.ErrorIs(t, b.Update(context.Background(), tt.id, tt.item), tt.wantErr)
		})
	}
}

func TestItems_UpdateWithMatchingBodyID(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	require.NoError(t, b.Update(ctx, 1, types.Item{ID: 1, Name: "same id"}))
	got, err := b.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "same id", got.Name)
}

func TestItems_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	require.NoError(t, b.Delete(ctx, 1))

	_, err := b.Get(ctx, 1)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, b.Delete(ctx, 1), types.ErrNotFound)
}

func TestItems_GetErrors(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.Get(context.Background(), 42)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = b.Get(context.Background(), -1)
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestItems_ListEmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	require.NoError(t, b.Delete(ctx, 1))
	require.NoError(t, b.Delete(ctx, 2))

	items, err := b.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
