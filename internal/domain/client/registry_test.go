package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eco-urh/go_backend/internal/domain/confirm"
	"eco-urh/go_backend/internal/infra/kv/memory"
)

// testRegistry returns a registry over an in-memory store with a clock that
// advances one second per call, so ids never collide.
func testRegistry() *Registry {
	r := NewRegistry(memory.New())
	base := time.Date(2024, 5, 5, 10, 0, 0, 0, time.UTC)
	calls := 0
	r.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	return r
}

func TestCreateAssignsIDAndDate(t *testing.T) {
	r := testRegistry()
	ctx := context.Background()

	c, err := r.Create(ctx, "Ana Ruiz", "", "999111222")
	require.NoError(t, err)

	assert.NotZero(t, c.ID)
	assert.Equal(t, "5/5/2024", c.CreatedAt)

	clients, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, c, clients[0])
}

func TestCreateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		cName  string
		cPhone string
	}{
		{"empty name", "", "999111222"},
		{"whitespace name", "   ", "999111222"},
		{"empty phone", "Ana Ruiz", ""},
		{"whitespace phone", "Ana Ruiz", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRegistry()
			ctx := context.Background()

			_, err := r.Create(ctx, tt.cName, "a@b.com", tt.cPhone)
			assert.ErrorIs(t, err, ErrMissingFields)

			clients, err := r.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, clients, "rejected create must not persist anything")
		})
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	r := testRegistry()
	ctx := context.Background()

	for _, name := range []string{"Ana Ruiz", "Harry Torres", "Carla Vega"} {
		_, err := r.Create(ctx, name, "", "111")
		require.NoError(t, err)
	}

	clients, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "Ana Ruiz", clients[0].Name)
	assert.Equal(t, "Harry Torres", clients[1].Name)
	assert.Equal(t, "Carla Vega", clients[2].Name)
}

func TestSearch(t *testing.T) {
	r := testRegistry()
	ctx := context.Background()
	_, err := r.Create(ctx, "Ana Ruiz", "", "999111222")
	require.NoError(t, err)
	_, err = r.Create(ctx, "Harry Torres", "", "888")
	require.NoError(t, err)

	byName, err := r.Search(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Ana Ruiz", byName[0].Name)

	byDate, err := r.Search(ctx, "5/5/2024")
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	none, err := r.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDelete(t *testing.T) {
	r := testRegistry()
	ctx := context.Background()
	a, err := r.Create(ctx, "Ana Ruiz", "", "999")
	require.NoError(t, err)
	b, err := r.Create(ctx, "Harry Torres", "", "888")
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, a.ID, confirm.Allow))

	clients, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, b.ID, clients[0].ID)

	// Unknown id is a no-op.
	require.NoError(t, r.Delete(ctx, 424242, confirm.Allow))
	clients, err = r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestDeleteDeclined(t *testing.T) {
	r := testRegistry()
	ctx := context.Background()
	a, err := r.Create(ctx, "Ana Ruiz", "", "999")
	require.NoError(t, err)

	err = r.Delete(ctx, a.ID, confirm.Deny)
	assert.ErrorIs(t, err, ErrNotConfirmed)

	clients, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1, "declined delete must not mutate the roster")
}
