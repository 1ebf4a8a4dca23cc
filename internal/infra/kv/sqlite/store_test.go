package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "app_clients")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "app_clients", `[{"id":1}]`))
	v, ok, err := s.Get(ctx, "app_clients")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	// Writes replace the whole value.
	require.NoError(t, s.Set(ctx, "app_clients", `[]`))
	v, _, err = s.Get(ctx, "app_clients")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "app_quotes", `[{"id":9}]`))
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()
	v, ok, err := reopened.Get(ctx, "app_quotes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":9}]`, v)
}
