package quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eco-urh/go_backend/internal/domain/client"
	"eco-urh/go_backend/internal/infra/kv"
	"eco-urh/go_backend/internal/infra/kv/memory"
)

func seedRegistry(t *testing.T) *Registry {
	t.Helper()
	store := memory.New()
	reg := NewRegistry(store)
	records := []StoredQuote{
		{
			ID:       1,
			Date:     "05/01/2024",
			Clients:  []client.Client{{ID: 1, Name: "Ana Ruiz"}},
			Sections: []Section{{Title: "MATERIALES", Items: []Item{{Description: "Cable", Price: 50}}}},
			Total:    50,
		},
		{
			ID:       2,
			Date:     "12/03/2024",
			Clients:  []client.Client{{ID: 2, Name: "Harry Torres"}, {ID: 3, Name: "Carla Vega"}},
			Sections: []Section{{Title: "MANO DE OBRA", Items: []Item{{Description: "Instalación", Price: 120}}}},
			Total:    120,
		},
		{
			ID:       3,
			Date:     "05/06/2023",
			Clients:  []client.Client{{ID: 1, Name: "Ana Ruiz"}},
			Sections: []Section{},
			Total:    0,
		},
	}
	require.NoError(t, kv.SaveRecords(context.Background(), store, "app_quotes", records))
	return reg
}

func ids(quotes []Quote) []int64 {
	out := make([]int64, len(quotes))
	for i, q := range quotes {
		out[i] = q.ID
	}
	return out
}

func TestListUpgradesLegacyRecords(t *testing.T) {
	store := memory.New()
	reg := NewRegistry(store)
	raw := `[{"id":1,"date":"05/01/2024","client":{"id":7,"name":"Ana Ruiz"},"items":[{"description":"Cable","price":50}],"total":50}]`
	require.NoError(t, store.Set(context.Background(), "app_quotes", raw))

	quotes, err := reg.List(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	require.Len(t, quotes[0].Clients, 1)
	require.Len(t, quotes[0].Sections, 1)
	assert.Equal(t, "General", quotes[0].Sections[0].Title)
}

func TestSearchByName(t *testing.T) {
	reg := seedRegistry(t)

	quotes, err := reg.Search(context.Background(), "carla", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(quotes), "matches any client on the quote")

	quotes, err = reg.Search(context.Background(), "ana", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(quotes))
}

func TestSearchByDateParts(t *testing.T) {
	reg := seedRegistry(t)
	ctx := context.Background()

	// day "5" is padded before comparing and combines with the year filter;
	// the month is left open.
	quotes, err := reg.Search(ctx, "", "5", "", "2024")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(quotes))

	quotes, err = reg.Search(ctx, "", "05", "", "")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(quotes))

	quotes, err = reg.Search(ctx, "", "", "3", "")
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(quotes))

	// The year filter is a substring match.
	quotes, err = reg.Search(ctx, "", "", "", "20")
	require.NoError(t, err)
	assert.Len(t, quotes, 3)
}

func TestSearchAllFiltersMustMatch(t *testing.T) {
	reg := seedRegistry(t)

	quotes, err := reg.Search(context.Background(), "ana", "5", "1", "2024")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(quotes))

	quotes, err = reg.Search(context.Background(), "ana", "12", "", "")
	require.NoError(t, err)
	assert.Empty(t, quotes, "name matches but day does not")
}

func TestSearchEmptyFiltersReturnEverything(t *testing.T) {
	reg := seedRegistry(t)

	quotes, err := reg.Search(context.Background(), "", "", "", "")
	require.NoError(t, err)
	assert.Len(t, quotes, 3)
}

func TestUpdateUnknownIDLeavesListUnchanged(t *testing.T) {
	reg := seedRegistry(t)
	ctx := context.Background()

	err := reg.Update(ctx, Quote{ID: 999, Date: "01/01/2020", Clients: []client.Client{}, Sections: []Section{}})
	require.NoError(t, err)

	quotes, err := reg.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(quotes))
}

func TestUpdateKeepsLegacyNeighborsInLegacyShape(t *testing.T) {
	store := memory.New()
	reg := NewRegistry(store)
	ctx := context.Background()
	raw := `[{"id":1,"date":"05/01/2024","client":{"id":7,"name":"Ana Ruiz"},"items":[{"description":"Cable","price":50}],"total":50},` +
		`{"id":2,"date":"12/03/2024","clients":[{"id":2,"name":"Harry Torres"}],"sections":[{"title":"A","items":[]}],"total":0}]`
	require.NoError(t, store.Set(ctx, "app_quotes", raw))

	err := reg.Update(ctx, Quote{
		ID:       2,
		Date:     "12/03/2024",
		Clients:  []client.Client{{ID: 2, Name: "Harry Torres"}},
		Sections: []Section{{Title: "B", Items: []Item{}}},
	})
	require.NoError(t, err)

	// The untouched legacy record is still persisted in its old shape.
	persisted, ok, err := store.Get(ctx, "app_quotes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, persisted, `"client":`)
	assert.Contains(t, persisted, `"items":`)
	assert.Contains(t, persisted, `"B"`)
}

func TestGet(t *testing.T) {
	reg := seedRegistry(t)
	ctx := context.Background()

	q, ok, err := reg.Get(ctx, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "12/03/2024", q.Date)

	_, ok, err = reg.Get(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}
