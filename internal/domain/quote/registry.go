package quote

import (
	"context"
	"strings"

	"eco-urh/go_backend/internal/infra/kv"
)

const storageKey = "app_quotes"

// Registry reads and filters the saved quote list. Writes go through Insert
// and Update, which the composer drives on save.
type Registry struct {
	store kv.Store
}

func NewRegistry(store kv.Store) *Registry {
	return &Registry{store: store}
}

// List returns every saved quote, upgraded to the current shape.
func (r *Registry) List(ctx context.Context) ([]Quote, error) {
	records, err := kv.LoadRecords[StoredQuote](ctx, r.store, storageKey)
	if err != nil {
		return nil, err
	}
	quotes := make([]Quote, len(records))
	for i, rec := range records {
		quotes[i] = rec.Upgrade()
	}
	return quotes, nil
}

// Get returns the quote with the given id, if present.
func (r *Registry) Get(ctx context.Context, id int64) (Quote, bool, error) {
	quotes, err := r.List(ctx)
	if err != nil {
		return Quote{}, false, err
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, true, nil
		}
	}
	return Quote{}, false, nil
}

// Insert prepends a new quote, keeping the list most-recent-first.
// Untouched records keep whatever stored shape they already had.
func (r *Registry) Insert(ctx context.Context, q Quote) error {
	records, err := kv.LoadRecords[StoredQuote](ctx, r.store, storageKey)
	if err != nil {
		return err
	}
	records = append([]StoredQuote{stored(q)}, records...)
	return kv.SaveRecords(ctx, r.store, storageKey, records)
}

// Update replaces the record with a matching id in place; the list order and
// length never change. An unknown id leaves the list as it was.
func (r *Registry) Update(ctx context.Context, q Quote) error {
	records, err := kv.LoadRecords[StoredQuote](ctx, r.store, storageKey)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == q.ID {
			records[i] = stored(q)
		}
	}
	return kv.SaveRecords(ctx, r.store, storageKey, records)
}

// Search filters quotes; every supplied dimension must match. The name
// filter is a case-insensitive substring of all client names joined with
// spaces, day and month compare zero-padded components of the stored date,
// the year filter is a substring of the year component. Empty filters match
// everything.
func (r *Registry) Search(ctx context.Context, name, day, month, year string) ([]Quote, error) {
	quotes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	nameQ := strings.ToLower(name)
	matched := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		names := make([]string, len(q.Clients))
		for i, c := range q.Clients {
			names[i] = strings.ToLower(c.Name)
		}
		if !strings.Contains(strings.Join(names, " "), nameQ) {
			continue
		}
		d, m, y := splitStoredDate(q.Date)
		if day != "" && d != padTwo(day) {
			continue
		}
		if month != "" && m != padTwo(month) {
			continue
		}
		if year != "" && !strings.Contains(y, year) {
			continue
		}
		matched = append(matched, q)
	}
	return matched, nil
}

func splitStoredDate(date string) (day, month, year string) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return "", "", ""
	}
	return parts[0], parts[1], parts[2]
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
