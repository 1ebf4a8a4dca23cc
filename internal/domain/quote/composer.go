package quote

import (
	"context"
	"errors"
	"slices"
	"time"

	"eco-urh/go_backend/internal/domain/client"
	"eco-urh/go_backend/internal/domain/confirm"
)

// ErrNoClients rejects saving a quote with no client attached.
var ErrNoClients = errors.New("selecciona al menos un cliente")

// Composer is the edit buffer for one quote. Every mutation replaces the
// affected slices instead of writing through them, so snapshots taken
// between edits stay stable.
type Composer struct {
	id       int64 // 0 until the first save mints one
	clients  []client.Client
	sections []Section
	editDate string // YYYY-MM-DD
	now      func() time.Time
}

// NewComposer opens an edit buffer, seeded from an existing record or from
// defaults. Legacy records are unfolded here as well: a singular client
// becomes the selection, a flat item list becomes one PRODUCTOS section.
func NewComposer(existing *StoredQuote) *Composer {
	return newComposerAt(existing, time.Now)
}

func newComposerAt(existing *StoredQuote, now func() time.Time) *Composer {
	c := &Composer{now: now}
	if existing != nil {
		c.id = existing.ID
		switch {
		case existing.Clients != nil:
			c.clients = slices.Clone(existing.Clients)
		case existing.Client != nil:
			c.clients = []client.Client{*existing.Client}
		}
		switch {
		case existing.Sections != nil:
			c.sections = cloneSections(existing.Sections)
		case existing.Items != nil:
			c.sections = []Section{{Title: "PRODUCTOS", Items: slices.Clone(existing.Items)}}
		}
		c.editDate = ToWidgetDate(existing.Date)
	}
	if c.sections == nil {
		c.sections = []Section{{Title: "PRODUCTOS", Items: []Item{{}}}}
	}
	if c.editDate == "" {
		c.editDate = now().Format("2006-01-02")
	}
	return c
}

func cloneSections(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = Section{Title: s.Title, Items: slices.Clone(s.Items)}
	}
	return out
}

// Clients returns the current selection.
func (c *Composer) Clients() []client.Client { return slices.Clone(c.clients) }

// Sections returns the current section list.
func (c *Composer) Sections() []Section { return cloneSections(c.sections) }

// EditDate returns the date in widget format (YYYY-MM-DD).
func (c *Composer) EditDate() string { return c.editDate }

// SetDate replaces the edit date (widget format).
func (c *Composer) SetDate(widgetDate string) { c.editDate = widgetDate }

// AddClient attaches a client to the quote. Adding an id that is already
// selected changes nothing.
func (c *Composer) AddClient(cl client.Client) {
	for _, existing := range c.clients {
		if existing.ID == cl.ID {
			return
		}
	}
	c.clients = append(slices.Clone(c.clients), cl)
}

// RemoveClient detaches a client by id.
func (c *Composer) RemoveClient(id int64) {
	kept := make([]client.Client, 0, len(c.clients))
	for _, cl := range c.clients {
		if cl.ID != id {
			kept = append(kept, cl)
		}
	}
	c.clients = kept
}

// AddSection appends an empty category with one blank item.
func (c *Composer) AddSection() {
	c.sections = append(cloneSections(c.sections), Section{Items: []Item{{}}})
}

// RemoveSection drops the category at index once the confirmer approves.
// It reports whether the section was removed.
func (c *Composer) RemoveSection(index int, conf confirm.Confirmer) bool {
	if index < 0 || index >= len(c.sections) {
		return false
	}
	if !conf.Confirm("¿Eliminar esta categoría?") {
		return false
	}
	c.sections = append(cloneSections(c.sections[:index]), cloneSections(c.sections[index+1:])...)
	return true
}

// RenameSection changes the title of the category at index.
func (c *Composer) RenameSection(index int, title string) {
	if index < 0 || index >= len(c.sections) {
		return
	}
	next := cloneSections(c.sections)
	next[index].Title = title
	c.sections = next
}

// AddItem appends a blank item to the category at index.
func (c *Composer) AddItem(section int) {
	if section < 0 || section >= len(c.sections) {
		return
	}
	next := cloneSections(c.sections)
	next[section].Items = append(next[section].Items, Item{})
	c.sections = next
}

// SetItemDescription updates one item's description.
func (c *Composer) SetItemDescription(section, item int, description string) {
	c.editItem(section, item, func(it *Item) { it.Description = description })
}

// SetItemPrice updates one item's price from raw widget input, coercing
// non-numeric text to zero.
func (c *Composer) SetItemPrice(section, item int, raw string) {
	c.editItem(section, item, func(it *Item) { it.Price = ParsePrice(raw) })
}

func (c *Composer) editItem(section, item int, apply func(*Item)) {
	if section < 0 || section >= len(c.sections) {
		return
	}
	if item < 0 || item >= len(c.sections[section].Items) {
		return
	}
	next := cloneSections(c.sections)
	apply(&next[section].Items[item])
	c.sections = next
}

// RemoveItem drops one item from a category. The remaining items keep
// their order.
func (c *Composer) RemoveItem(section, item int) {
	if section < 0 || section >= len(c.sections) {
		return
	}
	if item < 0 || item >= len(c.sections[section].Items) {
		return
	}
	next := cloneSections(c.sections)
	next[section].Items = append(slices.Clone(next[section].Items[:item]), next[section].Items[item+1:]...)
	c.sections = next
}

// Total sums every item price across every section. It is recomputed on
// every call; nothing caches it while editing.
func (c *Composer) Total() float64 {
	var total float64
	for _, s := range c.sections {
		for _, it := range s.Items {
			total += it.Price
		}
	}
	return total
}

// PrintDate is the long display form of the edit date, or "" while the date
// is invalid.
func (c *Composer) PrintDate() string { return LongDate(c.editDate) }

// Snapshot exposes the live edit state for preview and export; the total is
// freshly computed.
func (c *Composer) Snapshot() Snapshot {
	return Snapshot{
		Clients:  c.Clients(),
		Sections: c.Sections(),
		Total:    c.Total(),
		Date:     c.PrintDate(),
	}
}

// Save validates the buffer, rebuilds the canonical record and hands it to
// the registry: edits replace their record in place, new quotes go to the
// front of the list. The store is updated before Save returns.
func (c *Composer) Save(ctx context.Context, reg *Registry) (Quote, error) {
	if len(c.clients) == 0 {
		return Quote{}, ErrNoClients
	}
	q := Quote{
		ID:       c.id,
		Date:     ToStoredDate(c.editDate),
		Clients:  c.Clients(),
		Sections: c.Sections(),
		Total:    c.Total(),
	}
	if c.id == 0 {
		q.ID = c.now().UnixMilli()
		if err := reg.Insert(ctx, q); err != nil {
			return Quote{}, err
		}
	} else {
		if err := reg.Update(ctx, q); err != nil {
			return Quote{}, err
		}
	}
	return q, nil
}
