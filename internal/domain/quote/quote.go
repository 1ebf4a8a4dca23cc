package quote

import "eco-urh/go_backend/internal/domain/client"

// Item is one described, priced line inside a section.
type Item struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Section groups items under a category label ("MATERIALES", "MANO DE OBRA").
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Quote is the canonical record shape. Date is stored as DD/MM/YYYY and
// Total is the denormalized sum of all item prices, recomputed on save.
type Quote struct {
	ID       int64           `json:"id"`
	Date     string          `json:"date"`
	Clients  []client.Client `json:"clients"`
	Sections []Section       `json:"sections"`
	Total    float64         `json:"total"`
}

// StoredQuote is what actually sits in the store: the current shape plus the
// two fields of the pre-section era, a single client and a flat item list.
// Old records are upgraded on every read and only rewritten in the current
// shape when the quote itself is re-saved.
type StoredQuote struct {
	ID       int64           `json:"id"`
	Date     string          `json:"date"`
	Clients  []client.Client `json:"clients,omitempty"`
	Sections []Section       `json:"sections,omitempty"`
	Total    float64         `json:"total"`
	Client   *client.Client  `json:"client,omitempty"`
	Items    []Item          `json:"items,omitempty"`
}

// Upgrade converts a stored record to the current shape. Records already in
// the current shape pass through unchanged, so applying it twice is the same
// as applying it once.
func (s StoredQuote) Upgrade() Quote {
	q := Quote{
		ID:       s.ID,
		Date:     s.Date,
		Clients:  s.Clients,
		Sections: s.Sections,
		Total:    s.Total,
	}
	if q.Clients == nil {
		if s.Client != nil {
			q.Clients = []client.Client{*s.Client}
		} else {
			q.Clients = []client.Client{}
		}
	}
	if q.Sections == nil {
		if s.Items != nil {
			q.Sections = []Section{{Title: "General", Items: s.Items}}
		} else {
			q.Sections = []Section{}
		}
	}
	return q
}

func stored(q Quote) StoredQuote {
	return StoredQuote{
		ID:       q.ID,
		Date:     q.Date,
		Clients:  q.Clients,
		Sections: q.Sections,
		Total:    q.Total,
	}
}

// Snapshot is the field set both renderers consume: the HTML preview and the
// PDF document show exactly this, in this order.
type Snapshot struct {
	Clients  []client.Client
	Sections []Section
	Total    float64
	Date     string
}

// Snapshot prepares a saved quote for rendering, with the date in its
// long display form.
func (q Quote) Snapshot() Snapshot {
	return Snapshot{
		Clients:  q.Clients,
		Sections: q.Sections,
		Total:    q.Total,
		Date:     LongDate(ToWidgetDate(q.Date)),
	}
}
