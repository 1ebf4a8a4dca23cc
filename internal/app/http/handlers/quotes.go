package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"eco-urh/go_backend/internal/domain/client"
	"eco-urh/go_backend/internal/domain/quote"
)

// saveQuoteRequest mirrors the edit form: the date arrives in widget format
// (YYYY-MM-DD), clients are embedded by value, id 0 means a new quote.
type saveQuoteRequest struct {
	ID       int64           `json:"id,omitempty"`
	Date     string          `json:"date"`
	Clients  []client.Client `json:"clients"`
	Sections []quote.Section `json:"sections"`
}

func (req saveQuoteRequest) composer() *quote.Composer {
	c := quote.NewComposer(&quote.StoredQuote{
		ID:       req.ID,
		Clients:  req.Clients,
		Sections: req.Sections,
	})
	if req.Date != "" {
		c.SetDate(req.Date)
	}
	return c
}

func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	quotes, err := h.Quotes.Search(r.Context(), q.Get("name"), q.Get("day"), q.Get("month"), q.Get("year"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad id")
		return
	}
	q, ok, err := h.Quotes.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "presupuesto no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) SaveQuote(w http.ResponseWriter, r *http.Request) {
	var req saveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	q, err := req.composer().Save(r.Context(), h.Quotes)
	if errors.Is(err, quote.ErrNoClients) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, q)
}
