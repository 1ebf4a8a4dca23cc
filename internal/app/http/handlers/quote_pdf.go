package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"eco-urh/go_backend/internal/domain/client"
	"eco-urh/go_backend/internal/domain/quote"
)

// QuotePDF exports a saved quote as the printable document.
func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
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
	h.servePDF(w, q.Snapshot(), q.Clients)
}

// DraftPDF exports the live edit buffer without saving it, the download
// button of the edit screen. A draft with no clients cannot be exported.
func (h *Handlers) DraftPDF(w http.ResponseWriter, r *http.Request) {
	var req saveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	c := req.composer()
	clients := c.Clients()
	if len(clients) == 0 {
		writeError(w, http.StatusBadRequest, quote.ErrNoClients.Error())
		return
	}
	h.servePDF(w, c.Snapshot(), clients)
}

func (h *Handlers) servePDF(w http.ResponseWriter, s quote.Snapshot, clients []client.Client) {
	pdfBytes, err := h.PDF.Generate(s)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", safeFileName(clients)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

// safeFileName builds the download name from the first client, keeping only
// plain characters and replacing spaces with underscores.
func safeFileName(clients []client.Client) string {
	name := "Cotizacion"
	if len(clients) > 0 && clients[0].Name != "" {
		name = clients[0].Name
	}
	name = unsafeFileChars.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, " ", "_") + ".pdf"
}
