package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"eco-urh/go_backend/internal/domain/client"
	"eco-urh/go_backend/internal/domain/confirm"
)

type createClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	var (
		clients []client.Client
		err     error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		clients, err = h.Clients.Search(r.Context(), q)
	} else {
		clients, err = h.Clients.List(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if clients == nil {
		clients = []client.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *Handlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	c, err := h.Clients.Create(r.Context(), req.Name, req.Email, req.Phone)
	if errors.Is(err, client.ErrMissingFields) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad id")
		return
	}
	// The ?confirm=true flag plays the role of the confirmation dialog.
	conf := confirm.Func(func(string) bool {
		return r.URL.Query().Get("confirm") == "true"
	})
	err = h.Clients.Delete(r.Context(), id, conf)
	if errors.Is(err, client.ErrNotConfirmed) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
