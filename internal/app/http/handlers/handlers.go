package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"eco-urh/go_backend/internal/app/config"
	"eco-urh/go_backend/internal/domain/client"
	"eco-urh/go_backend/internal/domain/quote"
	"eco-urh/go_backend/internal/domain/quote/pdf"
	pdfgen "eco-urh/go_backend/internal/domain/quote/pdf/gofpdf"
	"eco-urh/go_backend/internal/infra/kv"
)

type Handlers struct {
	Clients *client.Registry
	Quotes  *quote.Registry
	PDF     pdf.Generator
	Cfg     config.Config
}

func New(store kv.Store, cfg config.Config) *Handlers {
	return &Handlers{
		Clients: client.NewRegistry(store),
		Quotes:  quote.NewRegistry(store),
		PDF:     pdfgen.New(),
		Cfg:     cfg,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
