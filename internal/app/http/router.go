package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"eco-urh/go_backend/internal/app/config"
	"eco-urh/go_backend/internal/app/http/handlers"
	"eco-urh/go_backend/internal/app/http/middleware"
	"eco-urh/go_backend/internal/infra/kv"
)

func NewRouter(cfg config.Config, store kv.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(store, cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.ListClients)
			r.Post("/", h.CreateClient)
			r.Delete("/{id}", h.DeleteClient)
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", h.ListQuotes)
			r.Post("/", h.SaveQuote)
			r.Post("/preview", h.QuotePreview)
			r.Post("/pdf", h.DraftPDF)
			r.Get("/{id}", h.GetQuote)
			r.Get("/{id}/pdf", h.QuotePDF)
		})
	})

	return r
}
