package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"eco-urh/go_backend/internal/app/config"
	apphttp "eco-urh/go_backend/internal/app/http"
	"eco-urh/go_backend/internal/infra/kv"
	"eco-urh/go_backend/internal/infra/kv/postgres"
	"eco-urh/go_backend/internal/infra/kv/sqlite"
)

func Run() {
	cfg := config.MustLoad()

	var store kv.Store
	if cfg.DatabaseURL != "" {
		pg, err := postgres.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pg.Close()
		store = pg
	} else {
		db, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()
		store = db
	}

	router := apphttp.NewRouter(cfg, store)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
