package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	SQLitePath      string
	CORSAllowOrigin string
}

func MustLoad() Config {
	// Local deployments keep their settings in a .env file; absence is fine.
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DatabaseURL:     env("DATABASE_URL", ""),
		SQLitePath:      env("SQLITE_PATH", "urh.db"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
