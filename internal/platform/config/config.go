package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	DatabaseURL string
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file in the working directory is honored when present.
// The database URL is the one value without a default: the service cannot
// run without its store, so the caller must treat an error here as fatal.
func FromEnv() (Server, error) {
	_ = godotenv.Load()

	addr := os.Getenv("CAPTURA_ADDR")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":4000"
		}
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return Server{}, fmt.Errorf("DATABASE_URL is not set")
	}

	return Server{
		Addr:        addr,
		DatabaseURL: databaseURL,
	}, nil
}
