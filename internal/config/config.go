package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr     string
	ServiceName  string
	Env          string
	ConfirmDelay time.Duration
	SeedCatalog  bool
}

// Load reads configuration from the environment, applying .env when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":3000"),
		ServiceName:  getenv("SERVICE_NAME", "farmchain"),
		Env:          getenv("ENV", "dev"),
		ConfirmDelay: getduration("CONFIRM_DELAY", time.Second),
		SeedCatalog:  getenv("SEED_CATALOG", "true") == "true",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
