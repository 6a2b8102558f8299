package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	Timezone      string
	DBPath        string
	AIEndpoint    string
	AIAPIKey      string
	AIModel       string
	LabelDomains  string
	MaxLabelBytes int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	maxBytes := 1500000
	if v, err := strconv.Atoi(get("LABEL_MAX_BYTES", "")); err == nil && v > 0 {
		maxBytes = v
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		Timezone:      get("TZ", "America/Chicago"),
		DBPath:        get("DB_PATH", "farmops.db"),
		AIEndpoint:    get("AI_ENDPOINT", ""),
		AIAPIKey:      get("AI_API_KEY", ""),
		AIModel:       get("AI_MODEL", "gpt-4o-mini"),
		LabelDomains:  get("LABEL_ALLOWED_DOMAINS", ""),
		MaxLabelBytes: maxBytes,
	}
	log.Printf("[cfg] port=%s db=%s ai_model=%s", cfg.Port, cfg.DBPath, cfg.AIModel)
	return cfg
}
