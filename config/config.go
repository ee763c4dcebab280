package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	ServiceName = "AgriEdu AI Suite"
	Version     = "2.0.0"
)

type AppConfig struct {
	Port          string
	Env           string
	DBPath        string
	MaxUploadMB   int
	CORSOrigins   []string
	FrontendPort  string
	FrontendDir   string
	TrainingDelay time.Duration
}

// MaxUploadBytes is the analyze-plant upload limit in bytes.
func (c AppConfig) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) << 20 }

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("[cfg] no .env file loaded")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup func so tests can feed fixed values.
func FromEnv(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	maxMB, err := strconv.Atoi(get("MAX_UPLOAD_MB", "10"))
	if err != nil || maxMB <= 0 {
		maxMB = 10
	}
	delay, err := time.ParseDuration(get("TRAINING_DELAY", "5s"))
	if err != nil || delay < 0 {
		delay = 5 * time.Second
	}

	var origins []string
	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return AppConfig{
		Port:          get("PORT", "8000"),
		Env:           get("APP_ENV", "development"),
		DBPath:        get("DB_PATH", ":memory:"),
		MaxUploadMB:   maxMB,
		CORSOrigins:   origins,
		FrontendPort:  get("FRONTEND_PORT", "5600"),
		FrontendDir:   get("FRONTEND_DIR", "."),
		TrainingDelay: delay,
	}
}
