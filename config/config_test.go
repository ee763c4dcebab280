package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv(envOf(nil))

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes())
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "5600", cfg.FrontendPort)
	assert.Equal(t, ".", cfg.FrontendDir)
	assert.Equal(t, 5*time.Second, cfg.TrainingDelay)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{
		"PORT":           "9090",
		"APP_ENV":        "production",
		"DB_PATH":        "journal.db",
		"MAX_UPLOAD_MB":  "2",
		"CORS_ORIGINS":   "http://localhost:5600, https://agriedu.kg ,",
		"TRAINING_DELAY": "250ms",
	}))

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "journal.db", cfg.DBPath)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes())
	assert.Equal(t, []string{"http://localhost:5600", "https://agriedu.kg"}, cfg.CORSOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.TrainingDelay)
}

func TestFromEnv_InvalidNumbersFallBack(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{
		"MAX_UPLOAD_MB":  "-3",
		"TRAINING_DELAY": "soon",
	}))

	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.Equal(t, 5*time.Second, cfg.TrainingDelay)
}
