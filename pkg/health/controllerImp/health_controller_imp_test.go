package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriedu/config"
	"agriedu/database"
	"agriedu/pkg/ai"
)

func doHealth(t *testing.T, h *HealthCtrl) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/health", nil), rec)
	require.NoError(t, h.Health(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealth_Healthy(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	rec, body := doHealth(t, NewHealthCtrl(db, ai.NewMock(), ai.NewTrainer(0), "test"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "AgriEdu-AI-2.0", rec.Header().Get("X-Health-Check"))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, config.Version, body["version"])
	assert.Equal(t, "test", body["environment"])
	checks := body["checks"].(map[string]any)
	assert.Equal(t, true, checks["database"].(map[string]any)["ok"])
	assert.Equal(t, true, checks["model"].(map[string]any)["ok"])
}

func TestHealth_NoDatabase(t *testing.T) {
	rec, body := doHealth(t, NewHealthCtrl(nil, ai.NewMock(), nil, "test"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", body["status"])
	db := body["checks"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, false, db["ok"])
	assert.Equal(t, "gorm db is nil", db["err"])
}

func TestHealth_ClosedDatabase(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec, _ := doHealth(t, NewHealthCtrl(db, ai.NewMock(), nil, "test"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
