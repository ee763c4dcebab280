package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriedu/pkg/ai"
)

func newInfo(t *testing.T) (*InfoCtrl, *ai.Trainer) {
	t.Helper()
	tr := ai.NewTrainer(10 * time.Millisecond)
	h := NewInfoCtrl(context.Background(), tr)
	h.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return h, tr
}

func serve(t *testing.T, fn echo.HandlerFunc, method string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, fn(e.NewContext(httptest.NewRequest(method, "/", nil), rec)))
	return rec
}

func TestRegions(t *testing.T) {
	h, _ := newInfo(t)
	rec := serve(t, h.Regions, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Regions []struct{ ID, Name, Climate string } `json:"regions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Regions, 7)
	assert.Equal(t, "jalal_abad", body.Regions[6].ID)
	assert.Equal(t, "Subtropical", body.Regions[6].Climate)
}

func TestDashboardStats_Constant(t *testing.T) {
	h, _ := newInfo(t)
	first := serve(t, h.DashboardStats, http.MethodGet).Body.String()
	second := serve(t, h.DashboardStats, http.MethodGet).Body.String()
	assert.Equal(t, first, second)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(first), &body))
	assert.Equal(t, float64(1250), body["total_analyses"])
	assert.Equal(t, "23.5%", body["avg_yield_increase"])
	assert.Equal(t, "2026-01-02T03:04:05Z", body["last_updated"])
}

func TestTrainModel(t *testing.T) {
	h, tr := newInfo(t)
	rec := serve(t, h.TrainModel, http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "training_started", body["status"])
	assert.Equal(t, "TRAIN_20260102_030405", body["training_id"])

	tr.Wait()
	assert.Equal(t, 0, tr.Running())
}

func TestTestAndInfo(t *testing.T) {
	h, _ := newInfo(t)
	assert.Contains(t, serve(t, h.Test, http.MethodGet).Body.String(), "AgriEdu API is working!")
	assert.Contains(t, serve(t, h.Info, http.MethodGet).Body.String(), `"tomato":"Tomato"`)
}

func TestHome(t *testing.T) {
	h, _ := newInfo(t)
	rec := serve(t, h.Home, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, "AgriEdu AI Suite v2.0.0", strings.TrimSpace(doc.Find("title").Text()))
	assert.Equal(t, "1250", strings.TrimSpace(doc.Find("#stat-analyses p").Text()))
	assert.Equal(t, "6", strings.TrimSpace(doc.Find("#stat-crops p").Text()))

	var links []string
	doc.Find("nav a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		links = append(links, href)
	})
	assert.Contains(t, links, "/api/health")
	assert.Contains(t, links, "/api/regions")
}
