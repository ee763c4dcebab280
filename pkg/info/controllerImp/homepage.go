package controllerImp

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"agriedu/config"
	"agriedu/entities"
	"agriedu/pkg/catalog"
)

var homeTmpl = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>AgriEdu AI Suite v{{.Version}}</title>
  <style>
    body { font-family: 'Segoe UI', Tahoma, sans-serif; background: #203a43; color: #fff; margin: 0; padding: 40px; }
    .container { max-width: 900px; margin: 0 auto; text-align: center; }
    .stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 16px; margin: 32px 0; }
    .stat { background: rgba(255,255,255,0.06); padding: 20px; border-radius: 12px; border-left: 4px solid #4CAF50; }
    .btn { display: inline-block; margin: 6px; padding: 14px 24px; border-radius: 12px; color: #fff; background: rgba(76,175,80,0.3); text-decoration: none; }
    .note { opacity: 0.7; font-size: 0.9rem; }
  </style>
</head>
<body>
  <div class="container">
    <h1>AgriEdu AI Suite</h1>
    <p class="tagline">AI platform for smart agriculture and education</p>
    <div class="stats">
      <div class="stat" id="stat-analyses"><h3>Analyses</h3><p>{{.Stats.TotalAnalyses}}</p></div>
      <div class="stat" id="stat-farmers"><h3>Farmers</h3><p>{{.Stats.TotalFarmers}}</p></div>
      <div class="stat" id="stat-courses"><h3>Courses</h3><p>{{.Stats.ActiveCourses}}</p></div>
      <div class="stat" id="stat-crops"><h3>Crops</h3><p>{{.Crops}}</p></div>
    </div>
    <nav class="buttons">
      <a class="btn" href="/api/health">Health Check</a>
      <a class="btn" href="/api/regions">Regions</a>
      <a class="btn" href="/api/lessons">Lessons</a>
      <a class="btn" href="/api/dashboard/stats">Dashboard</a>
      <a class="btn" href="/metrics">Metrics</a>
    </nav>
    <p class="note">Diagnoses and yield figures are simulated for demonstration.</p>
    <footer class="note">Hackathon "Zabe Technologies" 2026 | Kyrgyz National University named after J. Balasagyn</footer>
  </div>
</body>
</html>
`))

type homeView struct {
	Version string
	Stats   entities.DashboardStats
	Crops   int
}

// Home renders the landing page.
func (h *InfoCtrl) Home(c echo.Context) error {
	var buf bytes.Buffer
	err := homeTmpl.Execute(&buf, homeView{
		Version: config.Version,
		Stats:   catalog.Dashboard(),
		Crops:   len(catalog.Plants()),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
