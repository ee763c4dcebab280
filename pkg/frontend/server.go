// Package frontend serves the compiled single-page front-end bundle.
package frontend

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agriedu/pkg/middleware"
)

// New returns an echo instance serving root. "/" and any path that does not
// name an existing file resolve to root/index.html, so client-side routes
// survive a reload. Caching is disabled on every response.
func New(root string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog())
	e.Use(middleware.NoCache())
	e.Use(echoMiddleware.StaticWithConfig(echoMiddleware.StaticConfig{
		Root:  root,
		Index: "index.html",
		HTML5: true,
	}))
	return e
}
