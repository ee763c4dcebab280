package controller

import "github.com/labstack/echo/v4"

type AnalysisController interface {
	AnalyzePlant(c echo.Context) error
	PredictYield(c echo.Context) error
}
