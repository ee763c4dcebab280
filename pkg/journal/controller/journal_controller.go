package controller

import "github.com/labstack/echo/v4"

type JournalController interface {
	History(c echo.Context) error
}
