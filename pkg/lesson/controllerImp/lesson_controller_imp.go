package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agriedu/pkg/catalog"
	"agriedu/pkg/lesson/controller"
	"agriedu/pkg/lesson/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type lessonCtrl struct{ s service.LessonService }

func New(s service.LessonService) controller.LessonController { return &lessonCtrl{s} }

func (h *lessonCtrl) List(c echo.Context) error {
	limit := service.DefaultLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a positive integer"})
		}
		limit = n
	}
	category := c.QueryParam("category")
	if category == "" {
		category = catalog.DefaultCategory
	}
	return c.JSON(http.StatusOK, h.s.List(category, c.QueryParam("level"), limit))
}

func (h *lessonCtrl) Export(c echo.Context) error {
	category := c.QueryParam("category")
	buf, err := h.s.ExportXLSX(category, c.QueryParam("level"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	name := "lessons.xlsx"
	if category != "" {
		name = fmt.Sprintf("lessons_%s.xlsx", category)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
