package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agriedu/pkg/journal/controller"
	"agriedu/pkg/journal/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type journalCtrl struct{ repo repository.JournalRepository }

func New(repo repository.JournalRepository) controller.JournalController { return &journalCtrl{repo} }

func (h *journalCtrl) History(c echo.Context) error {
	limit := defaultHistoryLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a positive integer"})
		}
		limit = min(n, maxHistoryLimit)
	}

	ctx := c.Request().Context()
	entries, err := h.repo.Recent(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	totals, err := h.repo.CountByKind(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(entries),
		"totals":  totals,
		"entries": entries,
	})
}
