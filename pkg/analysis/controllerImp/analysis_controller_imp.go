package controllerImp

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"agriedu/pkg/ai"
	"agriedu/pkg/analysis/controller"
	"agriedu/pkg/analysis/service"
	"agriedu/pkg/catalog"
)

type analysisCtrl struct {
	s        service.AnalysisService
	maxBytes int64
}

func New(s service.AnalysisService, maxUploadBytes int64) controller.AnalysisController {
	return &analysisCtrl{s: s, maxBytes: maxUploadBytes}
}

func (h *analysisCtrl) AnalyzePlant(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file is required"})
	}
	if fh.Size > h.maxBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": h.tooLarge()})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot read upload: " + err.Error()})
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot read upload: " + err.Error()})
	}
	if int64(len(raw)) > h.maxBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": h.tooLarge()})
	}

	plantType := strings.TrimSpace(c.FormValue("plant_type"))
	if plantType == "" {
		plantType = catalog.DefaultCrop
	}

	out, err := h.s.AnalyzePlant(c.Request().Context(), raw, plantType, c.FormValue("location"))
	if err != nil {
		if errors.Is(err, ai.ErrDecode) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "uploaded file is not a valid image"})
		}
		log.Error().Err(err).Msg("analyze plant")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "analysis failed: " + err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *analysisCtrl) tooLarge() string {
	return fmt.Sprintf("file too large (max %d MB)", h.maxBytes>>20)
}

func (h *analysisCtrl) PredictYield(c echo.Context) error {
	crop := strings.TrimSpace(c.QueryParam("crop"))
	if crop == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "crop is required"})
	}
	area, err := strconv.ParseFloat(c.QueryParam("area"), 64)
	if err != nil || !(area > 0) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "area must be a positive number"})
	}

	out, err := h.s.PredictYield(c.Request().Context(), crop, area, c.QueryParam("region"), c.QueryParam("soil_type"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
