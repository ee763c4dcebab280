package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"agriedu/entities"
	"agriedu/pkg/ai"
	"agriedu/pkg/analysis/service"
	"agriedu/pkg/analysis/types"
	"agriedu/pkg/catalog"
	journal "agriedu/pkg/journal/repository"
	"agriedu/pkg/metrics"
)

var ErrInvalidArea = errors.New("area must be a positive number")

type analysisSvc struct {
	advisor ai.Advisor
	journal journal.JournalRepository
	now     func() time.Time
}

func NewAnalysisService(advisor ai.Advisor, j journal.JournalRepository) service.AnalysisService {
	return &analysisSvc{advisor: advisor, journal: j, now: time.Now}
}

func (s *analysisSvc) AnalyzePlant(ctx context.Context, image []byte, plantType, location string) (*types.PlantAnalysis, error) {
	res, err := s.advisor.Diagnose(image, plantType)
	if err != nil {
		if errors.Is(err, ai.ErrDecode) {
			metrics.ObserveDecodeFailure()
		}
		return nil, err
	}

	now := s.now()
	out := &types.PlantAnalysis{
		Success:         true,
		DiagnosisResult: *res,
		AnalysisID:      "ANALYSIS_" + now.Format("20060102_150405"),
		Timestamp:       now.Format(time.RFC3339),
	}
	if location = strings.TrimSpace(location); location != "" {
		out.Location = location
		out.RegionalAdvice = catalog.RegionalAdvice(location)
	}

	metrics.ObserveDiagnosis(cropLabel(plantType), res.Severity)
	s.record(ctx, &entities.JournalEntry{
		Kind:       entities.JournalDiagnosis,
		RefID:      out.AnalysisID,
		Crop:       res.PlantType,
		Region:     out.Location,
		Outcome:    res.Disease,
		Confidence: res.Confidence,
	})
	return out, nil
}

func (s *analysisSvc) PredictYield(ctx context.Context, crop string, area float64, region, soilType string) (*types.YieldPrediction, error) {
	if !(area > 0) || math.IsInf(area, 1) {
		return nil, ErrInvalidArea
	}

	est := s.advisor.EstimateYield(crop, area, region)
	// huge areas overflow the product; +Inf has no JSON encoding
	if math.IsInf(est.PredictedYieldTons, 0) || math.IsNaN(est.PredictedYieldTons) {
		return nil, ErrInvalidArea
	}
	out := &types.YieldPrediction{
		YieldEstimate: *est,
		PredictionID:  "YIELD_" + s.now().Format("20060102_150405"),
	}
	if soilType = strings.TrimSpace(soilType); soilType != "" {
		out.SoilType = soilType
		out.SoilRecommendations = catalog.SoilAdvice(soilType, crop)
	}

	metrics.ObserveYield(cropLabel(crop))
	s.record(ctx, &entities.JournalEntry{
		Kind:       entities.JournalYield,
		RefID:      out.PredictionID,
		Crop:       est.Crop,
		Region:     est.Region,
		Outcome:    fmt.Sprintf("%.2f t", est.PredictedYieldTons),
		Confidence: est.Confidence,
	})
	return out, nil
}

// record never fails the request; the journal is best-effort.
func (s *analysisSvc) record(ctx context.Context, e *entities.JournalEntry) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Create(ctx, e); err != nil {
		log.Warn().Err(err).Str("ref_id", e.RefID).Msg("journal write failed")
	}
}

// cropLabel bounds metric label values to the known catalog.
func cropLabel(code string) string {
	code = strings.TrimSpace(strings.ToLower(code))
	if code == "" {
		return catalog.DefaultCrop
	}
	if catalog.KnownCrop(code) {
		return code
	}
	return "other"
}
