package service

import (
	"context"

	"agriedu/pkg/analysis/types"
)

type AnalysisService interface {
	// AnalyzePlant returns ai.ErrDecode-matching errors for non-images.
	AnalyzePlant(ctx context.Context, image []byte, plantType, location string) (*types.PlantAnalysis, error)
	// PredictYield expects area > 0; the controller rejects anything else.
	PredictYield(ctx context.Context, crop string, area float64, region, soilType string) (*types.YieldPrediction, error)
}
