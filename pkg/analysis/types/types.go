package types

import "agriedu/entities"

// PlantAnalysis is the analyze-plant response: the diagnosis flattened
// together with request metadata.
type PlantAnalysis struct {
	Success bool `json:"success"`
	entities.DiagnosisResult
	Location       string   `json:"location,omitempty"`
	RegionalAdvice []string `json:"regional_advice,omitempty"`
	AnalysisID     string   `json:"analysis_id"` // ANALYSIS_YYYYMMDD_HHMMSS
	Timestamp      string   `json:"timestamp"`
}

type YieldPrediction struct {
	entities.YieldEstimate
	SoilType            string   `json:"soil_type,omitempty"`
	SoilRecommendations []string `json:"soil_recommendations,omitempty"`
	PredictionID        string   `json:"prediction_id"` // YIELD_YYYYMMDD_HHMMSS
}
