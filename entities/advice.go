package entities

import "strconv"

// Percent is an integer percentage that serializes as "NN%".
type Percent int

func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.Itoa(int(p)) + "%")), nil
}

// DiagnosisResult is produced per request and never stored as-is.
// None of the values come from inference; see ai.Advisor.
type DiagnosisResult struct {
	PlantType    string   `json:"plant_type"`
	Disease      string   `json:"disease"`
	Confidence   float64  `json:"confidence"` // [0.75, 0.98]
	Treatment    string   `json:"treatment"`
	Prevention   []string `json:"prevention"`
	Heatmap      string   `json:"heatmap"`  // base64(JSON [][]int)
	Severity     string   `json:"severity"` // Low|Medium|High
	AffectedArea Percent  `json:"affected_area"`
}

type YieldEstimate struct {
	Crop               string   `json:"crop"`
	AreaHectares       float64  `json:"area_hectares"`
	Region             string   `json:"region"`
	PredictedYieldTons float64  `json:"predicted_yield_tons"`
	Confidence         float64  `json:"confidence"` // [0.70, 0.95]
	Recommendations    []string `json:"recommendations"`
}
