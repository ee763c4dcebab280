// pkg/ai/mock_client.go

package ai

import (
	"math"
	"math/rand/v2"
	"strings"

	"agriedu/entities"
	"agriedu/pkg/catalog"
)

// Rand is the subset of *rand.Rand the mock draws from.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// globalRand uses the goroutine-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

var severities = []string{"Low", "Medium", "High"}

// mockClient is NOT a model. It decodes the photo to prove it is an image,
// then returns a random label from the crop's catalog with a random
// confidence. Yield numbers are a closed-form product with random noise.
type mockClient struct {
	rnd Rand
}

type Option func(*mockClient)

// WithRand replaces the random source. A *rand.Rand is not safe for
// concurrent use; only pass one from single-goroutine code such as tests.
func WithRand(r Rand) Option {
	return func(m *mockClient) { m.rnd = r }
}

func NewMock(opts ...Option) Advisor {
	m := &mockClient{rnd: globalRand{}}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *mockClient) Ready() bool { return true }

func (m *mockClient) Diagnose(raw []byte, cropType string) (*entities.DiagnosisResult, error) {
	canvas, err := preprocess(raw)
	if err != nil {
		return nil, err
	}

	crop := normalizeCrop(cropType)
	candidates := catalog.Diseases(crop)
	disease := candidates[m.rnd.IntN(len(candidates))]

	heatmap, err := encodeHeatmap(heatmapGrid(m.rnd, canvas.Bounds()))
	if err != nil {
		return nil, err
	}

	return &entities.DiagnosisResult{
		PlantType:    catalog.PlantName(crop),
		Disease:      disease,
		Confidence:   round2(uniform(m.rnd, 0.75, 0.98)),
		Treatment:    catalog.Treatment(disease),
		Prevention:   catalog.Prevention(disease),
		Heatmap:      heatmap,
		Severity:     severities[m.rnd.IntN(len(severities))],
		AffectedArea: entities.Percent(intBetween(m.rnd, 5, 80)),
	}, nil
}

func (m *mockClient) EstimateYield(crop string, areaHectares float64, region string) *entities.YieldEstimate {
	crop = strings.TrimSpace(strings.ToLower(crop))
	region = strings.TrimSpace(region)

	base := catalog.BaseYield(crop)
	factor := catalog.RegionFactor(region)
	noise := uniform(m.rnd, 0.85, 1.15)
	predicted := round2(base * areaHectares * factor * noise)

	perHa := 0.0
	if areaHectares > 0 {
		perHa = predicted / areaHectares
	}

	if region == "" {
		region = "Not specified"
	}
	return &entities.YieldEstimate{
		Crop:               catalog.PlantName(crop),
		AreaHectares:       areaHectares,
		Region:             region,
		PredictedYieldTons: predicted,
		Confidence:         round2(uniform(m.rnd, 0.70, 0.95)),
		Recommendations:    yieldRecommendations(perHa),
	}
}

func yieldRecommendations(perHa float64) []string {
	var out []string
	switch {
	case perHa < 5:
		out = append(out, "Increase the fertilizer rate by 30%", "Ensure regular irrigation")
	case perHa < 10:
		out = append(out, "Apply foliar feeding with micronutrients", "Optimize the planting layout")
	default:
		out = append(out, "Keep the current agronomic practice", "Monitor the soil regularly")
	}
	// always appended
	return append(out, "Use varieties adapted to the region", "Follow crop rotation")
}

func normalizeCrop(code string) string {
	code = strings.TrimSpace(strings.ToLower(code))
	if code == "" {
		return catalog.DefaultCrop
	}
	return code
}

func uniform(r Rand, lo, hi float64) float64 { return lo + r.Float64()*(hi-lo) }

// intBetween is inclusive on both ends.
func intBetween(r Rand, lo, hi int) int { return lo + r.IntN(hi-lo+1) }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
