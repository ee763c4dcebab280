package catalog

import "agriedu/entities"

var plants = map[string]string{
	"tomato": "Tomato",
	"potato": "Potato",
	"apple":  "Apple tree",
	"wheat":  "Wheat",
	"corn":   "Corn",
	"grape":  "Grapevine",
}

var diseases = map[string][]string{
	"tomato": {"Late blight", "Powdery mildew", "Gray mold", "Verticillium wilt", "Bacterial canker"},
	"potato": {"Late blight", "Scab", "Blackleg", "Ring rot", "Rhizoctonia"},
	"apple":  {"Scab", "Powdery mildew", "Black rot", "Cytospora canker", "Brown rot"},
	"wheat":  {"Rust", "Powdery mildew", "Septoria", "Fusarium", "Helminthosporium"},
	"corn":   {"Common smut", "Nigrospora", "Fusarium", "Diplodia", "Rust"},
	"grape":  {"Downy mildew", "Oidium", "Gray mold", "Anthracnose", "Bacterial canker"},
}

var treatments = map[string]string{
	"Late blight":       "Apply copper-based fungicides (1% Bordeaux mixture). Repeat every 10-14 days.",
	"Powdery mildew":    "Sulfur-based products and better ventilation. Topaz, Score.",
	"Gray mold":         "Remove affected parts. Fungicides: Rovral, Topsin-M.",
	"Verticillium wilt": "Crop rotation and resistant varieties. Fundazol, Benomyl.",
	"Scab":              "Spring spray with 7% urea. Bordeaux mixture, Horus.",
	"Rust":              "Fungicides: Bayleton, Topaz. Remove affected leaves.",
	HealthyPlant:        "Keep up proper care. Preventive treatments.",
}

var preventions = map[string][]string{
	"Late blight": {
		"Use resistant varieties",
		"Follow crop rotation",
		"Keep optimal planting density",
		"Remove affected plants promptly",
	},
	"Powdery mildew": {
		"Control humidity",
		"Ensure good air circulation",
		"Prune regularly",
		"Apply preventive sulfur treatments",
	},
	"Gray mold": {
		"Avoid overwatering",
		"Harvest on time",
		"Disinfect tools",
		"Keep nitrogen feeding moderate",
	},
}

var baseYields = map[string]float64{
	"wheat":  3.5,
	"tomato": 25.0,
	"potato": 18.0,
	"corn":   6.0,
	"apple":  15.0,
	"grape":  10.0,
}

var regions = []entities.Region{
	{ID: "chuy", Name: "Chuy Region", Climate: "Temperate continental"},
	{ID: "issyk_kul", Name: "Issyk-Kul Region", Climate: "Mountain"},
	{ID: "osh", Name: "Osh Region", Climate: "Continental"},
	{ID: "naryn", Name: "Naryn Region", Climate: "Sharply continental"},
	{ID: "talas", Name: "Talas Region", Climate: "Temperate"},
	{ID: "batken", Name: "Batken Region", Climate: "Continental"},
	{ID: "jalal_abad", Name: "Jalal-Abad Region", Climate: "Subtropical"},
}

var regionFactors = map[string]float64{
	"Chuy Region":      1.1,
	"Issyk-Kul Region": 0.9,
	"Osh Region":       1.2,
	"Naryn Region":     0.8,
}

var regionalAdvice = map[string][]string{
	"Chuy Region": {
		"Sow early because of the hot summer",
		"Use drought-tolerant varieties",
		"Drip irrigation works best",
	},
	"Issyk-Kul Region": {
		"Account for the highland climate",
		"Use frost-resistant varieties",
		"Wind protection is a must",
	},
	"Osh Region": {
		"Good conditions for heat-loving crops",
		"Long growing season",
		"Two harvests a year are possible",
	},
}

var soilAdvice = map[string][]string{
	"chernozem": {"Rich soil, fertilize moderately", "Deep ploughing"},
	"loam":      {"Add organic fertilizer", "Loosen regularly"},
	"sandy":     {"Water often", "Add clay and organic matter", "Mulch"},
	"clay":      {"Drainage is a must", "Add sand", "Lime the soil"},
}

var lessons = map[string][]entities.Lesson{
	"agriculture": {
		{
			ID:          1,
			Title:       "Fundamentals of modern crop production",
			Description: "An introduction to modern methods of growing crops",
			Duration:    "45 minutes",
			Level:       "Beginner",
			Topics:      []string{"Soil science", "Seed production", "Irrigation", "Plant protection"},
			VideoURL:    "https://example.com/video1",
		},
		{
			ID:          2,
			Title:       "Biological plant protection",
			Description: "Using beneficial insects and biopesticides in agriculture",
			Duration:    "60 minutes",
			Level:       "Advanced",
			Topics:      []string{"Beneficial insects", "Biopesticides", "Crop rotation", "Agrotechnical methods"},
			VideoURL:    "https://example.com/video2",
		},
	},
	"ai_technology": {
		{
			ID:          3,
			Title:       "AI in precision farming",
			Description: "Applying artificial intelligence to optimize agriculture",
			Duration:    "50 minutes",
			Level:       "Intermediate",
			Topics:      []string{"Satellite imagery analysis", "Yield forecasting", "Automation"},
			VideoURL:    "https://example.com/video3",
		},
	},
}

var dashboard = entities.DashboardStats{
	TotalAnalyses:         1250,
	SuccessfulPredictions: 1187,
	AccuracyRate:          95.0,
	TotalFarmers:          347,
	ActiveCourses:         15,
	AvgYieldIncrease:      "23.5%",
}
