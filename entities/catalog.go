package entities

type Region struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Climate string `json:"climate"`
}

type Lesson struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"` // Beginner|Intermediate|Advanced
	Topics      []string `json:"topics"`
	VideoURL    string   `json:"video_url"`
}

type LessonPage struct {
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Lessons  []Lesson `json:"lessons"`
}

type DashboardStats struct {
	TotalAnalyses         int     `json:"total_analyses"`
	SuccessfulPredictions int     `json:"successful_predictions"`
	AccuracyRate          float64 `json:"accuracy_rate"`
	TotalFarmers          int     `json:"total_farmers"`
	ActiveCourses         int     `json:"active_courses"`
	AvgYieldIncrease      string  `json:"avg_yield_increase"`
}
