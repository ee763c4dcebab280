package entities

import "time"

const (
	JournalDiagnosis = "diagnosis"
	JournalYield     = "yield"
)

// JournalEntry records one served diagnosis or yield estimate.
type JournalEntry struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Kind       string    `gorm:"index" json:"kind"` // diagnosis|yield
	RefID      string    `gorm:"index" json:"ref_id"`
	Crop       string    `json:"crop"`
	Region     string    `json:"region,omitempty"`
	Outcome    string    `json:"outcome"` // disease name or "12.34 t"
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
