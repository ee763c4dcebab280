// pkg/ai/client.go

package ai

import (
	"errors"

	"agriedu/entities"
)

// Advisor is the contract of the plant-disease and yield model. The only
// implementation today is the mock; a trained model can be dropped in behind
// the same interface without touching the HTTP layer.
type Advisor interface {
	// Diagnose fails only with *DecodeError when image cannot be decoded.
	Diagnose(image []byte, cropType string) (*entities.DiagnosisResult, error)
	// EstimateYield expects areaHectares > 0; the caller validates it.
	EstimateYield(crop string, areaHectares float64, region string) *entities.YieldEstimate
	Ready() bool
}

// ErrDecode matches any *DecodeError via errors.Is.
var ErrDecode = errors.New("image decode failed")

type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode image: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
