package manager

import (
	"time"

	"bodyfatd/internal/bodyfat"
	"bodyfatd/pkg/types"
)

// State represents lifecycle state of the manager.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
)

// Snapshot is a read-only projection of the manager state.
type Snapshot struct {
	State  State
	Loaded []bodyfat.Variant
	Err    string
}

// Evaluation is one completed prediction with everything a caller renders.
type Evaluation struct {
	ID           string
	Measurements bodyfat.Measurements
	Result       bodyfat.Result
	Category     bodyfat.Category
	Export       bodyfat.ExportRecord
	At           time.Time
}

// Response converts the evaluation to its wire form.
func (e Evaluation) Response() types.PredictResponse {
	return types.PredictResponse{
		ID:             e.ID,
		BodyFatPercent: e.Result.BodyFatPercent,
		BMI:            e.Result.BMI,
		FFMI:           e.Result.FFMI,
		LeanMassKg:     e.Result.LeanMassKg,
		Variant:        string(e.Result.Variant),
		Model:          e.Result.Variant.ArtifactName(),
		Category:       string(e.Category),
		Advice:         e.Category.Advice(),
		Export:         e.Export.Row(),
		EvaluatedAt:    e.At.Unix(),
	}
}
