package bodyfat

import (
	"errors"
	"math"
)

// Predictor is a loaded regression model.
type Predictor interface {
	Predict(FeatureRecord) (float64, error)
}

// PredictorFunc adapts a function to Predictor.
type PredictorFunc func(FeatureRecord) (float64, error)

func (f PredictorFunc) Predict(r FeatureRecord) (float64, error) { return f(r) }

// ModelStore resolves a variant to its model. Implementations return
// ErrModelNotFound when no artifact exists for the variant.
type ModelStore interface {
	Model(Variant) (Predictor, error)
}

// Result is the outcome of one evaluation.
type Result struct {
	BodyFatPercent float64 `json:"body_fat_percent"`
	BMI            float64 `json:"bmi"`
	FFMI           float64 `json:"ffmi"`
	LeanMassKg     float64 `json:"lean_mass_kg"`
	Variant        Variant `json:"variant"`
}

// Pipeline runs measurements through the selected model.
type Pipeline struct {
	store ModelStore
}

// NewPipeline builds a pipeline over store.
func NewPipeline(store ModelStore) *Pipeline { return &Pipeline{store: store} }

// Predict validates m, picks a variant, runs its model and derives the
// secondary metrics. It either returns a complete Result or an error.
func (p *Pipeline) Predict(m Measurements) (Result, error) {
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	heightM := HeightMeters(m.HeightCm)
	variant := Select(m.Sex, m.Neck, m.Hip, m.Wrist)
	features, err := BuildFeatures(variant, m)
	if err != nil {
		return Result{}, err
	}
	if p.store == nil {
		return Result{}, ErrModelNotFound(variant)
	}
	model, err := p.store.Model(variant)
	if err != nil {
		return Result{}, err
	}
	if model == nil {
		return Result{}, ErrModelNotFound(variant)
	}
	bf, err := model.Predict(features)
	if err != nil {
		return Result{}, inferenceError{variant: variant, err: err}
	}
	if math.IsNaN(bf) || math.IsInf(bf, 0) {
		return Result{}, inferenceError{variant: variant, err: errors.New("model returned a non-finite value")}
	}
	lean := LeanMass(m.WeightKg, bf)
	return Result{
		BodyFatPercent: bf,
		BMI:            BMI(m.WeightKg, heightM),
		FFMI:           FFMI(lean, heightM),
		LeanMassKg:     lean,
		Variant:        variant,
	}, nil
}
