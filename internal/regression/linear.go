// Package regression decodes model artifacts and evaluates them.
//
// An artifact is a linear regression exported from the training notebook:
//
//	variant: male_full
//	features: [Age, Weight, Height, Abdomen, Neck, Hip, Wrist]
//	intercept: -12.3
//	coefficients: [0.08, -0.2, 3.1, 0.9, -0.4, 0.05, -1.2]
//
// The feature list is the model's input contract; Predict refuses records
// whose schema does not match it name for name.
package regression

import (
	"errors"
	"fmt"

	"bodyfatd/internal/bodyfat"
)

// Linear is an ordinary least squares model: intercept + sum(coef[i]*x[i]).
type Linear struct {
	Variant      string    `json:"variant" yaml:"variant" toml:"variant"`
	Features     []string  `json:"features" yaml:"features" toml:"features"`
	Intercept    float64   `json:"intercept" yaml:"intercept" toml:"intercept"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients" toml:"coefficients"`
}

// Check verifies the artifact is internally consistent.
func (l *Linear) Check() error {
	if len(l.Features) == 0 {
		return errors.New("artifact has no features")
	}
	if len(l.Features) != len(l.Coefficients) {
		return fmt.Errorf("artifact has %d features but %d coefficients", len(l.Features), len(l.Coefficients))
	}
	if l.Variant != "" {
		v, ok := bodyfat.ParseVariant(l.Variant)
		if !ok {
			return fmt.Errorf("unknown variant %q", l.Variant)
		}
		want := v.Schema()
		if len(want) != len(l.Features) {
			return fmt.Errorf("variant %s expects %d features, artifact has %d", v, len(want), len(l.Features))
		}
		for i := range want {
			if want[i] != l.Features[i] {
				return fmt.Errorf("variant %s expects feature %q at position %d, artifact has %q", v, want[i], i, l.Features[i])
			}
		}
	}
	return nil
}

// Predict evaluates the model on rec.
func (l *Linear) Predict(rec bodyfat.FeatureRecord) (float64, error) {
	if len(rec.Values) != len(l.Coefficients) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(rec.Values), len(l.Coefficients))
	}
	if len(rec.Schema) != len(l.Features) {
		return 0, fmt.Errorf("feature schema has %d names, model expects %d", len(rec.Schema), len(l.Features))
	}
	y := l.Intercept
	for i, name := range l.Features {
		if rec.Schema[i] != name {
			return 0, fmt.Errorf("feature %d is %q, model expects %q", i, rec.Schema[i], name)
		}
		y += l.Coefficients[i] * rec.Values[i]
	}
	return y, nil
}
