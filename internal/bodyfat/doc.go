// Package bodyfat turns anthropometric measurements into a body fat estimate
// and the metrics derived from it. It is organised by concern:
//
//   - measurements.go: Sex, the optional Length type, Measurements and validation.
//   - variant.go: model variants, their feature schemas and Select.
//   - features.go: FeatureRecord assembly in schema order.
//   - pipeline.go: ModelStore/Predictor seams and Pipeline.Predict.
//   - derived.go: BMI, lean mass and FFMI.
//   - interpret.go: the interpretation categories shown next to a result.
//   - export.go: the fixed comma-delimited export row.
//   - errors.go: InvalidInput, ModelNotFound and InferenceFailure kinds.
//
// Everything here is pure and request-scoped. Loading and caching model
// artifacts belongs to the manager package, which satisfies ModelStore.
package bodyfat
