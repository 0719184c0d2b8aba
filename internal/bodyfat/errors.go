package bodyfat

import (
	"errors"
	"fmt"
)

// invalidInputError rejects a measurement before any model is touched.
type invalidInputError struct {
	field  string
	reason string
}

func (e invalidInputError) Error() string { return "invalid input: " + e.field + " " + e.reason }

// ErrInvalidInput reports a measurement that violates an input invariant.
func ErrInvalidInput(field, reason string) error {
	return invalidInputError{field: field, reason: reason}
}

// IsInvalidInput reports whether err is an input validation failure.
func IsInvalidInput(err error) bool {
	var e invalidInputError
	return errors.As(err, &e)
}

// InvalidField returns the offending field name, if err is an input error.
func InvalidField(err error) string {
	var e invalidInputError
	if errors.As(err, &e) {
		return e.field
	}
	return ""
}

// modelNotFoundError means the store holds no artifact for a variant.
type modelNotFoundError struct{ variant Variant }

func (e modelNotFoundError) Error() string {
	return "model not found: " + e.variant.ArtifactName()
}

// ErrModelNotFound returns the error a ModelStore uses for a missing artifact.
func ErrModelNotFound(v Variant) error { return modelNotFoundError{variant: v} }

// IsModelNotFound reports whether err indicates a missing model artifact.
func IsModelNotFound(err error) bool {
	var e modelNotFoundError
	return errors.As(err, &e)
}

// inferenceError wraps whatever the model returned.
type inferenceError struct {
	variant Variant
	err     error
}

func (e inferenceError) Error() string {
	return fmt.Sprintf("inference failed (%s): %v", e.variant, e.err)
}

func (e inferenceError) Unwrap() error { return e.err }

// IsInferenceFailure reports whether err came out of a model's Predict.
func IsInferenceFailure(err error) bool {
	var e inferenceError
	return errors.As(err, &e)
}
