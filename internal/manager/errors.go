package manager

import (
	"errors"
	"net/http"

	"bodyfatd/internal/bodyfat"
)

// tooBusyError means no evaluation slot became free within maxWait. stage
// is "queue" when the wait queue itself was full.
type tooBusyError struct{ stage string }

func (e tooBusyError) Error() string {
	if e.stage == "queue" {
		return "too busy: evaluation queue is full"
	}
	return "too busy: timed out waiting for the evaluation slot"
}

// IsTooBusy reports whether err indicates backpressure (HTTP 429).
func IsTooBusy(err error) bool {
	var e tooBusyError
	return errors.As(err, &e)
}

// IsModelNotFound reports whether the error indicates a missing artifact.
func IsModelNotFound(err error) bool { return bodyfat.IsModelNotFound(err) }

// artifactLoadError means an artifact exists but could not be decoded. The
// HTTP layer maps it to 503 through StatusCode.
type artifactLoadError struct {
	variant bodyfat.Variant
	err     error
}

func (e artifactLoadError) Error() string {
	return "load " + e.variant.ArtifactName() + ": " + e.err.Error()
}

func (e artifactLoadError) Unwrap() error { return e.err }

func (e artifactLoadError) StatusCode() int { return http.StatusServiceUnavailable }

// ErrArtifactLoad constructs an artifactLoadError.
func ErrArtifactLoad(v bodyfat.Variant, err error) error {
	return artifactLoadError{variant: v, err: err}
}

// IsArtifactLoad reports whether err indicates an undecodable artifact.
func IsArtifactLoad(err error) bool {
	var e artifactLoadError
	return errors.As(err, &e)
}
