package manager

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"bodyfatd/internal/bodyfat"
	"bodyfatd/pkg/types"
)

// MeasurementsFromRequest converts the wire request into core measurements.
// Omitted optional lengths become Absent.
func MeasurementsFromRequest(req types.PredictRequest) (bodyfat.Measurements, error) {
	sex, err := bodyfat.ParseSex(req.Sex)
	if err != nil {
		return bodyfat.Measurements{}, err
	}
	return bodyfat.Measurements{
		Sex:       sex,
		Age:       req.Age,
		WeightKg:  req.WeightKg,
		HeightCm:  req.HeightCm,
		AbdomenCm: req.AbdomenCm,
		Neck:      bodyfat.FromPtr(req.NeckCm),
		Hip:       bodyfat.FromPtr(req.HipCm),
		Wrist:     bodyfat.FromPtr(req.WristCm),
	}, nil
}

// Evaluate validates req, waits for the evaluation slot and runs the
// prediction pipeline against the cached models.
func (m *Manager) Evaluate(ctx context.Context, req types.PredictRequest) (Evaluation, error) {
	meas, err := MeasurementsFromRequest(req)
	if err != nil {
		m.recordFailure("", err)
		return Evaluation{}, err
	}
	return m.EvaluateMeasurements(ctx, meas)
}

// EvaluateMeasurements is Evaluate for callers that already hold core types.
func (m *Manager) EvaluateMeasurements(ctx context.Context, meas bodyfat.Measurements) (Evaluation, error) {
	if err := meas.Validate(); err != nil {
		m.recordFailure("", err)
		return Evaluation{}, err
	}
	waitStart := time.Now()
	release, err := m.acquireSlot(ctx)
	queueWait.Observe(time.Since(waitStart).Seconds())
	if err != nil {
		m.recordFailure("", err)
		return Evaluation{}, err
	}
	defer release()

	start := time.Now()
	res, err := bodyfat.NewPipeline(m).Predict(meas)
	predictionDuration.Observe(time.Since(start).Seconds())
	variant := bodyfat.Select(meas.Sex, meas.Neck, meas.Hip, meas.Wrist)
	if err != nil {
		m.recordFailure(variant, err)
		return Evaluation{}, err
	}

	at := m.now().In(m.loc)
	ev := Evaluation{
		ID:           uuid.NewString(),
		Measurements: meas,
		Result:       res,
		Category:     bodyfat.Interpret(meas.Sex, res.BMI, res.BodyFatPercent),
		Export:       bodyfat.NewExportRecord(res, meas.WeightKg, at),
		At:           at,
	}

	m.mu.Lock()
	m.predictionsTotal++
	if m.perVariant == nil {
		m.perVariant = make(map[bodyfat.Variant]uint64)
	}
	m.perVariant[res.Variant]++
	m.mu.Unlock()
	predictionsTotal.WithLabelValues(string(res.Variant), "ok").Inc()
	m.log.Debug().Str("event", "predict_done").Str("id", ev.ID).Str("variant", string(res.Variant)).
		Float64("body_fat_percent", res.BodyFatPercent).Str("category", string(ev.Category)).Msg("prediction")
	m.publish(Event{Kind: EventPredictDone, Variant: res.Variant, Fields: map[string]any{"id": ev.ID}})
	return ev, nil
}

// Predict is Evaluate returning the wire response.
func (m *Manager) Predict(ctx context.Context, req types.PredictRequest) (types.PredictResponse, error) {
	ev, err := m.Evaluate(ctx, req)
	if err != nil {
		return types.PredictResponse{}, err
	}
	return ev.Response(), nil
}

func (m *Manager) recordFailure(v bodyfat.Variant, err error) {
	label := string(v)
	if label == "" {
		label = "none"
	}
	predictionsTotal.WithLabelValues(label, outcomeLabel(err)).Inc()
	m.log.Info().Err(err).Str("event", "predict_error").Str("variant", label).Str("kind", errorKind(err)).Msg("prediction failed")
	m.publish(Event{Kind: EventPredictError, Variant: v, Fields: map[string]any{"error": err.Error(), "kind": errorKind(err)}})
}

// errorKind names the failure class used in logs and metrics.
func errorKind(err error) string {
	switch {
	case bodyfat.IsInvalidInput(err):
		return "invalid_input"
	case bodyfat.IsModelNotFound(err):
		return "model_not_found"
	case IsArtifactLoad(err):
		return "artifact_load"
	case bodyfat.IsInferenceFailure(err):
		return "inference_failure"
	case IsTooBusy(err):
		return "too_busy"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
