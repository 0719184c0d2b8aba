package manager

import "github.com/prometheus/client_golang/prometheus"

var (
	modelLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bodyfatd",
			Subsystem: "manager",
			Name:      "model_loads_total",
			Help:      "Artifact load attempts by variant and result",
		},
		[]string{"variant", "result"},
	)

	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bodyfatd",
			Subsystem: "manager",
			Name:      "predictions_total",
			Help:      "Evaluations by variant and outcome",
		},
		[]string{"variant", "outcome"},
	)

	predictionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bodyfatd",
			Subsystem: "manager",
			Name:      "prediction_duration_seconds",
			Help:      "Time spent in the prediction pipeline",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)

	queueWait = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bodyfatd",
			Subsystem: "manager",
			Name:      "admission_wait_seconds",
			Help:      "Time spent waiting for the evaluation slot",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(modelLoadsTotal, predictionsTotal, predictionDuration, queueWait)
}

// outcomeLabel classifies err for the predictions_total counter.
func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return errorKind(err)
}
