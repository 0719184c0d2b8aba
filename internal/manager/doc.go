// Package manager owns the model artifacts and runs evaluations against them.
// It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: internal state types (State, Snapshot, Evaluation).
//   - cache.go: the per-variant model cache and its lifecycle.
//   - load.go: artifact loading (Model, Preload).
//   - admission.go: the bounded queue in front of the single evaluation slot.
//   - predict.go: Evaluate/Predict, the entry point used by the HTTP layer and CLI.
//   - errors.go: error types and helpers (IsTooBusy, IsModelNotFound, IsArtifactLoad).
//   - metrics.go: Prometheus collectors for loads and predictions.
//   - status_report.go: Status/Snapshot reporting helpers.
//   - events.go, eventpub_memory.go: lifecycle event publishing.
//
// Manager satisfies bodyfat.ModelStore. Evaluations are admitted one at a time,
// so the pipeline itself never runs concurrently.
package manager
