package types

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// List of available model artifacts.
	Models []Model `json:"models"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
	// Offending field for input errors.
	// example: age
	Field string `json:"field,omitempty" example:"age"`
}

// VariantStatus summarizes one model variant for /status.
type VariantStatus struct {
	// Variant identifier.
	// example: male_full
	Variant string `json:"variant" example:"male_full"`
	// Whether an artifact exists in the models directory.
	// example: true
	Available bool `json:"available" example:"true"`
	// Whether the artifact is held in the cache.
	// example: true
	Loaded bool `json:"loaded" example:"true"`
	// When the artifact was loaded (unix seconds, 0 if not loaded).
	// example: 1700000000
	LoadedAt int64 `json:"loaded_at_unix" example:"1700000000"`
	// Number of successful predictions served by this variant.
	// example: 12
	Predictions uint64 `json:"predictions" example:"12"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Per-variant state.
	Variants []VariantStatus `json:"variants"`
	// Overall manager state (loading, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Last error observed by the manager (if any).
	LastError string `json:"last_error,omitempty"`
	// Current queue length for incoming evaluations.
	// example: 0
	QueueLen int `json:"queue_len" example:"0"`
	// Number of evaluations currently running (0 or 1).
	// example: 1
	Inflight int `json:"inflight" example:"1"`
	// Maximum queued evaluations before backpressure triggers.
	// example: 32
	MaxQueueDepth int `json:"max_queue_depth" example:"32"`
	// Total number of artifact loads.
	// example: 4
	LoadsTotal uint64 `json:"loads_total" example:"4"`
	// Total number of successful predictions.
	// example: 12
	PredictionsTotal uint64 `json:"predictions_total" example:"12"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
	// Most recent manager events, oldest first.
	RecentEvents []EventRecord `json:"recent_events,omitempty"`
}

// EventRecord is one manager event as reported by /status.
type EventRecord struct {
	// example: load_ready
	Kind string `json:"kind" example:"load_ready"`
	// example: male_full
	Variant string `json:"variant,omitempty" example:"male_full"`
	// example: 1700000000
	AtUnix int64 `json:"at_unix" example:"1700000000"`
}
