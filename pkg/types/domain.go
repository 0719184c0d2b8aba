package types

// Model represents a model artifact found in the models directory.
type Model struct {
	// Variant identifier the artifact serves.
	// example: male_full
	ID string `json:"id" example:"male_full"`
	// Store key derived from the variant.
	// example: bf_male_full
	Name string `json:"name" example:"bf_male_full"`
	// Absolute path to the artifact on disk.
	// example: /srv/bodyfatd/models/bf_male_full.json
	Path string `json:"path" example:"/srv/bodyfatd/models/bf_male_full.json"`
	// Encoding of the artifact file (json, yaml, toml).
	// example: json
	Format string `json:"format" example:"json"`
	// Whether the artifact is currently held in the model cache.
	// example: true
	Loaded bool `json:"loaded" example:"true"`
}
