package types

// PredictRequest carries the measurements for one evaluation.
// Optional circumferences may be omitted; a value of 0 is accepted and
// treated as "not measured" for model selection.
type PredictRequest struct {
	// Sex: M or F.
	// example: M
	Sex string `json:"sex" example:"M"`
	// Age in years (15-150).
	// example: 40
	Age int `json:"age" example:"40"`
	// Weight in kilograms.
	// example: 80
	WeightKg float64 `json:"weight_kg" example:"80"`
	// Height in centimetres.
	// example: 180
	HeightCm float64 `json:"height_cm" example:"180"`
	// Abdomen circumference in centimetres.
	// example: 100
	AbdomenCm float64 `json:"abdomen_cm" example:"100"`
	// Neck circumference in centimetres.
	// example: 38
	NeckCm *float64 `json:"neck_cm,omitempty" example:"38"`
	// Hip circumference in centimetres.
	// example: 99
	HipCm *float64 `json:"hip_cm,omitempty" example:"99"`
	// Wrist circumference in centimetres.
	// example: 18
	WristCm *float64 `json:"wrist_cm,omitempty" example:"18"`
}

// PredictResponse is returned by POST /predict.
type PredictResponse struct {
	// Unique id of this evaluation.
	ID string `json:"id"`
	// Estimated body fat percentage.
	// example: 21.4
	BodyFatPercent float64 `json:"body_fat_percent" example:"21.4"`
	// Body mass index.
	// example: 24.69
	BMI float64 `json:"bmi" example:"24.69"`
	// Fat-free mass index.
	// example: 19.41
	FFMI float64 `json:"ffmi" example:"19.41"`
	// Lean mass in kilograms.
	// example: 62.88
	LeanMassKg float64 `json:"lean_mass_kg" example:"62.88"`
	// Model variant used.
	// example: male_full
	Variant string `json:"variant" example:"male_full"`
	// Artifact name of the model used.
	// example: bf_male_full
	Model string `json:"model" example:"bf_male_full"`
	// Interpretation category.
	// example: within healthy range
	Category string `json:"category" example:"within healthy range"`
	// Advice shown with the category.
	Advice string `json:"advice"`
	// Export row in Date,Time,Weight,BMI,Fat% order.
	Export []string `json:"export"`
	// Evaluation time in unix seconds.
	EvaluatedAt int64 `json:"evaluated_at_unix"`
}
