package bodyfat

// HeightMeters converts centimetres to metres.
func HeightMeters(cm float64) float64 { return cm / 100 }

// BMI is weight over height squared.
func BMI(weightKg, heightM float64) float64 { return weightKg / (heightM * heightM) }

// LeanMass is the part of the body weight that is not fat. It goes negative
// when bodyFatPercent exceeds 100.
func LeanMass(weightKg, bodyFatPercent float64) float64 {
	return weightKg * (1 - bodyFatPercent/100)
}

// FFMI is the fat-free mass index.
func FFMI(leanMassKg, heightM float64) float64 { return leanMassKg / (heightM * heightM) }
