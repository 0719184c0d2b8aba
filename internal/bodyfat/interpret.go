package bodyfat

// Category is the plain-language reading of a result.
type Category string

const (
	CategoryHighMuscle      Category = "high-muscle, BMI misleading"
	CategoryNormalBMIHighBF Category = "normal BMI, high body fat"
	CategoryHighBodyFat     Category = "high body fat"
	CategoryHealthy         Category = "within healthy range"
)

var advice = map[Category]string{
	CategoryHighMuscle:      "Your BMI says overweight, but your body fat is low. The extra weight is most likely muscle.",
	CategoryNormalBMIHighBF: "Your BMI looks normal, but your body fat is high for a man. Strength training helps more than the scale shows.",
	CategoryHighBodyFat:     "Your body fat is above 30%. Reducing it lowers cardiovascular and metabolic risk.",
	CategoryHealthy:         "Your body composition looks balanced.",
}

// Advice is the sentence shown with the category.
func (c Category) Advice() string { return advice[c] }

// Interpret classifies a result. Branches are checked in order and the first
// match wins.
func Interpret(sex Sex, bmi, bodyFatPercent float64) Category {
	switch {
	case bmi > 25 && bodyFatPercent < 15:
		return CategoryHighMuscle
	case bmi < 25 && bodyFatPercent > 25 && sex == Male:
		return CategoryNormalBMIHighBF
	case bodyFatPercent > 30:
		return CategoryHighBodyFat
	default:
		return CategoryHealthy
	}
}
