package bodyfat

// Variant identifies one of the four trained models.
type Variant string

const (
	MaleLight   Variant = "male_light"
	MaleFull    Variant = "male_full"
	FemaleLight Variant = "female_light"
	FemaleFull  Variant = "female_full"
)

// Variants lists every known variant in a stable order.
var Variants = []Variant{MaleLight, MaleFull, FemaleLight, FemaleFull}

// Feature names as the models were trained on them.
const (
	FeatureAge     = "Age"
	FeatureWeight  = "Weight"
	FeatureHeight  = "Height"
	FeatureAbdomen = "Abdomen"
	FeatureNeck    = "Neck"
	FeatureHip     = "Hip"
	FeatureWrist   = "Wrist"
)

// Schema is the ordered list of feature names a model expects.
type Schema []string

var (
	lightSchema = Schema{FeatureAge, FeatureWeight, FeatureHeight, FeatureAbdomen}
	fullSchema  = Schema{FeatureAge, FeatureWeight, FeatureHeight, FeatureAbdomen, FeatureNeck, FeatureHip, FeatureWrist}
)

// ParseVariant validates a variant identifier.
func ParseVariant(s string) (Variant, bool) {
	for _, v := range Variants {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// Full reports whether the variant takes the neck/hip/wrist measurements.
func (v Variant) Full() bool { return v == MaleFull || v == FemaleFull }

// Schema returns a copy of the variant's feature order.
func (v Variant) Schema() Schema {
	src := lightSchema
	if v.Full() {
		src = fullSchema
	}
	return append(Schema(nil), src...)
}

// ArtifactName is the model store key, e.g. bf_male_full.
func (v Variant) ArtifactName() string { return "bf_" + string(v) }

// Select picks the variant for sex. The full model is used only when neck,
// hip and wrist are all present and strictly positive.
func Select(sex Sex, neck, hip, wrist Length) Variant {
	full := neck.positive() && hip.positive() && wrist.positive()
	if sex == Male {
		if full {
			return MaleFull
		}
		return MaleLight
	}
	if full {
		return FemaleFull
	}
	return FemaleLight
}
