package bodyfat

import "fmt"

// FeatureRecord is the ordered model input. Values[i] belongs to Schema[i].
type FeatureRecord struct {
	Schema Schema
	Values []float64
}

// Len returns the number of features.
func (r FeatureRecord) Len() int { return len(r.Values) }

// Get returns the value of the named feature.
func (r FeatureRecord) Get(name string) (float64, bool) {
	for i, n := range r.Schema {
		if n == name && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return 0, false
}

// BuildFeatures projects m into the schema order of v. Height is converted to
// metres; all other lengths stay in centimetres.
func BuildFeatures(v Variant, m Measurements) (FeatureRecord, error) {
	schema := v.Schema()
	rec := FeatureRecord{Schema: schema, Values: make([]float64, 0, len(schema))}
	for _, name := range schema {
		val, err := featureValue(name, m)
		if err != nil {
			return FeatureRecord{}, err
		}
		rec.Values = append(rec.Values, val)
	}
	return rec, nil
}

func featureValue(name string, m Measurements) (float64, error) {
	switch name {
	case FeatureAge:
		return float64(m.Age), nil
	case FeatureWeight:
		return m.WeightKg, nil
	case FeatureHeight:
		return HeightMeters(m.HeightCm), nil
	case FeatureAbdomen:
		return m.AbdomenCm, nil
	case FeatureNeck:
		return required(name, m.Neck)
	case FeatureHip:
		return required(name, m.Hip)
	case FeatureWrist:
		return required(name, m.Wrist)
	}
	return 0, fmt.Errorf("unknown feature %q", name)
}

func required(name string, l Length) (float64, error) {
	v, ok := l.Value()
	if !ok {
		return 0, ErrInvalidInput(name, "required by the full model")
	}
	return v, nil
}
