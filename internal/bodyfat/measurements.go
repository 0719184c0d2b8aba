package bodyfat

import (
	"math"
	"strings"
)

// Sex selects the male or female model family.
type Sex string

const (
	Male   Sex = "M"
	Female Sex = "F"
)

// ParseSex accepts M/F or male/female in any case.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return Male, nil
	case "f", "female":
		return Female, nil
	}
	return "", ErrInvalidInput("sex", "must be M or F, got "+s)
}

// Length is an optional circumference in centimetres.
type Length struct {
	cm      float64
	present bool
}

// Present wraps a measured value.
func Present(cm float64) Length { return Length{cm: cm, present: true} }

// Absent marks a measurement that was not taken.
func Absent() Length { return Length{} }

// FromSentinel maps the legacy "0 means not provided" convention onto Length.
func FromSentinel(cm float64) Length {
	if cm == 0 {
		return Absent()
	}
	return Present(cm)
}

// FromPtr maps a nil pointer to Absent.
func FromPtr(cm *float64) Length {
	if cm == nil {
		return Absent()
	}
	return Present(*cm)
}

// Value returns the measured value and whether one was given.
func (l Length) Value() (float64, bool) { return l.cm, l.present }

// IsPresent reports whether a value was given.
func (l Length) IsPresent() bool { return l.present }

// positive reports whether the length counts towards full-model eligibility.
func (l Length) positive() bool { return l.present && l.cm > 0 }

// Measurements is one person's input for a single evaluation.
type Measurements struct {
	Sex       Sex
	Age       int
	WeightKg  float64
	HeightCm  float64
	AbdomenCm float64
	Neck      Length
	Hip       Length
	Wrist     Length
}

const (
	MinAge = 15
	MaxAge = 150
)

// Validate checks the invariants every evaluation relies on. The first
// violation is returned.
func (m Measurements) Validate() error {
	if m.Sex != Male && m.Sex != Female {
		return ErrInvalidInput("sex", "must be M or F")
	}
	if m.Age < MinAge || m.Age > MaxAge {
		return ErrInvalidInput("age", "must be between 15 and 150")
	}
	if err := checkLength("weight_kg", m.WeightKg); err != nil {
		return err
	}
	if err := checkLength("height_cm", m.HeightCm); err != nil {
		return err
	}
	if m.HeightCm <= 0 {
		return ErrInvalidInput("height_cm", "must be greater than 0")
	}
	if err := checkLength("abdomen_cm", m.AbdomenCm); err != nil {
		return err
	}
	for _, opt := range []struct {
		name string
		l    Length
	}{{"neck_cm", m.Neck}, {"hip_cm", m.Hip}, {"wrist_cm", m.Wrist}} {
		if v, ok := opt.l.Value(); ok {
			if err := checkLength(opt.name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkLength(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidInput(field, "must be a finite number")
	}
	if v < 0 {
		return ErrInvalidInput(field, "must not be negative")
	}
	return nil
}
