package bodyfat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpret_Precedence(t *testing.T) {
	cases := []struct {
		sex  Sex
		bmi  float64
		bf   float64
		want Category
	}{
		{Male, 26, 14, CategoryHighMuscle},
		{Female, 26, 14, CategoryHighMuscle},
		{Male, 24, 26, CategoryNormalBMIHighBF},
		// also above 30: the second branch wins for men
		{Male, 24, 35, CategoryNormalBMIHighBF},
		{Female, 24, 26, CategoryHealthy},
		{Female, 22, 35, CategoryHighBodyFat},
		{Male, 27, 35, CategoryHighBodyFat},
		// bmi exactly 25 matches neither of the first two branches
		{Male, 25, 10, CategoryHealthy},
		{Male, 25, 26, CategoryHealthy},
		{Male, 22, 18, CategoryHealthy},
	}
	for _, c := range cases {
		got := Interpret(c.sex, c.bmi, c.bf)
		assert.Equal(t, c.want, got, "sex=%s bmi=%v bf=%v", c.sex, c.bmi, c.bf)
		assert.NotEmpty(t, got.Advice())
	}
}
