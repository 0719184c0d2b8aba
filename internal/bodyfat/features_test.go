package bodyfat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Measurements {
	return Measurements{
		Sex:       Male,
		Age:       40,
		WeightKg:  80,
		HeightCm:  180,
		AbdomenCm: 100,
		Neck:      Present(38),
		Hip:       Present(99),
		Wrist:     Present(18),
	}
}

func TestBuildFeatures_FullOrder(t *testing.T) {
	rec, err := BuildFeatures(MaleFull, sample())
	require.NoError(t, err)
	assert.Equal(t, Schema{"Age", "Weight", "Height", "Abdomen", "Neck", "Hip", "Wrist"}, rec.Schema)
	assert.Equal(t, []float64{40, 80, 1.8, 100, 38, 99, 18}, rec.Values)
	assert.Equal(t, 7, rec.Len())
}

func TestBuildFeatures_LightOrder(t *testing.T) {
	m := sample()
	m.Neck, m.Hip, m.Wrist = Absent(), Absent(), Absent()
	rec, err := BuildFeatures(MaleLight, m)
	require.NoError(t, err)
	assert.Equal(t, Schema{"Age", "Weight", "Height", "Abdomen"}, rec.Schema)
	assert.Equal(t, []float64{40, 80, 1.8, 100}, rec.Values)
}

func TestBuildFeatures_FullNeedsOptionalValues(t *testing.T) {
	m := sample()
	m.Hip = Absent()
	_, err := BuildFeatures(FemaleFull, m)
	assert.True(t, IsInvalidInput(err))
}

func TestFeatureRecordGet(t *testing.T) {
	rec, err := BuildFeatures(MaleFull, sample())
	require.NoError(t, err)
	h, ok := rec.Get(FeatureHeight)
	assert.True(t, ok)
	assert.Equal(t, 1.8, h)
	_, ok = rec.Get("Thigh")
	assert.False(t, ok)
}

func TestHeightMeters(t *testing.T) {
	assert.Equal(t, 1.8, HeightMeters(180))
	assert.Equal(t, 180.0/100, HeightMeters(180))
}
