package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneHot(t *testing.T) {
	p := OneHot("ACGT-")
	require.Len(t, p, 5)
	assert.Equal(t, [4]float64{1, 0, 0, 0}, p[0])
	assert.Equal(t, [4]float64{0, 1, 0, 0}, p[1])
	assert.Equal(t, [4]float64{0, 0, 1, 0}, p[2])
	assert.Equal(t, [4]float64{0, 0, 0, 1}, p[3])
	assert.Equal(t, [4]float64{0, 0, 0, 0}, p[4])
}

func TestDistanceIdenticalIsZero(t *testing.T) {
	p := OneHot("ACGT")
	d, err := Distance(p, p)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-12)
}

func TestDistanceDisjointIsOne(t *testing.T) {
	p := OneHot("AAAA")
	q := OneHot("TTTT")
	d, err := Distance(p, q)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12)
}

func TestDistancePartialMismatch(t *testing.T) {
	// 1 of 4 sites differs -> du = 1/4.
	p := OneHot("AAAA")
	q := OneHot("AAAT")
	d, err := Distance(p, q)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, d, 1e-12)
}

func TestDistanceLengthMismatch(t *testing.T) {
	_, err := Distance(OneHot("AC"), OneHot("A"))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestAverage(t *testing.T) {
	p := OneHot("A")
	q := OneHot("T")
	avg, err := Average(p, q, 0.5)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{0.5, 0, 0, 0.5}, avg[0])
}

func TestAverageLengthMismatch(t *testing.T) {
	_, err := Average(OneHot("AC"), OneHot("A"), 0.5)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestJCCorrectBoundaries(t *testing.T) {
	assert.InDelta(t, 0, JCCorrect(0), 1e-12)
	assert.InDelta(t, 0.8239592165010823, JCCorrect(0.5), 1e-9)
	assert.Equal(t, MaxDistance, JCCorrect(0.75))
	assert.Equal(t, MaxDistance, JCCorrect(1.0))
}

func TestJCCorrectMonotonic(t *testing.T) {
	prev := 0.0
	for du := 0.0; du < 0.75; du += 0.05 {
		d := JCCorrect(du)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestDistanceEmptyProfile(t *testing.T) {
	_, err := Distance(Profile{}, Profile{})
	assert.ErrorIs(t, err, ErrEmptyProfile)
}

func TestJCCorrectNeverNaN(t *testing.T) {
	for _, du := range []float64{0, 0.1, 0.5, 0.74, 0.75, 0.9, 1.0, 10} {
		d := JCCorrect(du)
		assert.False(t, math.IsNaN(d))
		assert.LessOrEqual(t, d, MaxDistance)
	}
}
