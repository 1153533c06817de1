package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twpayne/go-geom"

	"github.com/servicegrid/match-cli/internal/model"
)

func coordPtr(lng, lat float64) *geom.Coord {
	c := geom.Coord{lng, lat}
	return &c
}

func TestHaversineKM(t *testing.T) {
	// Sydney CBD to Parramatta is roughly 20km.
	sydney := geom.Coord{151.2093, -33.8688}
	parramatta := geom.Coord{151.0000, -33.8150}
	d := haversineKM(sydney, parramatta)
	assert.InDelta(t, 20, d, 3, "Sydney-Parramatta should be ~20km")

	// Same point is zero.
	assert.InDelta(t, 0, haversineKM(sydney, sydney), 0.001)
}

func TestHaversineKMNumericalStability(t *testing.T) {
	// Antipodal points: half the Earth's circumference, never NaN.
	d := haversineKM(geom.Coord{0, 0}, geom.Coord{180, 0})
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*earthRadiusKM, d, 1)

	// Pole to pole.
	d = haversineKM(geom.Coord{0, 90}, geom.Coord{0, -90})
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*earthRadiusKM, d, 1)
}

func TestLocationScore(t *testing.T) {
	job := &model.JobRequirement{Location: geom.Coord{151.2093, -33.8688}}

	t.Run("at job site", func(t *testing.T) {
		p := &model.Provider{Location: coordPtr(151.2093, -33.8688), ServiceRadiusKM: 20}
		assert.InDelta(t, 1.0, locationScore(job, p), 0.001)
	})

	t.Run("monotonically non-increasing with distance", func(t *testing.T) {
		prev := 1.0
		for _, latOffset := range []float64{0.01, 0.05, 0.10, 0.15, 0.20} {
			p := &model.Provider{
				Location:        coordPtr(151.2093, -33.8688+latOffset),
				ServiceRadiusKM: 20,
			}
			score := locationScore(job, p)
			assert.LessOrEqual(t, score, prev)
			prev = score
		}
	})

	t.Run("zero at radius", func(t *testing.T) {
		// ~40km away with a 10km radius.
		p := &model.Provider{Location: coordPtr(151.2093, -33.5088), ServiceRadiusKM: 10}
		assert.Equal(t, 0.0, locationScore(job, p))
	})

	t.Run("unscoreable location is zero, not an error", func(t *testing.T) {
		p := &model.Provider{Location: nil, ServiceRadiusKM: 20}
		assert.Equal(t, 0.0, locationScore(job, p))
	})

	t.Run("non-positive radius is zero", func(t *testing.T) {
		p := &model.Provider{Location: coordPtr(151.2093, -33.8688), ServiceRadiusKM: 0}
		assert.Equal(t, 0.0, locationScore(job, p))
	})
}
