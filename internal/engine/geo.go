package engine

import (
	"math"

	"github.com/twpayne/go-geom"

	"github.com/servicegrid/match-cli/internal/model"
)

const earthRadiusKM = 6371.0

// haversineKM computes the great-circle distance in kilometers between two
// [lng, lat] coordinates. The intermediate term is clamped to [0,1] so the
// result stays finite for antipodal and polar points.
func haversineKM(a, b geom.Coord) float64 {
	lat1 := a.Y() * math.Pi / 180
	lat2 := b.Y() * math.Pi / 180
	dLat := (b.Y() - a.Y()) * math.Pi / 180
	dLng := (b.X() - a.X()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	h = math.Min(1, math.Max(0, h))

	return 2 * earthRadiusKM * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// locationScore scores proximity as a linear decay of distance against the
// provider's declared service radius: 1.0 at the job site, 0 once the
// distance reaches the radius. Providers without a usable location score 0.
func locationScore(job *model.JobRequirement, p *model.Provider) float64 {
	if p.Location == nil || p.ServiceRadiusKM <= 0 {
		return 0
	}
	d := haversineKM(job.Location, *p.Location)
	return math.Max(0, 1-d/p.ServiceRadiusKM)
}
