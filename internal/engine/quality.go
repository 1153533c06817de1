package engine

import (
	"math"

	"github.com/servicegrid/match-cli/internal/model"
)

// Internal blend weights for the quality signal.
const (
	qualityRatingWeight  = 0.5
	qualityVolumeWeight  = 0.3
	qualityRespWeight    = 0.2
	qualityVolumeCeiling = 50 // completed jobs at which the volume signal saturates
)

// qualityScore blends rating, completed-job volume, and responsiveness into a
// single [0,1] track-record signal. Providers with no history get neutral
// (not zero) rating and volume sub-scores so new providers are not
// permanently excluded.
func qualityScore(p *model.Provider) float64 {
	rating := 0.5
	if p.Rating > 0 {
		rating = p.Rating / 5.0
	}

	volume := 0.5
	if p.CompletedJobs > 0 {
		volume = math.Min(1, float64(p.CompletedJobs)/qualityVolumeCeiling)
	}

	responsiveness := 1 / (1 + p.ResponseTimeHours)

	return qualityRatingWeight*rating +
		qualityVolumeWeight*volume +
		qualityRespWeight*responsiveness
}
