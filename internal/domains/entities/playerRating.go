package entities

import (
	"time"

	"github.com/bucket-sort/ratingd/pkg/glicko2"
)

type PlayerRating struct {
	PlayerId   string    `dynamodbav:"PlayerId"`
	Rating     float64   `dynamodbav:"Rating"`
	RD         float64   `dynamodbav:"RD"`
	Volatility float64   `dynamodbav:"Volatility"`
	UpdatedAt  time.Time `dynamodbav:"UpdatedAt"`
}

func (r PlayerRating) ToGlicko() *glicko2.Rating {
	return &glicko2.Rating{
		Rating:     r.Rating,
		Deviation:  r.RD,
		Volatility: r.Volatility,
	}
}

func PlayerRatingFromGlicko(playerId string, r glicko2.Rating, updatedAt time.Time) PlayerRating {
	return PlayerRating{
		PlayerId:   playerId,
		Rating:     r.Rating,
		RD:         r.Deviation,
		Volatility: r.Volatility,
		UpdatedAt:  updatedAt,
	}
}
