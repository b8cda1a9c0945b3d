package dtos

import (
	"time"

	"github.com/bucket-sort/ratingd/internal/domains/entities"
)

type RatingResponse struct {
	PlayerId   string    `json:"playerId"`
	Rating     float64   `json:"rating"`
	Deviation  float64   `json:"deviation"`
	Volatility float64   `json:"volatility"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func RatingResponseFromEntity(rating entities.PlayerRating) RatingResponse {
	return RatingResponse{
		PlayerId:   rating.PlayerId,
		Rating:     rating.Rating,
		Deviation:  rating.RD,
		Volatility: rating.Volatility,
		UpdatedAt:  rating.UpdatedAt,
	}
}

type NextRatingPageToken struct {
	PlayerId string `json:"playerId"`
}

type RatingListResponse struct {
	Ratings       []RatingResponse    `json:"ratings"`
	NextPageToken NextRatingPageToken `json:"nextPageToken,omitempty"`
}

func RatingListResponseFromEntities(ratings []entities.PlayerRating) RatingListResponse {
	resp := RatingListResponse{
		Ratings: make([]RatingResponse, 0, len(ratings)),
	}
	for _, rating := range ratings {
		resp.Ratings = append(resp.Ratings, RatingResponseFromEntity(rating))
	}
	return resp
}

// RatingUpdateNotification is pushed to a player's feed connection after a
// rating period is applied.
type RatingUpdateNotification struct {
	Type       string    `json:"type"`
	PlayerId   string    `json:"playerId"`
	PeriodId   string    `json:"periodId"`
	Rating     float64   `json:"rating"`
	Deviation  float64   `json:"deviation"`
	Volatility float64   `json:"volatility"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func RatingUpdateNotificationFromEntity(rating entities.PlayerRating, periodId string) RatingUpdateNotification {
	return RatingUpdateNotification{
		Type:       "rating_update",
		PlayerId:   rating.PlayerId,
		PeriodId:   periodId,
		Rating:     rating.Rating,
		Deviation:  rating.RD,
		Volatility: rating.Volatility,
		UpdatedAt:  rating.UpdatedAt,
	}
}
