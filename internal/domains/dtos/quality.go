package dtos

import "github.com/bucket-sort/ratingd/pkg/glicko2"

type MatchQualityRequest struct {
	PlayerId    string   `json:"playerId"`
	OpponentIds []string `json:"opponentIds"`
}

type MatchQualityResponse struct {
	Opponents []float64 `json:"opponents"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Average   float64   `json:"average"`
	Median    float64   `json:"median"`
	Strongest float64   `json:"strongest"`
}

func MatchQualityResponseFromQuality(quality glicko2.MatchQuality) MatchQualityResponse {
	return MatchQualityResponse{
		Opponents: quality.Opponents,
		Min:       quality.Min,
		Max:       quality.Max,
		Average:   quality.Average,
		Median:    quality.Median,
		Strongest: quality.Strongest,
	}
}
