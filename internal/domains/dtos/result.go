package dtos

import (
	"time"

	"github.com/bucket-sort/ratingd/internal/domains/entities"
)

// ResultSubmissionRequest reports one finished game as rank groups ordered
// from best to worst. A two-player game with a winner is two groups of one;
// a draw is a single group of two.
type ResultSubmissionRequest struct {
	Rankings [][]string `json:"rankings"`
}

type ResultSubmissionResponse struct {
	ResultId    string    `json:"resultId"`
	PeriodId    string    `json:"periodId"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func ResultSubmissionResponseFromEntity(result entities.GameResult) ResultSubmissionResponse {
	return ResultSubmissionResponse{
		ResultId:    result.ResultId,
		PeriodId:    result.PeriodId,
		SubmittedAt: result.SubmittedAt,
	}
}
