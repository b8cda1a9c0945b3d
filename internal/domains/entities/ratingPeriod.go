package entities

import "time"

type RatingPeriod struct {
	PeriodId      string    `dynamodbav:"PeriodId"`
	StartedAt     time.Time `dynamodbav:"StartedAt"`
	ClosedAt      time.Time `dynamodbav:"ClosedAt"`
	PlayersRated  int       `dynamodbav:"PlayersRated"`
	GamesIncluded int       `dynamodbav:"GamesIncluded"`
}
