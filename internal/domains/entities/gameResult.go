package entities

import "time"

// GameResult is one finished game awaiting its rating period. Rankings
// holds rank groups ordered from best to worst; each group lists the ids of
// the players tied at that rank.
type GameResult struct {
	PeriodId    string     `dynamodbav:"PeriodId"`
	ResultId    string     `dynamodbav:"ResultId"`
	Rankings    [][]string `dynamodbav:"Rankings"`
	SubmittedAt time.Time  `dynamodbav:"SubmittedAt"`
}

// PlayerIds returns every player referenced by the result, in rank order.
func (r GameResult) PlayerIds() []string {
	var ids []string
	for _, group := range r.Rankings {
		ids = append(ids, group...)
	}
	return ids
}
