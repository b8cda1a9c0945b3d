package glicko2

import "fmt"

// Match pairs a player against an ordered list of opponents with one
// outcome per opponent. It is built for a single computation and discarded.
type Match struct {
	Player    *Rating
	Opponents []*Rating
	Outcomes  []float64
}

// Ranking is the result of one multi-player game: rank groups ordered from
// best to worst, each group holding the players tied at that rank. Players
// are identified by pointer, so two distinct players sharing rating values
// never collide.
type Ranking [][]*Rating

// DeriveMatches expands a ranking into one Match per player, or only the
// match for filterBy if it is non-nil. A player's opponents are every other
// player in the ranking, in rank order, with a Win recorded against each
// lower-ranked opponent, a Loss against each higher-ranked one and a Draw
// within the same group.
func DeriveMatches(ranking Ranking, filterBy *Rating) ([]Match, error) {
	ranks := make(map[*Rating]int)
	var players []*Rating
	for rank, group := range ranking {
		for _, player := range group {
			if _, seen := ranks[player]; seen {
				return nil, fmt.Errorf("%w: rank group %d", ErrDuplicatePlayer, rank)
			}
			ranks[player] = rank
			players = append(players, player)
		}
	}
	if filterBy != nil {
		if _, ok := ranks[filterBy]; !ok {
			return nil, ErrPlayerNotFound
		}
	}

	var matches []Match
	for _, player := range players {
		if filterBy != nil && player != filterBy {
			continue
		}
		match := Match{
			Player:    player,
			Opponents: make([]*Rating, 0, len(players)-1),
			Outcomes:  make([]float64, 0, len(players)-1),
		}
		for _, opponent := range players {
			if opponent == player {
				continue
			}
			var outcome float64
			switch {
			case ranks[player] < ranks[opponent]:
				outcome = Win
			case ranks[player] > ranks[opponent]:
				outcome = Loss
			default:
				outcome = Draw
			}
			match.Opponents = append(match.Opponents, opponent)
			match.Outcomes = append(match.Outcomes, outcome)
		}
		matches = append(matches, match)
	}
	return matches, nil
}
