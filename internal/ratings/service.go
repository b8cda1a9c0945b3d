// Package ratings orchestrates rating periods: it batches submitted game
// results, applies the Glicko-2 update to every tracked player once per
// period and persists the outcome.
package ratings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bucket-sort/ratingd/internal/aws/storage"
	"github.com/bucket-sort/ratingd/internal/domains/dtos"
	"github.com/bucket-sort/ratingd/internal/domains/entities"
	"github.com/bucket-sort/ratingd/pkg/glicko2"
	"github.com/bucket-sort/ratingd/pkg/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyRankings = fmt.Errorf("result must contain at least one rank group")

// RatingStore is the persistence needed by the service, satisfied by
// storage.Client.
type RatingStore interface {
	GetPlayerRating(ctx context.Context, playerId string) (entities.PlayerRating, error)
	PutPlayerRating(ctx context.Context, rating entities.PlayerRating) error
	ListAllPlayerRatings(ctx context.Context) ([]entities.PlayerRating, error)
	PutGameResult(ctx context.Context, result entities.GameResult) error
	ListGameResults(ctx context.Context, periodId string) ([]entities.GameResult, error)
	PutRatingPeriod(ctx context.Context, period entities.RatingPeriod) error
}

// Notifier pushes a rating update to the player it names. Implementations
// decide the transport; a nil notifier disables notifications.
type Notifier interface {
	NotifyRatingUpdate(ctx context.Context, update dtos.RatingUpdateNotification) error
}

type Service struct {
	store    RatingStore
	notifier Notifier
	cfg      glicko2.Config
}

func NewService(store RatingStore, notifier Notifier, cfg glicko2.Config) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
	}
}

// SubmitResult validates and stores one game result for the given period.
func (s *Service) SubmitResult(
	ctx context.Context,
	periodId string,
	rankings [][]string,
) (
	entities.GameResult,
	error,
) {
	if len(rankings) == 0 {
		return entities.GameResult{}, ErrEmptyRankings
	}
	seen := make(map[string]bool)
	for _, group := range rankings {
		for _, playerId := range group {
			if seen[playerId] {
				return entities.GameResult{}, fmt.Errorf(
					"%w: %s", glicko2.ErrDuplicatePlayer, playerId,
				)
			}
			seen[playerId] = true
		}
	}

	result := entities.GameResult{
		PeriodId:    periodId,
		ResultId:    uuid.NewString(),
		Rankings:    rankings,
		SubmittedAt: time.Now(),
	}
	if err := s.store.PutGameResult(ctx, result); err != nil {
		return entities.GameResult{}, fmt.Errorf("failed to store game result: %w", err)
	}
	return result, nil
}

// ApplyPeriod runs the Glicko-2 update for one rating period. Every match is
// rated against pre-period opponent values, players without games have their
// deviation inflated, and all new ratings are persisted and pushed to
// subscribed players. Returns the closed period record.
func (s *Service) ApplyPeriod(ctx context.Context, periodId string) (entities.RatingPeriod, error) {
	results, err := s.store.ListGameResults(ctx, periodId)
	if err != nil {
		return entities.RatingPeriod{}, fmt.Errorf("failed to list game results: %w", err)
	}
	stored, err := s.store.ListAllPlayerRatings(ctx)
	if err != nil {
		return entities.RatingPeriod{}, fmt.Errorf("failed to list player ratings: %w", err)
	}

	// Pre-period snapshot. Every computation below reads these handles and
	// never writes them, so late updates cannot leak into earlier matches.
	snapshot := make(map[string]*glicko2.Rating, len(stored))
	for _, rating := range stored {
		snapshot[rating.PlayerId] = rating.ToGlicko()
	}
	for _, result := range results {
		for _, playerId := range result.PlayerIds() {
			if _, tracked := snapshot[playerId]; !tracked {
				snapshot[playerId] = s.cfg.NewRating()
			}
		}
	}

	type periodGames struct {
		opponents []*glicko2.Rating
		outcomes  []float64
	}
	games := make(map[string]*periodGames)
	included := 0
	for _, result := range results {
		ranking := make(glicko2.Ranking, 0, len(result.Rankings))
		handles := make(map[*glicko2.Rating]string)
		for _, group := range result.Rankings {
			rankGroup := make([]*glicko2.Rating, 0, len(group))
			for _, playerId := range group {
				rankGroup = append(rankGroup, snapshot[playerId])
				handles[snapshot[playerId]] = playerId
			}
			ranking = append(ranking, rankGroup)
		}
		matches, err := glicko2.DeriveMatches(ranking, nil)
		if err != nil {
			// Submission validation should have rejected this result;
			// treat it as corrupt data rather than failing the period.
			logging.Error("skipping unusable game result",
				zap.String("result_id", result.ResultId),
				zap.Error(err),
			)
			continue
		}
		included++
		for _, match := range matches {
			playerId := handles[match.Player]
			if games[playerId] == nil {
				games[playerId] = &periodGames{}
			}
			games[playerId].opponents = append(games[playerId].opponents, match.Opponents...)
			games[playerId].outcomes = append(games[playerId].outcomes, match.Outcomes...)
		}
	}

	now := time.Now()
	rated := 0
	for playerId, handle := range snapshot {
		var updated glicko2.Rating
		if g := games[playerId]; g != nil {
			updated, err = s.cfg.CalculateRating(handle, g.opponents, g.outcomes)
			if err != nil {
				return entities.RatingPeriod{}, fmt.Errorf(
					"failed to rate player %s: %w", playerId, err,
				)
			}
		} else {
			updated = s.cfg.CalculateRatingDidNotCompete(handle)
		}

		rating := entities.PlayerRatingFromGlicko(playerId, updated, now)
		if err := s.store.PutPlayerRating(ctx, rating); err != nil {
			return entities.RatingPeriod{}, fmt.Errorf(
				"failed to store rating for player %s: %w", playerId, err,
			)
		}
		rated++

		if s.notifier != nil && games[playerId] != nil {
			update := dtos.RatingUpdateNotificationFromEntity(rating, periodId)
			if err := s.notifier.NotifyRatingUpdate(ctx, update); err != nil {
				logging.Error("failed to notify rating update",
					zap.String("player_id", playerId),
					zap.Error(err),
				)
			}
		}
	}

	period := entities.RatingPeriod{
		PeriodId:      periodId,
		ClosedAt:      now,
		PlayersRated:  rated,
		GamesIncluded: included,
	}
	if err := s.store.PutRatingPeriod(ctx, period); err != nil {
		return entities.RatingPeriod{}, fmt.Errorf("failed to store rating period: %w", err)
	}
	return period, nil
}

// GetRating returns a player's stored rating, or
// storage.ErrPlayerRatingNotFound for an untracked player.
func (s *Service) GetRating(ctx context.Context, playerId string) (entities.PlayerRating, error) {
	return s.store.GetPlayerRating(ctx, playerId)
}

// EstimateQuality estimates how balanced a prospective match would be.
// Untracked players are treated as unrated.
func (s *Service) EstimateQuality(
	ctx context.Context,
	playerId string,
	opponentIds []string,
) (
	glicko2.MatchQuality,
	error,
) {
	if len(opponentIds) == 0 {
		return glicko2.MatchQuality{}, glicko2.ErrEmptyOpponentSet
	}
	player, err := s.ratingOrDefault(ctx, playerId)
	if err != nil {
		return glicko2.MatchQuality{}, err
	}
	opponents := make([]*glicko2.Rating, 0, len(opponentIds))
	for _, opponentId := range opponentIds {
		opponent, err := s.ratingOrDefault(ctx, opponentId)
		if err != nil {
			return glicko2.MatchQuality{}, err
		}
		opponents = append(opponents, opponent)
	}
	return s.cfg.CalculateMatchQuality(player, opponents)
}

func (s *Service) ratingOrDefault(ctx context.Context, playerId string) (*glicko2.Rating, error) {
	rating, err := s.store.GetPlayerRating(ctx, playerId)
	if errors.Is(err, storage.ErrPlayerRatingNotFound) {
		return s.cfg.NewRating(), nil
	}
	if err != nil {
		return nil, err
	}
	return rating.ToGlicko(), nil
}
