package ratings

import (
	"context"
	"testing"
	"time"

	"github.com/bucket-sort/ratingd/internal/aws/storage"
	"github.com/bucket-sort/ratingd/internal/domains/dtos"
	"github.com/bucket-sort/ratingd/internal/domains/entities"
	"github.com/bucket-sort/ratingd/pkg/glicko2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	ratings map[string]entities.PlayerRating
	results map[string][]entities.GameResult
	periods map[string]entities.RatingPeriod
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ratings: make(map[string]entities.PlayerRating),
		results: make(map[string][]entities.GameResult),
		periods: make(map[string]entities.RatingPeriod),
	}
}

func (f *fakeStore) GetPlayerRating(_ context.Context, playerId string) (entities.PlayerRating, error) {
	rating, ok := f.ratings[playerId]
	if !ok {
		return entities.PlayerRating{}, storage.ErrPlayerRatingNotFound
	}
	return rating, nil
}

func (f *fakeStore) PutPlayerRating(_ context.Context, rating entities.PlayerRating) error {
	f.ratings[rating.PlayerId] = rating
	return nil
}

func (f *fakeStore) ListAllPlayerRatings(_ context.Context) ([]entities.PlayerRating, error) {
	var ratings []entities.PlayerRating
	for _, rating := range f.ratings {
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

func (f *fakeStore) PutGameResult(_ context.Context, result entities.GameResult) error {
	f.results[result.PeriodId] = append(f.results[result.PeriodId], result)
	return nil
}

func (f *fakeStore) ListGameResults(_ context.Context, periodId string) ([]entities.GameResult, error) {
	return f.results[periodId], nil
}

func (f *fakeStore) PutRatingPeriod(_ context.Context, period entities.RatingPeriod) error {
	f.periods[period.PeriodId] = period
	return nil
}

type fakeNotifier struct {
	updates []dtos.RatingUpdateNotification
}

func (f *fakeNotifier) NotifyRatingUpdate(_ context.Context, update dtos.RatingUpdateNotification) error {
	f.updates = append(f.updates, update)
	return nil
}

func seedRating(store *fakeStore, playerId string, rating, rd, volatility float64) {
	store.ratings[playerId] = entities.PlayerRating{
		PlayerId:   playerId,
		Rating:     rating,
		RD:         rd,
		Volatility: volatility,
		UpdatedAt:  time.Now(),
	}
}

func TestSubmitResult(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, nil, glicko2.DefaultConfig())

	result, err := service.SubmitResult(context.Background(), "2026-01", [][]string{
		{"alice"}, {"bob", "carol"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ResultId)
	assert.Equal(t, "2026-01", result.PeriodId)
	require.Len(t, store.results["2026-01"], 1)
	assert.Equal(t, [][]string{{"alice"}, {"bob", "carol"}}, store.results["2026-01"][0].Rankings)
}

func TestSubmitResultRejectsDuplicatePlayer(t *testing.T) {
	service := NewService(newFakeStore(), nil, glicko2.DefaultConfig())

	_, err := service.SubmitResult(context.Background(), "2026-01", [][]string{
		{"alice"}, {"bob", "alice"},
	})

	assert.ErrorIs(t, err, glicko2.ErrDuplicatePlayer)
}

func TestSubmitResultRejectsEmptyRankings(t *testing.T) {
	service := NewService(newFakeStore(), nil, glicko2.DefaultConfig())

	_, err := service.SubmitResult(context.Background(), "2026-01", nil)

	assert.ErrorIs(t, err, ErrEmptyRankings)
}

// The Glicko-2 paper's worked example spread across three two-player games
// in one period.
func TestApplyPeriodReferenceScenario(t *testing.T) {
	store := newFakeStore()
	seedRating(store, "subject", 1500, 200, 0.06)
	seedRating(store, "weak", 1400, 30, 0.06)
	seedRating(store, "mid", 1550, 100, 0.06)
	seedRating(store, "strong", 1700, 300, 0.06)
	service := NewService(store, nil, glicko2.DefaultConfig())
	ctx := context.Background()

	_, err := service.SubmitResult(ctx, "2026-01", [][]string{{"subject"}, {"weak"}})
	require.NoError(t, err)
	_, err = service.SubmitResult(ctx, "2026-01", [][]string{{"mid"}, {"subject"}})
	require.NoError(t, err)
	_, err = service.SubmitResult(ctx, "2026-01", [][]string{{"strong"}, {"subject"}})
	require.NoError(t, err)

	period, err := service.ApplyPeriod(ctx, "2026-01")
	require.NoError(t, err)

	assert.Equal(t, 3, period.GamesIncluded)
	assert.Equal(t, 4, period.PlayersRated)

	subject := store.ratings["subject"]
	assert.InDelta(t, 1464.0507, subject.Rating, 0.001)
	assert.InDelta(t, 151.5165, subject.RD, 0.001)
	assert.InDelta(t, 0.06, subject.Volatility, 0.0001)
}

func TestApplyPeriodInflatesAbsentees(t *testing.T) {
	store := newFakeStore()
	seedRating(store, "active1", 1500, 200, 0.06)
	seedRating(store, "active2", 1600, 120, 0.06)
	seedRating(store, "absent", 1700, 80, 0.06)
	notifier := &fakeNotifier{}
	service := NewService(store, notifier, glicko2.DefaultConfig())
	ctx := context.Background()

	_, err := service.SubmitResult(ctx, "2026-02", [][]string{{"active1"}, {"active2"}})
	require.NoError(t, err)

	_, err = service.ApplyPeriod(ctx, "2026-02")
	require.NoError(t, err)

	absent := store.ratings["absent"]
	assert.Equal(t, 1700.0, absent.Rating)
	assert.Equal(t, 0.06, absent.Volatility)
	assert.Greater(t, absent.RD, 80.0)

	// Only players with games are notified.
	notified := make(map[string]bool)
	for _, update := range notifier.updates {
		notified[update.PlayerId] = true
	}
	assert.True(t, notified["active1"])
	assert.True(t, notified["active2"])
	assert.False(t, notified["absent"])
}

func TestApplyPeriodSeedsUnknownPlayers(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, nil, glicko2.DefaultConfig())
	ctx := context.Background()

	_, err := service.SubmitResult(ctx, "2026-03", [][]string{{"newcomer"}, {"other"}})
	require.NoError(t, err)

	_, err = service.ApplyPeriod(ctx, "2026-03")
	require.NoError(t, err)

	winner := store.ratings["newcomer"]
	loser := store.ratings["other"]
	assert.Greater(t, winner.Rating, 1500.0)
	assert.Less(t, loser.Rating, 1500.0)
	// One game says little; both stay highly uncertain.
	assert.Greater(t, winner.RD, 200.0)
}

func TestApplyPeriodUsesPrePeriodRatings(t *testing.T) {
	// Two equal players: whoever is rated first must not influence the
	// other's update within the same period.
	store := newFakeStore()
	seedRating(store, "a", 1500, 200, 0.06)
	seedRating(store, "b", 1500, 200, 0.06)
	service := NewService(store, nil, glicko2.DefaultConfig())
	ctx := context.Background()

	_, err := service.SubmitResult(ctx, "2026-04", [][]string{{"a"}, {"b"}})
	require.NoError(t, err)
	_, err = service.ApplyPeriod(ctx, "2026-04")
	require.NoError(t, err)

	a, b := store.ratings["a"], store.ratings["b"]
	assert.InDelta(t, a.Rating-1500, 1500-b.Rating, 1e-9)
	assert.InDelta(t, a.RD, b.RD, 1e-9)
}

func TestEstimateQuality(t *testing.T) {
	store := newFakeStore()
	seedRating(store, "alice", 1800, 60, 0.06)
	seedRating(store, "bob", 1800, 250, 0.06)
	service := NewService(store, nil, glicko2.DefaultConfig())

	quality, err := service.EstimateQuality(context.Background(), "alice", []string{"bob"})

	require.NoError(t, err)
	assert.Equal(t, 1.0, quality.Strongest)
}

func TestEstimateQualityDefaultsUnknownPlayers(t *testing.T) {
	service := NewService(newFakeStore(), nil, glicko2.DefaultConfig())

	quality, err := service.EstimateQuality(context.Background(), "ghost", []string{"phantom"})

	require.NoError(t, err)
	// Two unrated players are a perfectly balanced pairing.
	assert.Equal(t, 1.0, quality.Average)
}

func TestEstimateQualityNoOpponents(t *testing.T) {
	service := NewService(newFakeStore(), nil, glicko2.DefaultConfig())

	_, err := service.EstimateQuality(context.Background(), "alice", nil)

	assert.ErrorIs(t, err, glicko2.ErrEmptyOpponentSet)
}
