package server

import (
	"context"
	"net/http"
	"time"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/bucket-sort/ratingd/internal/aws/compute"
	"github.com/bucket-sort/ratingd/internal/aws/storage"
	"github.com/bucket-sort/ratingd/internal/ratings"
	"github.com/bucket-sort/ratingd/pkg/glicko2"
	"github.com/bucket-sort/ratingd/pkg/logging"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type server struct {
	address  string
	upgrader websocket.Upgrader

	config        Config
	service       *ratings.Service
	computeClient *compute.Client
	feed          *feedHub
}

func NewServer() *server {
	cfg := NewConfig()
	glicko2.SetConfig(cfg.Glicko)

	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		panic(err)
	}
	storageClient := storage.NewClient(dynamodb.NewFromConfig(awsCfg))
	feed := newFeedHub()
	srv := &server{
		address: "0.0.0.0:" + cfg.Port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
		config:  cfg,
		service: ratings.NewService(storageClient, feed, cfg.Glicko),
		feed:    feed,
	}
	if cfg.RatingPeriodFunctionName != "" {
		srv.computeClient = compute.NewClient(lambda.NewFromConfig(awsCfg))
	}
	return srv
}

// Start method    starts the rating server and the period ticker
func (s *server) Start() error {
	http.HandleFunc("POST /results", s.handleSubmitResult)
	http.HandleFunc("GET /ratings/{playerId}", s.handleGetRating)
	http.HandleFunc("POST /quality", s.handleMatchQuality)
	http.HandleFunc("GET /feed", s.handleFeed)

	go s.runPeriodTicker()

	logging.Info("rating server started",
		zap.String("port", s.config.Port),
		zap.Duration("period_length", s.config.PeriodLength),
	)
	return http.ListenAndServe(s.address, nil)
}

// currentPeriodId derives the open period from the wall clock, so restarts
// and parallel instances agree on period boundaries.
func (s *server) currentPeriodId() string {
	return s.periodIdAt(time.Now())
}

func (s *server) periodIdAt(t time.Time) string {
	return t.UTC().Truncate(s.config.PeriodLength).Format(time.RFC3339)
}

func (s *server) runPeriodTicker() {
	// Align to period boundaries so only fully closed periods are applied.
	now := time.Now()
	time.Sleep(time.Until(now.Truncate(s.config.PeriodLength).Add(s.config.PeriodLength)))
	s.applyPeriod(s.periodIdAt(now))

	ticker := time.NewTicker(s.config.PeriodLength)
	defer ticker.Stop()
	for tick := range ticker.C {
		closedPeriodId := s.periodIdAt(tick.Add(-s.config.PeriodLength))
		s.applyPeriod(closedPeriodId)
	}
}

func (s *server) applyPeriod(periodId string) {
	// Deployments with a rating-period lambda hand the batch off; others
	// apply it in-process.
	if s.computeClient != nil {
		err := s.computeClient.InvokeRatingPeriodApply(
			context.TODO(),
			s.config.RatingPeriodFunctionName,
			periodId,
		)
		if err != nil {
			logging.Error("failed to invoke rating period apply",
				zap.String("period_id", periodId),
				zap.Error(err),
			)
		}
		return
	}

	period, err := s.service.ApplyPeriod(context.TODO(), periodId)
	if err != nil {
		logging.Error("failed to apply rating period",
			zap.String("period_id", periodId),
			zap.Error(err),
		)
		return
	}
	logging.Info("rating period applied",
		zap.String("period_id", period.PeriodId),
		zap.Int("players_rated", period.PlayersRated),
		zap.Int("games_included", period.GamesIncluded),
	)
}
