package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/bucket-sort/ratingd/internal/aws/notification"
	"github.com/bucket-sort/ratingd/internal/aws/storage"
	"github.com/bucket-sort/ratingd/internal/domains/dtos"
	"github.com/bucket-sort/ratingd/internal/ratings"
	"github.com/bucket-sort/ratingd/pkg/glicko2"
	"github.com/bucket-sort/ratingd/pkg/logging"
	"go.uber.org/zap"
)

var service *ratings.Service

// connectionNotifier pushes rating updates to the websocket connections
// registered in storage.
type connectionNotifier struct {
	storage      *storage.Client
	notification *notification.Client
}

func (n *connectionNotifier) NotifyRatingUpdate(
	ctx context.Context,
	update dtos.RatingUpdateNotification,
) error {
	conn, err := n.storage.GetConnection(ctx, update.PlayerId)
	if errors.Is(err, storage.ErrConnectionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return n.notification.SendRatingUpdate(ctx, conn.ConnectionId, update)
}

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient := storage.NewClient(dynamodb.NewFromConfig(cfg))

	apiEndpoint := fmt.Sprintf(
		"https://%s.execute-api.%s.amazonaws.com/Prod",
		os.Getenv("AWS_API_ID"),
		os.Getenv("AWS_REGION"),
	)
	notificationClient := notification.NewClient(
		apigatewaymanagementapi.New(apigatewaymanagementapi.Options{
			BaseEndpoint: aws.String(apiEndpoint),
			Region:       os.Getenv("AWS_REGION"),
			Credentials:  cfg.Credentials,
		}),
	)

	service = ratings.NewService(
		storageClient,
		&connectionNotifier{
			storage:      storageClient,
			notification: notificationClient,
		},
		glickoConfigFromEnv(),
	)
}

func glickoConfigFromEnv() glicko2.Config {
	cfg := glicko2.DefaultConfig()
	cfg.Tau = envFloat("GLICKO_TAU", cfg.Tau)
	cfg.InitialRating = envFloat("GLICKO_INITIAL_RATING", cfg.InitialRating)
	cfg.InitialDeviation = envFloat("GLICKO_INITIAL_DEVIATION", cfg.InitialDeviation)
	cfg.InitialVolatility = envFloat("GLICKO_INITIAL_VOLATILITY", cfg.InitialVolatility)
	return cfg
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		panic(fmt.Errorf("invalid %s: %w", key, err))
	}
	return value
}

func handler(ctx context.Context, event json.RawMessage) error {
	var request struct {
		PeriodId string `json:"periodId"`
	}
	if err := json.Unmarshal(event, &request); err != nil {
		return fmt.Errorf("failed to unmarshal request: %w", err)
	}
	if request.PeriodId == "" {
		return fmt.Errorf("missing periodId")
	}

	period, err := service.ApplyPeriod(ctx, request.PeriodId)
	if err != nil {
		return fmt.Errorf("failed to apply rating period: %w", err)
	}

	logging.Info("rating period applied",
		zap.String("period_id", period.PeriodId),
		zap.Int("players_rated", period.PlayersRated),
		zap.Int("games_included", period.GamesIncluded),
	)
	return nil
}

func main() {
	lambda.Start(handler)
}
