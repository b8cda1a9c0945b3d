package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/bucket-sort/ratingd/internal/aws/storage"
	"github.com/bucket-sort/ratingd/internal/domains/dtos"
	"github.com/bucket-sort/ratingd/internal/ratings"
	"github.com/bucket-sort/ratingd/pkg/glicko2"
	"github.com/bucket-sort/ratingd/pkg/logging"
	"go.uber.org/zap"
)

var (
	service      *ratings.Service
	periodLength time.Duration
)

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient := storage.NewClient(dynamodb.NewFromConfig(cfg))
	service = ratings.NewService(storageClient, nil, glicko2.DefaultConfig())

	periodLength = 24 * time.Hour
	if raw := os.Getenv("PERIOD_LENGTH"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			panic(err)
		}
		periodLength = parsed
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	mustAuth(event.RequestContext.Authorizer)

	var req dtos.ResultSubmissionRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	periodId := time.Now().UTC().Truncate(periodLength).Format(time.RFC3339)
	result, err := service.SubmitResult(ctx, periodId, req.Rankings)
	if err != nil {
		if errors.Is(err, glicko2.ErrDuplicatePlayer) ||
			errors.Is(err, ratings.ErrEmptyRankings) {
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Body:       err.Error(),
			}, nil
		}
		logging.Error("Failed to submit result", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	resultJson, err := json.Marshal(dtos.ResultSubmissionResponseFromEntity(result))
	if err != nil {
		logging.Error("Failed to submit result", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusCreated, Body: string(resultJson)}, nil
}

func mustAuth(authorizer map[string]interface{}) string {
	v, exists := authorizer["claims"]
	if !exists {
		panic("no authorizer claims")
	}
	claims, ok := v.(map[string]interface{})
	if !ok {
		panic("claims must be of type map")
	}
	userId, ok := claims["sub"].(string)
	if !ok {
		panic("invalid sub")
	}
	return userId
}

func main() {
	lambda.Start(handler)
}
