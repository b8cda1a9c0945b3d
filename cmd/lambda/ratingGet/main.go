package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/bucket-sort/ratingd/internal/aws/storage"
	"github.com/bucket-sort/ratingd/internal/domains/dtos"
	"github.com/bucket-sort/ratingd/pkg/logging"
	"go.uber.org/zap"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	playerId, ok := event.PathParameters["playerId"]
	if !ok {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	rating, err := storageClient.GetPlayerRating(ctx, playerId)
	if err != nil {
		if errors.Is(err, storage.ErrPlayerRatingNotFound) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound}, nil
		}
		logging.Error("Failed to get player rating", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	ratingJson, err := json.Marshal(dtos.RatingResponseFromEntity(rating))
	if err != nil {
		logging.Error("Failed to get player rating", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(ratingJson)}, nil
}

func main() {
	lambda.Start(handler)
}
