package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
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
	startKey, limit, err := extractScanParameters(event.QueryStringParameters)
	if err != nil {
		logging.Error("Failed to list player ratings", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	ratings, lastEvaluatedKey, err := storageClient.FetchPlayerRatings(ctx, startKey, limit)
	if err != nil {
		logging.Error("Failed to list player ratings", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	ratingListResp := dtos.RatingListResponseFromEntities(ratings)
	if lastEvaluatedKey != nil {
		ratingListResp.NextPageToken = dtos.NextRatingPageToken{
			PlayerId: lastEvaluatedKey["PlayerId"].(*types.AttributeValueMemberS).Value,
		}
	}

	ratingListJson, err := json.Marshal(ratingListResp)
	if err != nil {
		logging.Error("Failed to list player ratings", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(ratingListJson)}, nil
}

func extractScanParameters(params map[string]string) (map[string]types.AttributeValue, int32, error) {
	limitStr, ok := params["limit"]
	if !ok {
		return nil, 0, fmt.Errorf("missing parameter: limit")
	}

	limit, err := strconv.ParseInt(limitStr, 10, 32)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid limit: %v", err)
	}

	// Check for startKey (optional)
	var startKey map[string]types.AttributeValue
	if startKeyStr, ok := params["startKey"]; ok {
		startKey = map[string]types.AttributeValue{
			"PlayerId": &types.AttributeValueMemberS{Value: startKeyStr},
		}
	}

	return startKey, int32(limit), nil
}

func main() {
	lambda.Start(handler)
}
