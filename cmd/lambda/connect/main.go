package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/bucket-sort/ratingd/internal/aws/storage"
	"github.com/bucket-sort/ratingd/internal/domains/entities"
	"github.com/bucket-sort/ratingd/pkg/logging"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

// Registers the websocket connection of a player subscribing to rating
// updates.
func handler(ctx context.Context, event events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	playerId, err := authenticate(event.QueryStringParameters["token"])
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusUnauthorized,
			Body:       err.Error(),
		}, nil
	}

	err = storageClient.PutConnection(ctx, entities.Connection{
		PlayerId:     playerId,
		ConnectionId: event.RequestContext.ConnectionID,
	})
	if err != nil {
		logging.Error("Failed to register connection", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

func authenticate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("missing token")
	}
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("AUTH_SECRET")), nil
		},
	)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims")
	}
	playerId, err := claims.GetSubject()
	if err != nil || playerId == "" {
		return "", fmt.Errorf("missing subject")
	}
	return playerId, nil
}

func main() {
	lambda.Start(handler)
}
