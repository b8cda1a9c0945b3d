package storage

import (
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Client struct {
	dynamodb *dynamodb.Client
	cfg      config
}

type config struct {
	PlayerRatingsTableName *string
	GameResultsTableName   *string
	ConnectionsTableName   *string
	RatingPeriodsTableName *string
}

func NewClient(dynamoClient *dynamodb.Client) *Client {
	return &Client{
		dynamodb: dynamoClient,
		cfg:      loadConfig(),
	}
}

func loadConfig() config {
	return config{
		PlayerRatingsTableName: tableName("PLAYER_RATINGS_TABLE_NAME", "PlayerRatings"),
		GameResultsTableName:   tableName("GAME_RESULTS_TABLE_NAME", "GameResults"),
		ConnectionsTableName:   tableName("CONNECTIONS_TABLE_NAME", "Connections"),
		RatingPeriodsTableName: tableName("RATING_PERIODS_TABLE_NAME", "RatingPeriods"),
	}
}

func tableName(envKey, fallback string) *string {
	if name := os.Getenv(envKey); name != "" {
		return aws.String(name)
	}
	return aws.String(fallback)
}
