package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bucket-sort/ratingd/internal/domains/entities"
)

var ErrPlayerRatingNotFound = fmt.Errorf("player rating not found")

func (client *Client) GetPlayerRating(
	ctx context.Context,
	playerId string,
) (
	entities.PlayerRating,
	error,
) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.PlayerRatingsTableName,
		Key: map[string]types.AttributeValue{
			"PlayerId": &types.AttributeValueMemberS{
				Value: playerId,
			},
		},
	})
	if err != nil {
		return entities.PlayerRating{}, err
	}
	if output.Item == nil {
		return entities.PlayerRating{}, ErrPlayerRatingNotFound
	}
	var rating entities.PlayerRating
	if err := attributevalue.UnmarshalMap(output.Item, &rating); err != nil {
		return entities.PlayerRating{}, err
	}
	return rating, nil
}

func (client *Client) PutPlayerRating(ctx context.Context, rating entities.PlayerRating) error {
	av, err := attributevalue.MarshalMap(rating)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.PlayerRatingsTableName,
		Item:      av,
	})
	if err != nil {
		return err
	}
	return nil
}

func (client *Client) FetchPlayerRatings(
	ctx context.Context,
	lastKey map[string]types.AttributeValue,
	limit int32,
) (
	[]entities.PlayerRating,
	map[string]types.AttributeValue,
	error,
) {
	input := &dynamodb.ScanInput{
		TableName: client.cfg.PlayerRatingsTableName,
	}
	if limit > 0 {
		input.Limit = &limit
	}
	if lastKey != nil {
		input.ExclusiveStartKey = lastKey
	}
	output, err := client.dynamodb.Scan(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	var ratings []entities.PlayerRating
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &ratings); err != nil {
		return nil, nil, err
	}
	return ratings, output.LastEvaluatedKey, nil
}

// ListAllPlayerRatings pages through the whole ratings table. Used when a
// rating period is applied, since absent players still have their deviation
// inflated.
func (client *Client) ListAllPlayerRatings(ctx context.Context) ([]entities.PlayerRating, error) {
	var ratings []entities.PlayerRating
	var lastKey map[string]types.AttributeValue
	for {
		page, nextKey, err := client.FetchPlayerRatings(ctx, lastKey, 0)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, page...)
		if nextKey == nil {
			return ratings, nil
		}
		lastKey = nextKey
	}
}
