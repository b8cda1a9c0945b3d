package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bucket-sort/ratingd/internal/domains/entities"
)

var ErrRatingPeriodNotFound = fmt.Errorf("rating period not found")

func (client *Client) GetRatingPeriod(
	ctx context.Context,
	periodId string,
) (
	entities.RatingPeriod,
	error,
) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.RatingPeriodsTableName,
		Key: map[string]types.AttributeValue{
			"PeriodId": &types.AttributeValueMemberS{
				Value: periodId,
			},
		},
	})
	if err != nil {
		return entities.RatingPeriod{}, err
	}
	if output.Item == nil {
		return entities.RatingPeriod{}, ErrRatingPeriodNotFound
	}
	var period entities.RatingPeriod
	if err := attributevalue.UnmarshalMap(output.Item, &period); err != nil {
		return entities.RatingPeriod{}, err
	}
	return period, nil
}

func (client *Client) PutRatingPeriod(ctx context.Context, period entities.RatingPeriod) error {
	av, err := attributevalue.MarshalMap(period)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.RatingPeriodsTableName,
		Item:      av,
	})
	if err != nil {
		return err
	}
	return nil
}
