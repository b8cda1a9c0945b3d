package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bucket-sort/ratingd/internal/domains/entities"
)

func (client *Client) PutGameResult(ctx context.Context, result entities.GameResult) error {
	av, err := attributevalue.MarshalMap(result)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.GameResultsTableName,
		Item:      av,
	})
	if err != nil {
		return err
	}
	return nil
}

func (client *Client) ListGameResults(
	ctx context.Context,
	periodId string,
) (
	[]entities.GameResult,
	error,
) {
	var results []entities.GameResult
	var lastKey map[string]types.AttributeValue
	for {
		input := &dynamodb.QueryInput{
			TableName:              client.cfg.GameResultsTableName,
			KeyConditionExpression: aws.String("PeriodId = :periodId"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":periodId": &types.AttributeValueMemberS{Value: periodId},
			},
		}
		if lastKey != nil {
			input.ExclusiveStartKey = lastKey
		}
		output, err := client.dynamodb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []entities.GameResult
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, err
		}
		results = append(results, page...)
		if output.LastEvaluatedKey == nil {
			return results, nil
		}
		lastKey = output.LastEvaluatedKey
	}
}

func (client *Client) DeleteGameResult(ctx context.Context, periodId, resultId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.GameResultsTableName,
		Key: map[string]types.AttributeValue{
			"PeriodId": &types.AttributeValueMemberS{Value: periodId},
			"ResultId": &types.AttributeValueMemberS{Value: resultId},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete game result: %w", err)
	}
	return nil
}
