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

var ErrConnectionNotFound = fmt.Errorf("connection not found")

func (client *Client) GetConnection(
	ctx context.Context,
	playerId string,
) (
	entities.Connection,
	error,
) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.ConnectionsTableName,
		Key: map[string]types.AttributeValue{
			"PlayerId": &types.AttributeValueMemberS{
				Value: playerId,
			},
		},
	})
	if err != nil {
		return entities.Connection{}, err
	}
	if output.Item == nil {
		return entities.Connection{}, ErrConnectionNotFound
	}
	var connection entities.Connection
	if err := attributevalue.UnmarshalMap(output.Item, &connection); err != nil {
		return entities.Connection{}, err
	}
	return connection, nil
}

func (client *Client) PutConnection(ctx context.Context, connection entities.Connection) error {
	av, err := attributevalue.MarshalMap(connection)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.ConnectionsTableName,
		Item:      av,
	})
	if err != nil {
		return err
	}
	return nil
}

// DeleteConnectionById removes a registration by its connection id, used on
// websocket disconnect where the player is not known. The entry is removed
// only if it still belongs to the closing connection.
func (client *Client) DeleteConnectionById(ctx context.Context, connectionId string) error {
	output, err := client.dynamodb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        client.cfg.ConnectionsTableName,
		FilterExpression: aws.String("ConnectionId = :connectionId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":connectionId": &types.AttributeValueMemberS{Value: connectionId},
		},
	})
	if err != nil {
		return err
	}
	var connections []entities.Connection
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &connections); err != nil {
		return err
	}
	for _, connection := range connections {
		if err := client.DeleteConnection(ctx, connection.PlayerId); err != nil {
			return err
		}
	}
	return nil
}

func (client *Client) DeleteConnection(ctx context.Context, playerId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.ConnectionsTableName,
		Key: map[string]types.AttributeValue{
			"PlayerId": &types.AttributeValueMemberS{Value: playerId},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	return nil
}
