package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	"github.com/bucket-sort/ratingd/internal/domains/dtos"
)

// SendRatingUpdate pushes a rating update to a player's websocket
// connection through the API Gateway management API.
func (client *Client) SendRatingUpdate(
	ctx context.Context,
	connectionId string,
	update dtos.RatingUpdateNotification,
) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	_, err = client.apiGateway.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
		ConnectionId: &connectionId,
		Data:         data,
	})
	if err != nil {
		return fmt.Errorf("failed to post to connection: %w", err)
	}
	return nil
}
