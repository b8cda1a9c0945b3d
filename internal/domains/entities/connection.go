package entities

// Connection maps a player to their API Gateway websocket connection, used
// to push rating updates after a period is applied.
type Connection struct {
	PlayerId     string `dynamodbav:"PlayerId"`
	ConnectionId string `dynamodbav:"ConnectionId"`
}
