package compute

import "github.com/aws/aws-sdk-go-v2/service/lambda"

type Client struct {
	lambda *lambda.Client
}

func NewClient(lambdaClient *lambda.Client) *Client {
	return &Client{
		lambda: lambdaClient,
	}
}
