package compute

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// InvokeRatingPeriodApply asynchronously invokes the lambda that applies a
// rating period.
func (client *Client) InvokeRatingPeriodApply(
	ctx context.Context,
	functionName string,
	periodId string,
) error {
	payload, err := json.Marshal(map[string]string{
		"periodId": periodId,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	_, err = client.lambda.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(functionName),
		Payload:        payload,
		InvocationType: types.InvocationTypeEvent,
	})
	if err != nil {
		return fmt.Errorf("failed to invoke rating period apply: %w", err)
	}
	return nil
}
