package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
)

// sqsAPI is the part of the SQS client used here.
type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher sends dashboard events to an SQS queue.
type SQSPublisher struct {
	client   sqsAPI
	queueURL string
}

// NewSQSPublisher creates a publisher from the default AWS configuration.
func NewSQSPublisher(ctx context.Context, queueURL string) (*SQSPublisher, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("queue URL is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SQSPublisher{client: sqs.NewFromConfig(cfg), queueURL: queueURL}, nil
}

// PublishGrantEvent queues event as JSON with its type, grantee and
// correlation id as message attributes.
func (p *SQSPublisher) PublishGrantEvent(ctx context.Context, event business.GrantEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal grant event: %w", err)
	}

	attributes := map[string]types.MessageAttributeValue{
		"EventType": {
			StringValue: aws.String(event.Type),
			DataType:    aws.String("String"),
		},
		"Grantee": {
			StringValue: aws.String(event.Grantee),
			DataType:    aws.String("String"),
		},
	}
	if event.CorrelationID != "" {
		attributes["CorrelationID"] = types.MessageAttributeValue{
			StringValue: aws.String(event.CorrelationID),
			DataType:    aws.String("String"),
		}
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:          aws.String(p.queueURL),
		MessageBody:       aws.String(string(body)),
		MessageAttributes: attributes,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}
	return nil
}
