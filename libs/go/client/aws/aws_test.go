package aws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
)

type fakeSecrets struct {
	values map[string]string
	err    error
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	value, ok := f.values[aws.ToString(params.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(value)}, nil
}

func TestGetSecretString(t *testing.T) {
	client := newSecretsManagerClient(&fakeSecrets{values: map[string]string{
		"arn:plain":  "plain-value",
		"arn:single": `{"AUTH_JWKS_ENDPOINT":"https://jwks.example"}`,
		"arn:multi":  `{"a":"1","b":"2"}`,
	}})
	ctx := context.Background()

	tests := []struct {
		name     string
		arn      string
		fallback string
		want     string
		wantErr  bool
	}{
		{name: "plain secret", arn: "arn:plain", want: "plain-value"},
		{name: "single key json", arn: "arn:single", want: "https://jwks.example"},
		{name: "multi key json is returned raw", arn: "arn:multi", want: `{"a":"1","b":"2"}`},
		{name: "missing arn falls back", arn: "arn:missing", fallback: "fallback-value", want: "fallback-value"},
		{name: "no arn uses fallback", fallback: "fallback-value", want: "fallback-value"},
		{name: "nothing set", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SECRET_ARN", tt.arn)
			t.Setenv("TEST_SECRET", tt.fallback)

			got, err := client.GetSecretString(ctx, "TEST_SECRET_ARN", "TEST_SECRET")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, client.GetOptionalSecretString(ctx, "TEST_SECRET_ARN", "TEST_SECRET"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetSecretJSON(t *testing.T) {
	client := newSecretsManagerClient(&fakeSecrets{values: map[string]string{
		"arn:rds": `{"username":"dash","password":"p@ss"}`,
		"arn:bad": `not json`,
	}})
	ctx := context.Background()

	var target struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	t.Setenv("RDS_SECRET_ARN", "arn:rds")
	require.NoError(t, client.GetSecretJSON(ctx, "RDS_SECRET_ARN", &target))
	assert.Equal(t, "dash", target.Username)
	assert.Equal(t, "p@ss", target.Password)

	t.Setenv("RDS_SECRET_ARN", "arn:bad")
	assert.Error(t, client.GetSecretJSON(ctx, "RDS_SECRET_ARN", &target))

	t.Setenv("RDS_SECRET_ARN", "")
	assert.Error(t, client.GetSecretJSON(ctx, "RDS_SECRET_ARN", &target))
}

type fakeSQS struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSQSPublisher_PublishGrantEvent(t *testing.T) {
	fake := &fakeSQS{}
	publisher := &SQSPublisher{client: fake, queueURL: "https://sqs.example/queue"}

	event := business.GrantEvent{
		ID:            uuid.New(),
		Type:          business.GrantEventMessagesBuilt,
		Granter:       "xion1granter",
		Grantee:       "xion1grantee",
		Stake:         true,
		CorrelationID: "corr-1",
	}
	require.NoError(t, publisher.PublishGrantEvent(context.Background(), event))

	require.NotNil(t, fake.input)
	assert.Equal(t, "https://sqs.example/queue", aws.ToString(fake.input.QueueUrl))
	assert.Equal(t, business.GrantEventMessagesBuilt, aws.ToString(fake.input.MessageAttributes["EventType"].StringValue))
	assert.Equal(t, "corr-1", aws.ToString(fake.input.MessageAttributes["CorrelationID"].StringValue))

	var decoded business.GrantEvent
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(fake.input.MessageBody)), &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.True(t, decoded.Stake)

	fake.err = errors.New("throttled")
	assert.Error(t, publisher.PublishGrantEvent(context.Background(), event))
}

func TestNewSQSPublisher_RequiresQueue(t *testing.T) {
	_, err := NewSQSPublisher(context.Background(), "")
	assert.Error(t, err)
}
