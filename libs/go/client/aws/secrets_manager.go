package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
)

// secretsAPI is the part of the Secrets Manager client used here.
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc secretsAPI
	log *zap.Logger
}

// NewSecretsManagerClient creates a client from the default AWS configuration
// chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return newSecretsManagerClient(secretsmanager.NewFromConfig(cfg)), nil
}

func newSecretsManagerClient(svc secretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{
		svc: svc,
		log: logger.ForComponent(logger.ComponentServer),
	}
}

// GetSecretString resolves a secret from the ARN held in secretArnEnvVar and
// falls back to the plain value of fallbackEnvVar. A secret stored as a JSON
// object with a single key resolves to that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if secretArn := os.Getenv(secretArnEnvVar); secretArn != "" {
		raw, err := c.fetch(ctx, secretArn)
		if err == nil && raw != "" {
			return unwrapSingleKey(raw), nil
		}
		c.log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if fallbackEnvVar != "" {
		if value := os.Getenv(fallbackEnvVar); value != "" {
			c.log.Debug("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
			return value, nil
		}
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetOptionalSecretString is GetSecretString for settings that may be unset.
func (c *SecretsManagerClient) GetOptionalSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) string {
	value, err := c.GetSecretString(ctx, secretArnEnvVar, fallbackEnvVar)
	if err != nil {
		return ""
	}
	return value
}

// GetSecretJSON fetches the secret behind secretArnEnvVar and unmarshals it
// into target. There is no env var fallback for JSON secrets.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" {
		return fmt.Errorf("secret ARN env var '%s' not set", secretArnEnvVar)
	}

	raw, err := c.fetch(ctx, secretArn)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("failed to parse JSON secret from '%s': %w", secretArnEnvVar, err)
	}
	return nil
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret value: %w", err)
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}
	return *result.SecretString, nil
}

// unwrapSingleKey returns the value of a single-key JSON object, or raw
// unchanged for anything else.
func unwrapSingleKey(raw string) string {
	var secretJSON map[string]string
	if err := json.Unmarshal([]byte(raw), &secretJSON); err != nil || len(secretJSON) != 1 {
		return raw
	}
	for _, value := range secretJSON {
		return value
	}
	return raw
}
