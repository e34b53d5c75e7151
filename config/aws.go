package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// LoadAWS builds the AWS SDK configuration for the selected region and
// credential source.
func (c *Config) LoadAWS(ctx context.Context) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if c.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.Region))
	}

	switch c.CredentialSource {
	case CredentialsEnv:
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken),
		))
	case CredentialsProfile:
		opts = append(opts, awsconfig.WithSharedConfigProfile(c.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}

// NewDynamoDBClient creates a DynamoDB client from the environment settings.
// The client is safe for concurrent use and meant to be built once per
// execution environment.
func (c *Config) NewDynamoDBClient(ctx context.Context) (*dynamodb.Client, error) {
	awsCfg, err := c.LoadAWS(ctx)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}
