package database

import (
	"context"
	"log"

	appconfig "choco_checkout/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the loaded database settings.
// It returns nil when the database is not configured; callers then fall back
// to degraded, non-persisting collaborators.
func ConnectDynamoDB(ctx context.Context, db appconfig.DatabaseConfig) (*dynamodb.Client, error) {
	if !db.Enabled {
		log.Printf("[database] dynamodb disabled: no credentials configured, orders will not be persisted")
		return nil, nil
	}

	cfg, err := NewDynamoDBConfig(ctx, db)
	if err != nil {
		return nil, err
	}
	log.Printf("[database] dynamodb client ready region=%s endpoint=%q key_id=%s", db.Region, db.Endpoint, appconfig.Redact(db.AccessKeyID))
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if db.Endpoint != "" {
			o.BaseEndpoint = aws.String(db.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, db appconfig.DatabaseConfig) (aws.Config, error) {
	keyID, secret := db.AccessKeyID, db.SecretAccessKey
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if keyID == "" && secret == "" && db.Endpoint != "" {
		keyID, secret = "local", "local"
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(db.Region),
	}
	if keyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(keyID, secret, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
