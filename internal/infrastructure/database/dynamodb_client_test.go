package database

import (
	"context"
	"testing"

	appconfig "choco_checkout/internal/config"
)

func TestConnectDynamoDB_DisabledReturnsNil(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), appconfig.DatabaseConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Fatalf("expected nil client in degraded mode")
	}
}

func TestNewDynamoDBConfig_LocalEndpointUsesPlaceholderCredentials(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), appconfig.DatabaseConfig{
		Enabled:  true,
		Region:   "us-east-1",
		Endpoint: "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("retrieve credentials: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected placeholder credentials, got %q", creds.AccessKeyID)
	}
	if cfg.Region != "us-east-1" {
		t.Fatalf("unexpected region: %s", cfg.Region)
	}
}
