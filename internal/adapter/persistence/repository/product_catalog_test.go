package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestStaticProductCatalog_Seed(t *testing.T) {
	catalog, err := NewStaticProductCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	products, err := catalog.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) == 0 {
		t.Fatalf("expected seeded products")
	}

	p, _ := catalog.GetByID(context.Background(), "choc-1")
	if p.ID != "choc-1" || !p.Price.Equal(decimal.RequireFromString("5.00")) {
		t.Fatalf("unexpected product: %+v", p)
	}

	missing, _ := catalog.GetByID(context.Background(), "nope")
	if missing.ID != "" {
		t.Fatalf("expected zero product")
	}
}

func TestStaticProductCatalog_InvalidSeed(t *testing.T) {
	if _, err := newStaticProductCatalog([]byte(`[{"name":"no id"}]`)); err == nil {
		t.Fatalf("expected error for product without id")
	}
	if _, err := newStaticProductCatalog([]byte(`{`)); err == nil {
		t.Fatalf("expected error for malformed seed")
	}
}

func TestProductDynamoRepository_List(t *testing.T) {
	item, _ := attributevalue.MarshalMap(productItem{ID: "choc-9", Name: "Ruby Bar", Price: "6.10", Stock: 3})
	ddb := &fakeDynamoDB{scanOut: &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{item}}}
	repo := NewProductDynamoRepository(ddb, "products")

	products, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].Stock != 3 || products[0].Price.String() != "6.1" {
		t.Fatalf("unexpected products: %+v", products)
	}
}
