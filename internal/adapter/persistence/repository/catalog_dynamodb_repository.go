package repository

import (
	"context"

	"pedidos_xpto/internal/domain/entities"
	"pedidos_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	defaultProductsTableName  = "products"
)

type customerItem struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"name"`
	Email          string  `dynamodbav:"email"`
	Status         string  `dynamodbav:"status"`
	CreditLimit    float64 `dynamodbav:"credit_limit"`
	CurrentBalance float64 `dynamodbav:"current_balance"`
}

type productItem struct {
	ID       string  `dynamodbav:"id"`
	Name     string  `dynamodbav:"name"`
	Price    float64 `dynamodbav:"price"`
	Stock    int     `dynamodbav:"stock"`
	Category string  `dynamodbav:"category"`
}

// CatalogDynamoRepository reads customer/product reference data from
// DynamoDB. It stands in for the external catalog/credit service when the
// service is deployed with CATALOG_SOURCE=dynamodb.
//
// Table requirements (both tables):
//   - PK: id (string)
//
// The repository is strictly read-only; catalog maintenance is owned by
// another service.

type CatalogDynamoRepository struct {
	ddb            *dynamodb.Client
	customersTable string
	productsTable  string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:            ddb,
		customersTable: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
		productsTable:  getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *CatalogDynamoRepository) FindCustomer(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.getByID(ctx, r.customersTable, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Customer{}, err
	}
	return entities.Customer{
		ID:             it.ID,
		Name:           it.Name,
		Email:          it.Email,
		Status:         entities.CustomerStatus(it.Status),
		CreditLimit:    it.CreditLimit,
		CurrentBalance: it.CurrentBalance,
	}, nil
}

func (r *CatalogDynamoRepository) FindProduct(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.getByID(ctx, r.productsTable, id)
	if err != nil {
		return entities.Product{}, err
	}
	if len(out) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Product{}, err
	}
	return entities.Product{
		ID:       it.ID,
		Name:     it.Name,
		Price:    it.Price,
		Stock:    it.Stock,
		Category: it.Category,
	}, nil
}

func (r *CatalogDynamoRepository) getByID(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// Reference data: eventually consistent reads are enough.
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}
