package interfaces

import (
	"context"
	"pedidos_xpto/internal/domain/entities"
)

// ICatalogRepository abstracts the customer/product reference data source.
//
// Absence is a normal outcome, not an error: a zero-ID entity means the
// record does not exist. The error return is reserved for infrastructure
// adapters (e.g. DynamoDB); the in-memory catalog never fails.
//
// The validation rules consume this read-only; nothing in the system writes
// through it.

type ICatalogRepository interface {
	FindCustomer(ctx context.Context, id string) (entities.Customer, error)
	FindProduct(ctx context.Context, id string) (entities.Product, error)
}
