package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	repository "pedidos_xpto/internal/adapter/persistence/repository"
	"pedidos_xpto/internal/domain/entities"
	"pedidos_xpto/internal/usecase"
)

type exampleOrder struct {
	description string
	request     entities.OrderRequest
}

func price(v float64) *float64 { return &v }

// exampleOrders covers every rejection path plus the happy path against the
// reference catalog.
var exampleOrders = []exampleOrder{
	{
		description: "Valid order - active customer with sufficient credit",
		request: entities.OrderRequest{
			OrderID:    "ORD-001",
			CustomerID: "CUST001",
			Items: []entities.OrderItem{
				{ProductID: "PROD001", Quantity: 2, UnitPrice: price(1200.0)},
				{ProductID: "PROD002", Quantity: 5, UnitPrice: price(25.0)},
			},
		},
	},
	{
		description: "Rejected order - insufficient credit (needs $6000, has $500)",
		request: entities.OrderRequest{
			OrderID:    "ORD-002",
			CustomerID: "CUST002",
			Items: []entities.OrderItem{
				{ProductID: "PROD001", Quantity: 5, UnitPrice: price(1200.0)},
			},
		},
	},
	{
		description: "Rejected order - inactive customer",
		request: entities.OrderRequest{
			OrderID:    "ORD-003",
			CustomerID: "CUST003",
			Items: []entities.OrderItem{
				{ProductID: "PROD004", Quantity: 2, UnitPrice: price(350.0)},
			},
		},
	},
	{
		description: "Rejected order - product out of stock (PROD005)",
		request: entities.OrderRequest{
			OrderID:    "ORD-004",
			CustomerID: "CUST004",
			Items: []entities.OrderItem{
				{ProductID: "PROD005", Quantity: 3, UnitPrice: price(120.0)},
				{ProductID: "PROD002", Quantity: 2, UnitPrice: price(25.0)},
			},
		},
	},
	{
		description: "Rejected order - nonexistent product (PROD999)",
		request: entities.OrderRequest{
			OrderID:    "ORD-005",
			CustomerID: "CUST005",
			Items: []entities.OrderItem{
				{ProductID: "PROD999", Quantity: 1, UnitPrice: price(100.0)},
				{ProductID: "PROD001", Quantity: 2, UnitPrice: price(1200.0)},
			},
		},
	},
}

func main() {
	catalog := repository.NewCatalogMemoryRepository()
	uc := usecase.NewOrderValidationUseCase(catalog)

	for _, example := range exampleOrders {
		fmt.Printf("\n=== %s (%s) ===\n", example.request.OrderID, example.description)

		result := uc.ValidateOrder(context.Background(), example.request)

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("failed to render result for %s: %v", example.request.OrderID, err)
		}
		fmt.Println(string(out))
	}
}
