package response

import (
	"testing"

	"pedidos_xpto/internal/domain/entities"
)

func TestFromValidationResult(t *testing.T) {
	result := entities.ValidationResult{
		Status:      entities.OrderStatusApproved,
		Approved:    true,
		Message:     "Order ORD-001 approved successfully. Total: $2525.00",
		TotalAmount: 2525.0,
		Errors:      []string{},
		Warnings:    []string{"Duplicate product PROD002 in order items"},
		ValidationDetails: entities.ValidationDetails{
			Summary: &entities.ValidationSummary{OrderID: "ORD-001", Approved: true},
		},
	}

	resp := FromValidationResult("run-1", result)

	if resp.ValidationID != "run-1" {
		t.Fatalf("expected validation id run-1, got %q", resp.ValidationID)
	}
	if resp.Status != "approved" || !resp.Approved {
		t.Fatalf("unexpected status mapping: %+v", resp)
	}
	if resp.TotalAmount != 2525.0 {
		t.Fatalf("unexpected total: %v", resp.TotalAmount)
	}
	if len(resp.Warnings) != 1 {
		t.Fatalf("expected warnings to pass through: %v", resp.Warnings)
	}
	if resp.ValidationDetails.Summary == nil || resp.ValidationDetails.Summary.OrderID != "ORD-001" {
		t.Fatalf("expected details to pass through: %+v", resp.ValidationDetails)
	}
}

func TestFromCustomer(t *testing.T) {
	resp := FromCustomer(entities.Customer{
		ID:             "CUST001",
		Name:           "Acme Corporation",
		Email:          "contact@acme.com",
		Status:         entities.CustomerStatusActive,
		CreditLimit:    10000.0,
		CurrentBalance: 2000.0,
	})

	if resp.Status != "active" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
	if resp.AvailableCredit != 8000.0 {
		t.Fatalf("expected derived available credit 8000.0, got %v", resp.AvailableCredit)
	}
}

func TestFromProduct(t *testing.T) {
	t.Run("in stock", func(t *testing.T) {
		resp := FromProduct(entities.Product{ID: "PROD001", Name: "Laptop Pro 15", Price: 1200.0, Stock: 50, Category: "electronics"})
		if !resp.InStock {
			t.Fatalf("expected in_stock true")
		}
	})

	t.Run("out of stock", func(t *testing.T) {
		resp := FromProduct(entities.Product{ID: "PROD005", Name: "Mechanical Keyboard", Price: 120.0, Stock: 0, Category: "accessories"})
		if resp.InStock {
			t.Fatalf("expected in_stock false")
		}
	})
}
