package request

import (
	"testing"
)

func TestOrderValidationRequest_ToOrderRequest(t *testing.T) {
	t.Run("trims ids and keeps lines ordered", func(t *testing.T) {
		price := 1200.0
		payload := OrderValidationRequest{
			OrderID:    " ORD-001 ",
			CustomerID: "CUST001\n",
			Items: []OrderItemRequest{
				{ProductID: " PROD001 ", Quantity: 2, UnitPrice: &price},
				{ProductID: "PROD002", Quantity: 5},
			},
		}

		req := payload.ToOrderRequest()

		if req.OrderID != "ORD-001" || req.CustomerID != "CUST001" {
			t.Fatalf("expected trimmed ids, got %q / %q", req.OrderID, req.CustomerID)
		}
		if len(req.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(req.Items))
		}
		if req.Items[0].ProductID != "PROD001" || req.Items[0].Quantity != 2 {
			t.Fatalf("unexpected first item: %+v", req.Items[0])
		}
		if req.Items[0].UnitPrice == nil || *req.Items[0].UnitPrice != 1200.0 {
			t.Fatalf("expected asserted price to pass through: %+v", req.Items[0].UnitPrice)
		}
		if req.Items[1].UnitPrice != nil {
			t.Fatalf("missing asserted price must stay nil")
		}
	})

	t.Run("empty payload stays empty", func(t *testing.T) {
		req := OrderValidationRequest{}.ToOrderRequest()

		if req.OrderID != "" || req.CustomerID != "" {
			t.Fatalf("unexpected ids: %q / %q", req.OrderID, req.CustomerID)
		}
		if len(req.Items) != 0 {
			t.Fatalf("expected no items, got %d", len(req.Items))
		}
	})
}
