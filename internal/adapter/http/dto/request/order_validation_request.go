package request

import (
	"strings"

	"pedidos_xpto/internal/domain/entities"
)

type OrderItemRequest struct {
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

// OrderValidationRequest is the payload accepted by POST /orders/validate.
//
// No field carries a binding tag on purpose: structurally broken orders must
// reach the workflow so the rejection carries the per-field error list, not a
// generic 400.
type OrderValidationRequest struct {
	OrderID    string             `json:"order_id"`
	CustomerID string             `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
}

// ToOrderRequest converts the payload into the domain input. Ids are trimmed;
// everything else passes through untouched so the workflow sees what the
// caller sent.
func (r OrderValidationRequest) ToOrderRequest() entities.OrderRequest {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ProductID: strings.TrimSpace(it.ProductID),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return entities.OrderRequest{
		OrderID:    strings.TrimSpace(r.OrderID),
		CustomerID: strings.TrimSpace(r.CustomerID),
		Items:      items,
	}
}
