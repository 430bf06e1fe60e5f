package entities

// OrderStatus represents the lifecycle of one order validation run.
//
// Status transitions are driven by the validation workflow:
//   - pending -> validating after the structural parse passes
//   - validating -> approved | rejected depending on the rule verdicts
//   - error is reserved for failures that escape every validation step
//
//go:generate stringer -type=OrderStatus

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusValidating OrderStatus = "validating"
	OrderStatusApproved   OrderStatus = "approved"
	OrderStatusRejected   OrderStatus = "rejected"
	OrderStatusError      OrderStatus = "error"
)

// OrderItem is one product line inside an order request.
//
// UnitPrice is optional: when the caller asserts a price it is checked against
// the catalog price (0.01 absolute tolerance) but the catalog price is always
// the one charged.
type OrderItem struct {
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
}

// OrderRequest is the validation input: order id, customer id and the ordered
// item lines. All three are required; the workflow's parse step enforces it.
type OrderRequest struct {
	OrderID    string      `json:"order_id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
}
