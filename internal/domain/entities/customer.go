package entities

// CustomerStatus represents the commercial status of a customer account.
//
// Domain notes:
//   - The catalog is the source of truth for customer reference data.
//   - Only active customers may place orders; the workflow rejects the rest.

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// Customer is the customer reference record served by the catalog.
//
// Monetary representation:
//   - CreditLimit and CurrentBalance are non-negative currency amounts.
//   - Available credit is derived (limit - balance), never stored.
type Customer struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Status         CustomerStatus `json:"status"`
	CreditLimit    float64        `json:"credit_limit"`
	CurrentBalance float64        `json:"current_balance"`
}

// IsActive reports whether the customer may place orders.
func (c Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}
