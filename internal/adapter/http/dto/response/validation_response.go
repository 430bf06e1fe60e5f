package response

import (
	"pedidos_xpto/internal/domain/entities"
)

// ValidationResponse is the wire shape of one validation run. ValidationID
// identifies the run itself (assigned per request), not the order.
type ValidationResponse struct {
	ValidationID      string                     `json:"validation_id"`
	Status            string                     `json:"status"`
	Approved          bool                       `json:"approved"`
	Message           string                     `json:"message"`
	TotalAmount       float64                    `json:"total_amount"`
	Errors            []string                   `json:"errors"`
	Warnings          []string                   `json:"warnings"`
	ValidationDetails entities.ValidationDetails `json:"validation_details"`
}

func FromValidationResult(validationID string, r entities.ValidationResult) ValidationResponse {
	return ValidationResponse{
		ValidationID:      validationID,
		Status:            string(r.Status),
		Approved:          r.Approved,
		Message:           r.Message,
		TotalAmount:       r.TotalAmount,
		Errors:            r.Errors,
		Warnings:          r.Warnings,
		ValidationDetails: r.ValidationDetails,
	}
}

// CustomerResponse is the wire shape of a catalog customer lookup.
type CustomerResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Status          string  `json:"status"`
	CreditLimit     float64 `json:"credit_limit"`
	CurrentBalance  float64 `json:"current_balance"`
	AvailableCredit float64 `json:"available_credit"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Status:          string(c.Status),
		CreditLimit:     c.CreditLimit,
		CurrentBalance:  c.CurrentBalance,
		AvailableCredit: c.CreditLimit - c.CurrentBalance,
	}
}

// ProductResponse is the wire shape of a catalog product lookup.
type ProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	InStock  bool    `json:"in_stock"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		Category: p.Category,
		InStock:  p.Stock > 0,
	}
}
