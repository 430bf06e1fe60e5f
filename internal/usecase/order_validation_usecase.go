package usecase

import (
	"context"
	"fmt"
	"log"

	"pedidos_xpto/internal/domain/entities"
	"pedidos_xpto/internal/usecase/interfaces"
)

// IOrderValidationUseCase exposes the order validation workflow.
//
// ValidateOrder always returns a well-formed result: structural problems and
// business rejections surface as a rejected result, and anything unexpected
// is contained and reported with status "error". No Go error crosses this
// boundary.

type IOrderValidationUseCase interface {
	ValidateOrder(ctx context.Context, req entities.OrderRequest) entities.ValidationResult
}

type OrderValidationUseCase struct {
	rules *ValidationRules
}

var _ IOrderValidationUseCase = (*OrderValidationUseCase)(nil)

func NewOrderValidationUseCase(catalog interfaces.ICatalogRepository) *OrderValidationUseCase {
	return &OrderValidationUseCase{rules: NewValidationRules(catalog)}
}

// ValidateOrder creates a fresh context for the request, drives it through
// the workflow to a terminal state and projects it into the final result.
func (u *OrderValidationUseCase) ValidateOrder(ctx context.Context, req entities.OrderRequest) (res entities.ValidationResult) {
	log.Printf("[validation][usecase] starting validation order_id=%q customer_id=%q items=%d", req.OrderID, req.CustomerID, len(req.Items))

	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("Critical failure validating order %s: %v", req.OrderID, r)
			log.Printf("[validation][usecase] %s", msg)
			res = entities.ValidationResult{
				Status:   entities.OrderStatusError,
				Approved: false,
				Message:  msg,
				Errors:   []string{msg},
				Warnings: []string{},
			}
		}
	}()

	state := newValidationContext(req)
	u.run(ctx, state)

	res = state.result()
	log.Printf("[validation][usecase] validation finished order_id=%q status=%s errors=%d", req.OrderID, res.Status, len(res.Errors))
	return res
}
