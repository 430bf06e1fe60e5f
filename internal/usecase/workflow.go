package usecase

import (
	"context"
	"fmt"
	"log"

	"pedidos_xpto/internal/domain/entities"
)

// ValidationContext is the mutable state threaded through one workflow run.
// It is owned by exactly one ValidateOrder call: never shared, never reused.
type ValidationContext struct {
	OrderID    string
	CustomerID string
	Items      []entities.OrderItem

	CustomerValidation *entities.CustomerValidation
	ItemsValidation    *entities.ItemsValidation
	CreditValidation   *entities.CreditValidation

	Status      entities.OrderStatus
	Errors      []string
	Warnings    []string
	TotalAmount float64
	Approved    bool
	Message     string
	Details     entities.ValidationDetails
}

func newValidationContext(req entities.OrderRequest) *ValidationContext {
	return &ValidationContext{
		OrderID:    req.OrderID,
		CustomerID: req.CustomerID,
		Items:      req.Items,
		Status:     entities.OrderStatusPending,
		Errors:     []string{},
		Warnings:   []string{},
	}
}

func (s *ValidationContext) result() entities.ValidationResult {
	return entities.ValidationResult{
		Status:            s.Status,
		Approved:          s.Approved,
		Message:           s.Message,
		TotalAmount:       s.TotalAmount,
		Errors:            s.Errors,
		Warnings:          s.Warnings,
		ValidationDetails: s.Details,
	}
}

// workflowNode identifies one step of the validation workflow. The topology
// is fixed: parse -> customer -> items -> credit, each step branching to the
// rejection handler on a negative verdict.

type workflowNode int

const (
	nodeParseOrder workflowNode = iota
	nodeValidateCustomer
	nodeValidateItems
	nodeCheckCredit
	nodeProcessOrder
	nodeHandleRejection
	nodeEnd
)

// run drives the context from the parse node to a terminal state. Every
// branch decision reads only the context's current verdict fields.
func (u *OrderValidationUseCase) run(ctx context.Context, s *ValidationContext) {
	node := nodeParseOrder
	for node != nodeEnd {
		switch node {
		case nodeParseOrder:
			u.parseOrder(s)
		case nodeValidateCustomer:
			u.validateCustomer(ctx, s)
		case nodeValidateItems:
			u.validateItems(ctx, s)
		case nodeCheckCredit:
			u.checkCredit(ctx, s)
		case nodeProcessOrder:
			u.processOrder(s)
		case nodeHandleRejection:
			u.handleRejection(s)
		}
		node = u.next(node, s)
	}
}

// next is the transition function. Terminal nodes route to nodeEnd.
func (u *OrderValidationUseCase) next(node workflowNode, s *ValidationContext) workflowNode {
	switch node {
	case nodeParseOrder:
		if s.Status == entities.OrderStatusValidating {
			return nodeValidateCustomer
		}
		return nodeHandleRejection
	case nodeValidateCustomer:
		if s.CustomerValidation != nil && s.CustomerValidation.Valid {
			return nodeValidateItems
		}
		return nodeHandleRejection
	case nodeValidateItems:
		if s.ItemsValidation != nil && s.ItemsValidation.Valid {
			return nodeCheckCredit
		}
		return nodeHandleRejection
	case nodeCheckCredit:
		if s.CreditValidation != nil && s.CreditValidation.HasCredit {
			return nodeProcessOrder
		}
		return nodeHandleRejection
	default:
		return nodeEnd
	}
}

// parseOrder validates the structural shape of the request. Violations are
// collected as errors; the status only advances to validating when there are
// none.
func (u *OrderValidationUseCase) parseOrder(s *ValidationContext) {
	log.Printf("[validation][workflow] parsing order order_id=%q", s.OrderID)

	if s.OrderID == "" {
		s.Errors = append(s.Errors, "Order id not provided")
	}
	if s.CustomerID == "" {
		s.Errors = append(s.Errors, "Customer id not provided")
	}
	if len(s.Items) == 0 {
		s.Errors = append(s.Errors, "No items provided in the order")
	}

	// Duplicate lines are legal but usually a caller bug; warn once per product.
	seen := map[string]bool{}
	warned := map[string]bool{}
	for _, item := range s.Items {
		if seen[item.ProductID] && !warned[item.ProductID] {
			s.Warnings = append(s.Warnings, fmt.Sprintf("Duplicate product %s in order items", item.ProductID))
			warned[item.ProductID] = true
		}
		seen[item.ProductID] = true
	}

	if len(s.Errors) > 0 {
		// Structural failures terminate through the rejection handler, which
		// overwrites the status to rejected; "error" is reachable only via
		// the top-level containment in ValidateOrder.
		s.Status = entities.OrderStatusError
		s.Message = fmt.Sprintf("Order structure errors: %d error(s)", len(s.Errors))
		log.Printf("[validation][workflow] parse failed order_id=%q errors=%d", s.OrderID, len(s.Errors))
		return
	}

	s.Status = entities.OrderStatusValidating
	s.Message = "Order parsed, starting validations"
}

func (u *OrderValidationUseCase) validateCustomer(ctx context.Context, s *ValidationContext) {
	log.Printf("[validation][workflow] validating customer customer_id=%s order_id=%s", s.CustomerID, s.OrderID)

	verdict, err := runRule(func() (entities.CustomerValidation, error) {
		return u.rules.ValidateCustomer(ctx, s.CustomerID)
	})
	if err != nil {
		msg := fmt.Sprintf("Error validating customer: %v", err)
		log.Printf("[validation][workflow] %s", msg)
		s.Errors = append(s.Errors, msg)
		s.CustomerValidation = &entities.CustomerValidation{Message: msg}
		return
	}

	s.CustomerValidation = &verdict
	if !verdict.Valid {
		s.Errors = append(s.Errors, verdict.Message)
		log.Printf("[validation][workflow] customer validation failed order_id=%s: %s", s.OrderID, verdict.Message)
	}
}

func (u *OrderValidationUseCase) validateItems(ctx context.Context, s *ValidationContext) {
	log.Printf("[validation][workflow] validating %d items order_id=%s", len(s.Items), s.OrderID)

	verdict, err := runRule(func() (entities.ItemsValidation, error) {
		return u.rules.ValidateItems(ctx, s.Items)
	})
	if err != nil {
		msg := fmt.Sprintf("Error validating items: %v", err)
		log.Printf("[validation][workflow] %s", msg)
		s.Errors = append(s.Errors, msg)
		s.ItemsValidation = &entities.ItemsValidation{Message: msg}
		return
	}

	s.ItemsValidation = &verdict
	s.TotalAmount = verdict.TotalAmount

	if !verdict.Valid {
		s.Errors = append(s.Errors, verdict.Message)
		for _, invalid := range verdict.InvalidItems {
			s.Errors = append(s.Errors, fmt.Sprintf("Item %s: %s", invalid.ProductID, invalid.Reason))
		}
		log.Printf("[validation][workflow] items validation failed order_id=%s: %s", s.OrderID, verdict.Message)
	}
}

func (u *OrderValidationUseCase) checkCredit(ctx context.Context, s *ValidationContext) {
	log.Printf("[validation][workflow] checking credit order_id=%s amount=%.2f", s.OrderID, s.TotalAmount)

	verdict, err := runRule(func() (entities.CreditValidation, error) {
		return u.rules.CheckCredit(ctx, s.CustomerID, s.TotalAmount)
	})
	if err != nil {
		msg := fmt.Sprintf("Error checking credit: %v", err)
		log.Printf("[validation][workflow] %s", msg)
		s.Errors = append(s.Errors, msg)
		s.CreditValidation = &entities.CreditValidation{Message: msg}
		return
	}

	s.CreditValidation = &verdict
	if !verdict.HasCredit {
		s.Errors = append(s.Errors, verdict.Message)
		log.Printf("[validation][workflow] credit check failed order_id=%s: %s", s.OrderID, verdict.Message)
	}
}

// processOrder is the approval terminal node.
func (u *OrderValidationUseCase) processOrder(s *ValidationContext) {
	s.Status = entities.OrderStatusApproved
	s.Approved = true
	s.Message = fmt.Sprintf("Order %s approved successfully. Total: $%.2f", s.OrderID, s.TotalAmount)

	itemsCount := 0
	if s.ItemsValidation != nil {
		itemsCount = len(s.ItemsValidation.ValidatedItems)
	}

	s.Details = entities.ValidationDetails{
		Customer: s.CustomerValidation,
		Items:    s.ItemsValidation,
		Credit:   s.CreditValidation,
		Summary: &entities.ValidationSummary{
			OrderID:     s.OrderID,
			CustomerID:  s.CustomerID,
			TotalAmount: s.TotalAmount,
			ItemsCount:  itemsCount,
			Approved:    true,
		},
	}

	log.Printf("[validation][workflow] order approved order_id=%s total=%.2f", s.OrderID, s.TotalAmount)
}

// handleRejection is the rejection terminal node. Whatever verdicts were
// produced up to this point are carried into the details; absent ones are
// omitted.
func (u *OrderValidationUseCase) handleRejection(s *ValidationContext) {
	s.Status = entities.OrderStatusRejected
	s.Approved = false
	s.Message = fmt.Sprintf("Order %s rejected. %d error(s) found.", s.OrderID, len(s.Errors))

	s.Details = entities.ValidationDetails{
		Customer: s.CustomerValidation,
		Items:    s.ItemsValidation,
		Credit:   s.CreditValidation,
		Errors:   s.Errors,
		Warnings: s.Warnings,
		Summary: &entities.ValidationSummary{
			OrderID:     s.OrderID,
			CustomerID:  s.CustomerID,
			TotalAmount: s.TotalAmount,
			Approved:    false,
			ErrorCount:  len(s.Errors),
		},
	}

	log.Printf("[validation][workflow] order rejected order_id=%s errors=%d", s.OrderID, len(s.Errors))
}

// runRule executes one validation rule, converting a panic into an error so
// no rule failure escapes its node.
func runRule[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule failure: %v", r)
		}
	}()
	return fn()
}
