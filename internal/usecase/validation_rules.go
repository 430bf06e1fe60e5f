package usecase

import (
	"context"
	"fmt"

	"pedidos_xpto/internal/domain/entities"
	"pedidos_xpto/internal/usecase/interfaces"
)

// PriceTolerance is the maximum absolute difference accepted between a
// caller-asserted unit price and the catalog price.
const PriceTolerance = 0.01

// ValidationRules holds the three order validation rules. Each rule is a pure
// function over the catalog: rejections are returned as data (a verdict), and
// the error return only surfaces catalog infrastructure failures.
type ValidationRules struct {
	catalog interfaces.ICatalogRepository
}

func NewValidationRules(catalog interfaces.ICatalogRepository) *ValidationRules {
	return &ValidationRules{catalog: catalog}
}

// ValidateCustomer checks that the customer exists in the catalog and is
// active.
func (r *ValidationRules) ValidateCustomer(ctx context.Context, customerID string) (entities.CustomerValidation, error) {
	if customerID == "" {
		return entities.CustomerValidation{
			Message: "Customer id not provided",
		}, nil
	}

	customer, err := r.catalog.FindCustomer(ctx, customerID)
	if err != nil {
		return entities.CustomerValidation{}, err
	}
	if customer.ID == "" {
		return entities.CustomerValidation{
			Message: fmt.Sprintf("Customer %s does not exist", customerID),
		}, nil
	}

	if !customer.IsActive() {
		return entities.CustomerValidation{
			Exists:       true,
			CustomerData: &customer,
			Message:      fmt.Sprintf("Customer %s exists but is inactive", customerID),
		}, nil
	}

	return entities.CustomerValidation{
		Valid:        true,
		Exists:       true,
		Active:       true,
		CustomerData: &customer,
		Message:      fmt.Sprintf("Customer %s valid and active", customerID),
	}, nil
}

// ValidateItems checks every order line against the catalog (existence,
// quantity, stock, asserted price) and computes the order total from catalog
// prices. Lines are classified independently, in input order, by the first
// failing check.
func (r *ValidationRules) ValidateItems(ctx context.Context, items []entities.OrderItem) (entities.ItemsValidation, error) {
	result := entities.ItemsValidation{
		ValidatedItems: []entities.ValidatedItem{},
		InvalidItems:   []entities.InvalidItem{},
	}

	if len(items) == 0 {
		result.Message = "No items provided in the order"
		return result, nil
	}

	for _, item := range items {
		product, err := r.catalog.FindProduct(ctx, item.ProductID)
		if err != nil {
			return entities.ItemsValidation{}, err
		}
		if product.ID == "" {
			result.InvalidItems = append(result.InvalidItems, entities.InvalidItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Reason:    fmt.Sprintf("Product %s does not exist in catalog", item.ProductID),
			})
			continue
		}

		if item.Quantity <= 0 {
			result.InvalidItems = append(result.InvalidItems, entities.InvalidItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Reason:    "Quantity must be greater than 0",
			})
			continue
		}

		if item.Quantity > product.Stock {
			result.InvalidItems = append(result.InvalidItems, entities.InvalidItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Reason:    fmt.Sprintf("Insufficient stock. Requested: %d, Available: %d", item.Quantity, product.Stock),
			})
			continue
		}

		if item.UnitPrice != nil && abs(*item.UnitPrice-product.Price) > PriceTolerance {
			result.InvalidItems = append(result.InvalidItems, entities.InvalidItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Reason:    fmt.Sprintf("Price mismatch. Provided: $%.2f, Actual: $%.2f", *item.UnitPrice, product.Price),
			})
			continue
		}

		itemTotal := product.Price * float64(item.Quantity)
		result.TotalAmount += itemTotal
		result.ValidatedItems = append(result.ValidatedItems, entities.ValidatedItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			ItemTotal:   itemTotal,
			Category:    product.Category,
		})
	}

	result.Valid = len(result.InvalidItems) == 0 && len(result.ValidatedItems) > 0

	if result.Valid {
		result.Message = fmt.Sprintf("All %d items are valid. Total: $%.2f", len(result.ValidatedItems), result.TotalAmount)
	} else {
		result.Message = fmt.Sprintf("Validation failed: %d invalid items out of %d total", len(result.InvalidItems), len(items))
	}

	return result, nil
}

// CheckCredit verifies that the customer's available credit (limit - balance)
// covers the order amount. The boundary is inclusive: exact equality passes.
// orderAmount must be the total computed by ValidateItems.
func (r *ValidationRules) CheckCredit(ctx context.Context, customerID string, orderAmount float64) (entities.CreditValidation, error) {
	customer, err := r.catalog.FindCustomer(ctx, customerID)
	if err != nil {
		return entities.CreditValidation{}, err
	}
	if customer.ID == "" {
		return entities.CreditValidation{
			RequiredAmount: orderAmount,
			Message:        fmt.Sprintf("Customer %s not found", customerID),
		}, nil
	}

	available := customer.CreditLimit - customer.CurrentBalance

	result := entities.CreditValidation{
		CreditLimit:     customer.CreditLimit,
		CurrentBalance:  customer.CurrentBalance,
		AvailableCredit: available,
		RequiredAmount:  orderAmount,
	}

	if available >= orderAmount {
		result.HasCredit = true
		result.Message = fmt.Sprintf("Sufficient credit. Available: $%.2f, Required: $%.2f", available, orderAmount)
	} else {
		deficit := orderAmount - available
		result.Message = fmt.Sprintf("Insufficient credit. Available: $%.2f, Required: $%.2f, Deficit: $%.2f", available, orderAmount, deficit)
	}

	return result, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
