package entities

// CustomerValidation is the verdict of the customer eligibility rule.
//
// Exists and Active are reported separately so callers can distinguish an
// unknown customer from a known-but-inactive one.
type CustomerValidation struct {
	Valid        bool      `json:"valid"`
	Exists       bool      `json:"exists"`
	Active       bool      `json:"active"`
	CustomerData *Customer `json:"customer_data,omitempty"`
	Message      string    `json:"message"`
}

// ValidatedItem is one order line accepted by the item rule, priced from the
// catalog.
type ValidatedItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ItemTotal   float64 `json:"item_total"`
	Category    string  `json:"category"`
}

// InvalidItem is one order line refused by the item rule. Reason carries the
// first failing check only; later checks for the line are not evaluated.
type InvalidItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// ItemsValidation is the verdict of the item/stock/price rule.
//
// Valid holds only when InvalidItems is empty AND at least one line was
// validated; an all-rejected or empty line set is never valid. TotalAmount is
// the sum of catalog-priced line totals and is the only place the order total
// is computed.
type ItemsValidation struct {
	Valid          bool            `json:"valid"`
	TotalAmount    float64         `json:"total_amount"`
	ValidatedItems []ValidatedItem `json:"validated_items"`
	InvalidItems   []InvalidItem   `json:"invalid_items"`
	Message        string          `json:"message"`
}

// CreditValidation is the verdict of the credit sufficiency rule.
// AvailableCredit = CreditLimit - CurrentBalance; sufficiency is inclusive
// (available == required passes).
type CreditValidation struct {
	HasCredit       bool    `json:"has_credit"`
	CreditLimit     float64 `json:"credit_limit"`
	CurrentBalance  float64 `json:"current_balance"`
	AvailableCredit float64 `json:"available_credit"`
	RequiredAmount  float64 `json:"required_amount"`
	Message         string  `json:"message"`
}

// ValidationSummary condenses one finished run for the details record.
type ValidationSummary struct {
	OrderID     string  `json:"order_id"`
	CustomerID  string  `json:"customer_id"`
	TotalAmount float64 `json:"total_amount"`
	ItemsCount  int     `json:"items_count,omitempty"`
	Approved    bool    `json:"approved"`
	ErrorCount  int     `json:"error_count,omitempty"`
}

// ValidationDetails nests the three verdicts plus the run summary. Verdicts
// that were never produced (short-circuited runs) are omitted.
type ValidationDetails struct {
	Customer *CustomerValidation `json:"customer,omitempty"`
	Items    *ItemsValidation    `json:"items,omitempty"`
	Credit   *CreditValidation   `json:"credit,omitempty"`
	Errors   []string            `json:"errors,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
	Summary  *ValidationSummary  `json:"summary,omitempty"`
}

// ValidationResult is the final, caller-facing outcome of one validation run.
// It is always well formed: no error ever crosses the workflow boundary.
type ValidationResult struct {
	Status            OrderStatus       `json:"status"`
	Approved          bool              `json:"approved"`
	Message           string            `json:"message"`
	TotalAmount       float64           `json:"total_amount"`
	Errors            []string          `json:"errors"`
	Warnings          []string          `json:"warnings"`
	ValidationDetails ValidationDetails `json:"validation_details"`
}
