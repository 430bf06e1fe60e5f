package repository

import (
	"context"

	"pedidos_xpto/internal/domain/entities"
	"pedidos_xpto/internal/usecase/interfaces"
)

// CatalogMemoryRepository serves customer/product reference data from fixed
// in-memory tables. It is the default catalog: lookups are pure, total and
// never fail, which keeps the validation core free of I/O.
//
// The tables are built once at construction and never mutated, so the
// repository is safe for concurrent lookups without locking.

type CatalogMemoryRepository struct {
	customers map[string]entities.Customer
	products  map[string]entities.Product
}

var _ interfaces.ICatalogRepository = (*CatalogMemoryRepository)(nil)

// NewCatalogMemoryRepository builds a catalog seeded with the reference
// dataset.
func NewCatalogMemoryRepository() *CatalogMemoryRepository {
	return NewCatalogMemoryRepositoryWith(DefaultCustomers(), DefaultProducts())
}

// NewCatalogMemoryRepositoryWith builds a catalog from the given records.
// Tests use it to substitute fixtures.
func NewCatalogMemoryRepositoryWith(customers []entities.Customer, products []entities.Product) *CatalogMemoryRepository {
	r := &CatalogMemoryRepository{
		customers: make(map[string]entities.Customer, len(customers)),
		products:  make(map[string]entities.Product, len(products)),
	}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *CatalogMemoryRepository) FindCustomer(_ context.Context, id string) (entities.Customer, error) {
	return r.customers[id], nil
}

func (r *CatalogMemoryRepository) FindProduct(_ context.Context, id string) (entities.Product, error) {
	return r.products[id], nil
}

// DefaultCustomers returns the reference customer dataset.
func DefaultCustomers() []entities.Customer {
	return []entities.Customer{
		{ID: "CUST001", Name: "Acme Corporation", Email: "contact@acme.com", Status: entities.CustomerStatusActive, CreditLimit: 10000.0, CurrentBalance: 2000.0},
		{ID: "CUST002", Name: "TechStart Inc", Email: "info@techstart.com", Status: entities.CustomerStatusActive, CreditLimit: 5000.0, CurrentBalance: 4500.0},
		{ID: "CUST003", Name: "Global Solutions", Email: "sales@globalsolutions.com", Status: entities.CustomerStatusInactive, CreditLimit: 15000.0, CurrentBalance: 0.0},
		{ID: "CUST004", Name: "Innovation Labs", Email: "hello@innovationlabs.com", Status: entities.CustomerStatusActive, CreditLimit: 8000.0, CurrentBalance: 1000.0},
		{ID: "CUST005", Name: "Enterprise Systems", Email: "contact@enterprise.com", Status: entities.CustomerStatusActive, CreditLimit: 20000.0, CurrentBalance: 15000.0},
	}
}

// DefaultProducts returns the reference product dataset. PROD005 is kept out
// of stock on purpose for the insufficient-stock path.
func DefaultProducts() []entities.Product {
	return []entities.Product{
		{ID: "PROD001", Name: "Laptop Pro 15", Price: 1200.0, Stock: 50, Category: "electronics"},
		{ID: "PROD002", Name: "Wireless Mouse", Price: 25.0, Stock: 200, Category: "accessories"},
		{ID: "PROD003", Name: "USB-C Hub", Price: 45.0, Stock: 100, Category: "accessories"},
		{ID: "PROD004", Name: "Monitor 27 inch", Price: 350.0, Stock: 30, Category: "electronics"},
		{ID: "PROD005", Name: "Mechanical Keyboard", Price: 120.0, Stock: 0, Category: "accessories"},
		{ID: "PROD006", Name: "Webcam HD", Price: 80.0, Stock: 75, Category: "electronics"},
	}
}
