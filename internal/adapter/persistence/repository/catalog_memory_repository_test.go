package repository

import (
	"context"
	"testing"

	"pedidos_xpto/internal/domain/entities"
)

func TestCatalogMemoryRepository_FindCustomer(t *testing.T) {
	repo := NewCatalogMemoryRepository()

	t.Run("known customer", func(t *testing.T) {
		c, err := repo.FindCustomer(context.Background(), "CUST001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "CUST001" || c.Name != "Acme Corporation" || !c.IsActive() {
			t.Fatalf("unexpected customer: %+v", c)
		}
	})

	t.Run("unknown customer is a zero value, not an error", func(t *testing.T) {
		c, err := repo.FindCustomer(context.Background(), "CUST999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "" {
			t.Fatalf("expected absent customer, got %+v", c)
		}
	})
}

func TestCatalogMemoryRepository_FindProduct(t *testing.T) {
	repo := NewCatalogMemoryRepository()

	t.Run("known product", func(t *testing.T) {
		p, err := repo.FindProduct(context.Background(), "PROD002")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Wireless Mouse" || p.Price != 25.0 || p.Stock != 200 {
			t.Fatalf("unexpected product: %+v", p)
		}
	})

	t.Run("unknown product is a zero value, not an error", func(t *testing.T) {
		p, err := repo.FindProduct(context.Background(), "PROD999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "" {
			t.Fatalf("expected absent product, got %+v", p)
		}
	})
}

func TestReferenceDataset(t *testing.T) {
	repo := NewCatalogMemoryRepository()

	// The rejection scenarios depend on these two records.
	inactive, _ := repo.FindCustomer(context.Background(), "CUST003")
	if inactive.Status != entities.CustomerStatusInactive {
		t.Fatalf("CUST003 must be inactive, got %s", inactive.Status)
	}

	outOfStock, _ := repo.FindProduct(context.Background(), "PROD005")
	if outOfStock.Stock != 0 {
		t.Fatalf("PROD005 must be out of stock, got %d", outOfStock.Stock)
	}
}

func TestCatalogMemoryRepositoryWith(t *testing.T) {
	repo := NewCatalogMemoryRepositoryWith(
		[]entities.Customer{{ID: "C1", Name: "Fixture"}},
		[]entities.Product{{ID: "P1", Name: "Fixture Product", Price: 10.0, Stock: 1}},
	)

	c, _ := repo.FindCustomer(context.Background(), "C1")
	if c.Name != "Fixture" {
		t.Fatalf("unexpected customer: %+v", c)
	}

	p, _ := repo.FindProduct(context.Background(), "P1")
	if p.Name != "Fixture Product" {
		t.Fatalf("unexpected product: %+v", p)
	}

	if def, _ := repo.FindCustomer(context.Background(), "CUST001"); def.ID != "" {
		t.Fatalf("fixture catalog must not contain the reference dataset")
	}
}
