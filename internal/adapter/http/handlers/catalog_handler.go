package handlers

import (
	"log"
	"net/http"
	"strings"

	response "pedidos_xpto/internal/adapter/http/dto/response"
	"pedidos_xpto/internal/usecase/interfaces"
	"pedidos_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errCustomerNotFound = pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	errProductNotFound  = pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
)

// CatalogHandler exposes read-only catalog lookups. Useful for inspecting the
// reference data the validation rules run against.

type CatalogHandler struct {
	catalog interfaces.ICatalogRepository
}

func NewCatalogHandler(catalog interfaces.ICatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCustomerByID returns one catalog customer.
func (h *CatalogHandler) GetCustomerByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("customer_id"))

	customer, err := h.catalog.FindCustomer(c.Request.Context(), id)
	if err != nil {
		log.Printf("[catalog][handler] customer lookup failed customer_id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if customer.ID == "" {
		c.JSON(errCustomerNotFound.HTTPStatus, errCustomerNotFound.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// GetProductByID returns one catalog product.
func (h *CatalogHandler) GetProductByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("product_id"))

	product, err := h.catalog.FindProduct(c.Request.Context(), id)
	if err != nil {
		log.Printf("[catalog][handler] product lookup failed product_id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if product.ID == "" {
		c.JSON(errProductNotFound.HTTPStatus, errProductNotFound.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}
