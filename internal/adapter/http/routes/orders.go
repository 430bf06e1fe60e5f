package routes

import (
	"pedidos_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders  = "/orders"
	PathCatalog = "/catalog"
)

func addOrderRoutes(rg *gin.RouterGroup, validationHandler *handlers.OrderValidationHandler, catalogHandler *handlers.CatalogHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/validate", validationHandler.ValidateOrder)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/customers/:customer_id", catalogHandler.GetCustomerByID)
		catalog.GET("/products/:product_id", catalogHandler.GetProductByID)
	}
}
