package handlers

import (
	"log"
	"net/http"

	request "pedidos_xpto/internal/adapter/http/dto/request"
	response "pedidos_xpto/internal/adapter/http/dto/response"
	"pedidos_xpto/internal/usecase"
	"pedidos_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_PAYLOAD", "Invalid order payload", http.StatusBadRequest)

// OrderValidationHandler handles HTTP requests for order validation runs.
//
// The workflow itself never fails: malformed JSON is the only 400 here, every
// syntactically valid order gets a 200 with the full validation result
// (approved or rejected).

type OrderValidationHandler struct {
	usecase usecase.IOrderValidationUseCase
}

func NewOrderValidationHandler(uc usecase.IOrderValidationUseCase) *OrderValidationHandler {
	return &OrderValidationHandler{usecase: uc}
}

// ValidateOrder runs the validation workflow for the posted order.
func (h *OrderValidationHandler) ValidateOrder(c *gin.Context) {
	var payload request.OrderValidationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[validation][handler] invalid payload err=%v", err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	validationID := uuid.NewString()
	log.Printf("[validation][handler] validate start validation_id=%s order_id=%q", validationID, payload.OrderID)

	result := h.usecase.ValidateOrder(c.Request.Context(), payload.ToOrderRequest())

	log.Printf("[validation][handler] validate done validation_id=%s order_id=%q status=%s", validationID, payload.OrderID, result.Status)
	c.JSON(http.StatusOK, response.FromValidationResult(validationID, result))
}
