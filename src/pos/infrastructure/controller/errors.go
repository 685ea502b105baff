package controller

import (
	"errors"
	"net/http"

	"pos/src/pos/domain/entity"

	"github.com/gin-gonic/gin"
)

// writeDomainError traduce los errores del dominio a respuestas HTTP:
// validaciones → 400, stock insuficiente → 409 (con producto y disponible),
// no encontrado → 404, el resto → 500. Toda falla deja el estado intacto,
// así que el cliente siempre puede corregir y reintentar.
func writeDomainError(ctx *gin.Context, err error) {
	var stockErr *entity.InsufficientStockError
	if errors.As(err, &stockErr) {
		ctx.JSON(http.StatusConflict, gin.H{
			"error":      "insufficient stock",
			"product_id": stockErr.ProductID,
			"available":  stockErr.Available,
		})
		return
	}

	switch {
	case errors.Is(err, entity.ErrEmptyCart),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidDiscountPercent),
		errors.Is(err, entity.ErrInvalidDiscountAmount),
		errors.Is(err, entity.ErrUnknownPaymentMethod),
		errors.Is(err, entity.ErrInsufficientPayment),
		errors.Is(err, entity.ErrCustomerRequired),
		errors.Is(err, entity.ErrStaffRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrProductNotFound),
		errors.Is(err, entity.ErrCustomerNotFound),
		errors.Is(err, entity.ErrSaleNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
