package controller

import (
	"log"
	"net/http"

	"pos/src/pos/application/request"
	"pos/src/pos/application/usecase"

	"github.com/gin-gonic/gin"
)

// CheckoutController maneja las peticiones HTTP del checkout
type CheckoutController struct {
	checkoutUC      *usecase.CheckoutUseCase
	previewTotalsUC *usecase.PreviewTotalsUseCase
}

// NewCheckoutController crea una nueva instancia del controlador
func NewCheckoutController(checkoutUC *usecase.CheckoutUseCase, previewTotalsUC *usecase.PreviewTotalsUseCase) *CheckoutController {
	return &CheckoutController{
		checkoutUC:      checkoutUC,
		previewTotalsUC: previewTotalsUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CheckoutController) RegisterRoutes(router *gin.RouterGroup) {
	pos := router.Group("/pos")
	{
		pos.POST("/checkout", c.Checkout)
		pos.POST("/totals", c.PreviewTotals)
	}

	log.Println("Rutas Checkout disponibles:")
	log.Println("  POST   /api/v1/pos/checkout")
	log.Println("  POST   /api/v1/pos/totals")
}

// Checkout procesa una venta completa
func (c *CheckoutController) Checkout(ctx *gin.Context) {
	// El staff lo establece la pantalla de login, fuera de este servicio;
	// acá solo exigimos que venga identificado
	staff := ctx.GetHeader("X-Staff-ID")
	if staff == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Staff-ID header is required"})
		return
	}

	var req request.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := c.checkoutUC.Execute(ctx.Request.Context(), staff, &req)
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// PreviewTotals recalcula totales sin persistir (para edición en vivo)
func (c *CheckoutController) PreviewTotals(ctx *gin.Context) {
	var req request.TotalsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := c.previewTotalsUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
