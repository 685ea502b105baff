package controller

import (
	"fmt"
	"log"
	"net/http"

	"pos/src/pos/application/usecase"
	"pos/src/pos/infrastructure/cache"
	"pos/src/pos/infrastructure/receipt"
	domainCriteria "pos/src/shared/domain/criteria"
	sharedCriteria "pos/src/shared/infrastructure/criteria"

	"github.com/gin-gonic/gin"
)

// Campos filtrables/ordenables del listado de ventas
var saleAllowedFields = []string{"payment_method", "staff", "created_at", "grand_total"}

// Paginación por defecto del listado de ventas
const defaultSalesPageSize = 50

// SaleController maneja listado, detalle, recibos y export de ventas
type SaleController struct {
	listSalesUC    *usecase.ListSalesUseCase
	getSaleUC      *usecase.GetSaleUseCase
	exportCSVUC    *usecase.ExportSalesCSVUseCase
	paymentMethods *cache.PaymentMethodCache
	textRenderer   *receipt.TextRenderer
	pdfRenderer    *receipt.PDFRenderer
	helper         *sharedCriteria.ControllerHelper
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	listSalesUC *usecase.ListSalesUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	exportCSVUC *usecase.ExportSalesCSVUseCase,
	paymentMethods *cache.PaymentMethodCache,
	storeName string,
) *SaleController {
	return &SaleController{
		listSalesUC:    listSalesUC,
		getSaleUC:      getSaleUC,
		exportCSVUC:    exportCSVUC,
		paymentMethods: paymentMethods,
		textRenderer:   receipt.NewTextRenderer(storeName),
		pdfRenderer:    receipt.NewPDFRenderer(storeName),
		helper:         sharedCriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/pos/sales")
	{
		sales.GET("", c.ListSales)
		sales.GET("/export", c.ExportCSV)
		sales.GET("/:invoice_no", c.GetSale)
		sales.GET("/:invoice_no/receipt", c.Receipt)
	}

	log.Println("Rutas Sales disponibles:")
	log.Println("  GET    /api/v1/pos/sales")
	log.Println("  GET    /api/v1/pos/sales/export")
	log.Println("  GET    /api/v1/pos/sales/:invoice_no")
	log.Println("  GET    /api/v1/pos/sales/:invoice_no/receipt")
}

// ListSales lista ventas con filtros opcionales:
// payment_method, from/to (sobre created_at), limit/offset, order_by/order_dir
func (c *SaleController) ListSales(ctx *gin.Context) {
	builder := c.helper.BuildCriteriaFromQuery(ctx)

	if method := ctx.Query("payment_method"); method != "" {
		builder.WithFilter("payment_method", domainCriteria.OpEqual, method)
	}
	if from := ctx.Query("from"); from != "" {
		builder.WithFilter("created_at", domainCriteria.OpGreaterThanOrEqual, from)
	}
	if to := ctx.Query("to"); to != "" {
		builder.WithFilter("created_at", domainCriteria.OpLessThan, to)
	}

	crit := builder.Build()
	if crit.Order.IsEmpty() {
		crit.Order = domainCriteria.NewOrder("created_at", domainCriteria.DESC)
	}
	if crit.Limit == nil {
		limit, offset := defaultSalesPageSize, 0
		crit.Limit, crit.Offset = &limit, &offset
	}
	crit = c.helper.ValidateAndSanitizeCriteria(crit, saleAllowedFields)

	items, err := c.listSalesUC.Execute(ctx.Request.Context(), crit)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// GetSale retorna una venta completa por número de factura
func (c *SaleController) GetSale(ctx *gin.Context) {
	invoiceNo := ctx.Param("invoice_no")

	resp, err := c.getSaleUC.Execute(ctx.Request.Context(), invoiceNo)
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Receipt renderiza el recibo de una venta como texto plano o PDF (?format=pdf)
func (c *SaleController) Receipt(ctx *gin.Context) {
	invoiceNo := ctx.Param("invoice_no")

	sale, err := c.getSaleUC.Entity(ctx.Request.Context(), invoiceNo)
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	methodName := c.paymentMethods.GetName(sale.PaymentMethod)

	if ctx.Query("format") == "pdf" {
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoiceNo))
		ctx.Header("Content-Type", "application/pdf")
		if err := c.pdfRenderer.Render(sale, methodName, ctx.Writer); err != nil {
			log.Printf("Error rendering PDF receipt %s: %v", invoiceNo, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error rendering receipt"})
		}
		return
	}

	ctx.String(http.StatusOK, c.textRenderer.Render(sale, methodName))
}

// ExportCSV descarga el histórico de ventas como CSV
func (c *SaleController) ExportCSV(ctx *gin.Context) {
	ctx.Header("Content-Disposition", "attachment; filename=sales_export.csv")
	ctx.Header("Content-Type", "text/csv")

	if err := c.exportCSVUC.Execute(ctx.Request.Context(), ctx.Writer); err != nil {
		log.Printf("Error exporting sales CSV: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error exporting sales"})
	}
}
