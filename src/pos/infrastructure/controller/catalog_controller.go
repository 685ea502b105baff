package controller

import (
	"log"
	"net/http"
	"strconv"

	"pos/src/pos/application/usecase"
	domainCriteria "pos/src/shared/domain/criteria"
	sharedCriteria "pos/src/shared/infrastructure/criteria"

	"github.com/gin-gonic/gin"
)

// Campos filtrables/ordenables del catálogo
var productAllowedFields = []string{"name", "category", "barcode", "price", "stock", "created_at"}

// Paginación por defecto del catálogo
const defaultCatalogPageSize = 100

// CatalogController expone las consultas de solo lectura que usa la
// terminal: búsqueda de productos, escaneo de códigos de barras y lookup
// de clientes. El ABM de catálogo y clientes no pasa por acá.
type CatalogController struct {
	searchProductsUC  *usecase.SearchProductsUseCase
	searchCustomersUC *usecase.SearchCustomersUseCase
	helper            *sharedCriteria.ControllerHelper
}

// NewCatalogController crea una nueva instancia del controlador
func NewCatalogController(searchProductsUC *usecase.SearchProductsUseCase, searchCustomersUC *usecase.SearchCustomersUseCase) *CatalogController {
	return &CatalogController{
		searchProductsUC:  searchProductsUC,
		searchCustomersUC: searchCustomersUC,
		helper:            sharedCriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.SearchProducts)
		products.GET("/barcode/:code", c.GetByBarcode)
	}

	customers := router.Group("/customers")
	{
		customers.GET("", c.SearchCustomers)
	}

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/products?q=&category=")
	log.Println("  GET    /api/v1/products/barcode/:code")
	log.Println("  GET    /api/v1/customers?q=")
}

// SearchProducts busca productos por nombre y/o categoría
func (c *CatalogController) SearchProducts(ctx *gin.Context) {
	builder := c.helper.BuildCriteriaFromQuery(ctx)

	if q := ctx.Query("q"); q != "" {
		builder.WithFilter("name", domainCriteria.OpLike, q)
	}
	if category := ctx.Query("category"); category != "" {
		builder.WithFilter("category", domainCriteria.OpEqual, category)
	}

	crit := builder.Build()
	if crit.Order.IsEmpty() {
		crit.Order = domainCriteria.NewOrder("name", domainCriteria.ASC)
	}
	if crit.Limit == nil {
		limit, offset := defaultCatalogPageSize, 0
		crit.Limit, crit.Offset = &limit, &offset
	}
	crit = c.helper.ValidateAndSanitizeCriteria(crit, productAllowedFields)

	items, err := c.searchProductsUC.Execute(ctx.Request.Context(), crit)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// GetByBarcode resuelve un escaneo de código de barras a un producto
func (c *CatalogController) GetByBarcode(ctx *gin.Context) {
	code := ctx.Param("code")

	product, err := c.searchProductsUC.ByBarcode(ctx.Request.Context(), code)
	if err != nil {
		writeDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// SearchCustomers busca clientes por nombre para asociar a una venta
func (c *CatalogController) SearchCustomers(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	items, err := c.searchCustomersUC.Execute(ctx.Request.Context(), ctx.Query("q"), limit)
	if err != nil {
		log.Printf("Error searching customers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}
