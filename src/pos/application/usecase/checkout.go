package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pos/src/pos/application/request"
	"pos/src/pos/application/response"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/pos/infrastructure/cache"
	"pos/src/pos/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reintentos ante colisión del número de factura entre cajas concurrentes
const maxInvoiceRetries = 3

var percentMax = decimal.NewFromInt(100)

// CheckoutUseCase convierte un carrito validado más los datos de pago y
// descuento en una venta persistida atómicamente: header + items + decremento
// de stock + crédito de puntos, todo o nada.
type CheckoutUseCase struct {
	saleRepo       port.SaleRepository
	productRepo    port.ProductRepository
	customerRepo   port.CustomerRepository
	paymentMethods *cache.PaymentMethodCache
	cfg            Config
}

// NewCheckoutUseCase crea una nueva instancia del caso de uso
func NewCheckoutUseCase(
	saleRepo port.SaleRepository,
	productRepo port.ProductRepository,
	customerRepo port.CustomerRepository,
	paymentMethods *cache.PaymentMethodCache,
	cfg Config,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		saleRepo:       saleRepo,
		productRepo:    productRepo,
		customerRepo:   customerRepo,
		paymentMethods: paymentMethods,
		cfg:            cfg,
	}
}

// saleDraft es el carrito armado más los descuentos efectivos, compartido
// entre el checkout y el preview de totales
type saleDraft struct {
	cart            *entity.Cart
	discountPercent decimal.Decimal
	discountAmount  decimal.Decimal
	pointsUsed      int
	customer        *entity.Customer
}

// Execute ejecuta una venta POS completa:
//  1. Validaciones de boundary (carrito, descuentos, método de pago)
//  2. Armado del carrito con precios autoritativos del catálogo
//  3. Cálculo de totales y puntos
//  4. Persistencia atómica con reintento ante colisión de invoice_no
func (uc *CheckoutUseCase) Execute(ctx context.Context, staff string, req *request.CheckoutRequest) (*response.CheckoutResponse, error) {
	log.Printf("🛒 POS checkout - items: %d, staff: %s", len(req.Items), staff)

	// ========================================================================
	// PASO 1: VALIDACIONES DE BOUNDARY
	// ========================================================================
	if staff == "" {
		metrics.CheckoutsTotal.WithLabelValues(metrics.StatusValidationFailed).Inc()
		return nil, entity.ErrStaffRequired
	}
	if len(req.Items) == 0 {
		metrics.CheckoutsTotal.WithLabelValues(metrics.StatusValidationFailed).Inc()
		return nil, entity.ErrEmptyCart
	}
	if err := validateDiscounts(req.DiscountPercent, req.DiscountAmount); err != nil {
		metrics.CheckoutsTotal.WithLabelValues(metrics.StatusValidationFailed).Inc()
		return nil, err
	}
	if req.RedeemPoints > 0 && req.CustomerID == nil {
		metrics.CheckoutsTotal.WithLabelValues(metrics.StatusValidationFailed).Inc()
		return nil, entity.ErrCustomerRequired
	}

	paymentMethod, ok := uc.paymentMethods.Get(req.PaymentMethod)
	if !ok {
		metrics.CheckoutsTotal.WithLabelValues(metrics.StatusValidationFailed).Inc()
		return nil, entity.ErrUnknownPaymentMethod
	}

	// ========================================================================
	// PASO 2: ARMAR CARRITO + DESCUENTOS EFECTIVOS
	// ========================================================================
	draft, err := buildSaleDraft(ctx, uc.productRepo, uc.customerRepo, uc.cfg,
		req.Items, req.CustomerID, req.DiscountPercent, req.DiscountAmount, req.RedeemPoints)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues(metrics.StatusValidationFailed).Inc()
		return nil, err
	}

	// ========================================================================
	// PASO 3: TOTALES Y PUNTOS
	// ========================================================================
	totals := entity.ComputeTotals(draft.cart, draft.discountPercent, draft.discountAmount, uc.cfg.TaxRate).Rounded()

	pointsEarned := 0
	if draft.customer != nil {
		pointsEarned = int(totals.GrandTotal.Mul(uc.cfg.LoyaltyRate).Floor().IntPart())
	}

	change := decimal.Zero
	if !req.AmountPaid.IsZero() {
		if req.AmountPaid.LessThan(totals.GrandTotal) {
			metrics.CheckoutsTotal.WithLabelValues(metrics.StatusValidationFailed).Inc()
			return nil, entity.ErrInsufficientPayment
		}
		change = req.AmountPaid.Sub(totals.GrandTotal)
	}

	sale, err := entity.NewSale(draft.cart, req.CustomerID, paymentMethod.Code,
		req.PaymentDetails, staff, totals, pointsEarned, draft.pointsUsed)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues(metrics.StatusValidationFailed).Inc()
		return nil, err
	}

	// ========================================================================
	// PASO 4: PERSISTENCIA ATÓMICA
	// La verificación de stock ocurre dentro de la misma transacción que el
	// decremento (update condicional); acá solo reintentamos si el número de
	// factura chocó con otra caja.
	// ========================================================================
	for attempt := 1; ; attempt++ {
		err = uc.saleRepo.CreateSale(ctx, sale)
		if err == nil {
			break
		}
		if errors.Is(err, entity.ErrDuplicateInvoice) && attempt < maxInvoiceRetries {
			log.Printf("⚠️  Invoice collision (%s), retrying (%d/%d)", sale.InvoiceNo, attempt, maxInvoiceRetries)
			sale.RegenerateInvoiceNo()
			continue
		}

		var stockErr *entity.InsufficientStockError
		if errors.As(err, &stockErr) {
			log.Printf("❌ Stock rejected for product %s: %d available", stockErr.ProductID, stockErr.Available)
			metrics.CheckoutsTotal.WithLabelValues(metrics.StatusStockRejected).Inc()
			return nil, err
		}

		log.Printf("❌ Error persisting sale %s: %v", sale.InvoiceNo, err)
		metrics.CheckoutsTotal.WithLabelValues(metrics.StatusPersistenceError).Inc()
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	log.Printf("✅ Sale created: invoice=%s, items=%d, grand_total=%s", sale.InvoiceNo, sale.TotalItems(), sale.GrandTotal)
	metrics.CheckoutsTotal.WithLabelValues(metrics.StatusCompleted).Inc()
	amount, _ := sale.GrandTotal.Float64()
	metrics.CheckoutAmountTotal.Add(amount)
	for _, item := range sale.Items {
		metrics.ItemsSoldTotal.Add(float64(item.Quantity))
	}

	// ========================================================================
	// PASO 5: ARMAR RESPONSE
	// ========================================================================
	return buildCheckoutResponse(sale, paymentMethod.Name, req.AmountPaid, change), nil
}

// validateDiscounts hace explícito el rango aceptado en el boundary:
// el porcentaje vive en [0,100] y el monto fijo no puede ser negativo
func validateDiscounts(percent, amount decimal.Decimal) error {
	if percent.LessThan(decimal.Zero) || percent.GreaterThan(percentMax) {
		return entity.ErrInvalidDiscountPercent
	}
	if amount.LessThan(decimal.Zero) {
		return entity.ErrInvalidDiscountAmount
	}
	return nil
}

// buildSaleDraft arma el carrito con nombre y precio autoritativos del
// catálogo (los IDs duplicados fusionan cantidades) y resuelve el cliente:
// su tipo suma porcentaje de descuento y sus puntos canjeados suman
// descuento fijo. No toca el stock: eso es asunto de la transacción.
func buildSaleDraft(
	ctx context.Context,
	productRepo port.ProductRepository,
	customerRepo port.CustomerRepository,
	cfg Config,
	items []request.CheckoutItemRequest,
	customerID *uuid.UUID,
	discountPercent, discountAmount decimal.Decimal,
	redeemPoints int,
) (*saleDraft, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool)
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	products, err := productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error loading products: %w", err)
	}

	cart := entity.NewCart()
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, entity.ErrProductNotFound
		}
		line, err := entity.NewCartLine(product.ID, product.Name, product.Price, item.Quantity)
		if err != nil {
			return nil, err
		}
		cart.AddLine(*line)
	}

	draft := &saleDraft{
		cart:            cart,
		discountPercent: discountPercent,
		discountAmount:  discountAmount,
	}

	if customerID != nil {
		customer, err := customerRepo.GetByID(ctx, *customerID)
		if err != nil {
			return nil, err
		}
		draft.customer = customer

		// Descuento por tipo de cliente (Premium 15%, Student 10%)
		draft.discountPercent = draft.discountPercent.Add(customer.Type.DiscountPercent())

		// Canje de puntos en bloques completos
		draft.pointsUsed = customer.RedeemablePoints(redeemPoints, cfg.RedeemBlockPoints)
		if draft.pointsUsed > 0 {
			blocks := int64(draft.pointsUsed / cfg.RedeemBlockPoints)
			draft.discountAmount = draft.discountAmount.Add(cfg.RedeemBlockValue.Mul(decimal.NewFromInt(blocks)))
		}
	}

	return draft, nil
}

func buildCheckoutResponse(sale *entity.Sale, paymentMethodName string, amountPaid, change decimal.Decimal) *response.CheckoutResponse {
	items := make([]response.CheckoutItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, response.CheckoutItemResponse{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return &response.CheckoutResponse{
		SaleID:            sale.ID,
		InvoiceNo:         sale.InvoiceNo,
		Items:             items,
		TotalItems:        sale.TotalItems(),
		Subtotal:          sale.Subtotal,
		Tax:               sale.Tax,
		Discount:          sale.Discount,
		GrandTotal:        sale.GrandTotal,
		PaymentMethod:     sale.PaymentMethod,
		PaymentMethodName: paymentMethodName,
		PaymentDetails:    sale.PaymentDetails,
		AmountPaid:        amountPaid,
		Change:            change,
		PointsEarned:      sale.PointsEarned,
		PointsUsed:        sale.PointsUsed,
		CustomerID:        sale.CustomerID,
		Staff:             sale.Staff,
		CreatedAt:         sale.CreatedAt,
	}
}
