package usecase

import (
	"context"

	"pos/src/pos/application/request"
	"pos/src/pos/application/response"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// PreviewTotalsUseCase recalcula los totales de un carrito sin persistir
// nada: la terminal lo invoca en vivo cada vez que el cajero edita
// cantidades o campos de descuento. Es puro respecto del storage.
type PreviewTotalsUseCase struct {
	productRepo  port.ProductRepository
	customerRepo port.CustomerRepository
	cfg          Config
}

// NewPreviewTotalsUseCase crea una nueva instancia del caso de uso
func NewPreviewTotalsUseCase(productRepo port.ProductRepository, customerRepo port.CustomerRepository, cfg Config) *PreviewTotalsUseCase {
	return &PreviewTotalsUseCase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		cfg:          cfg,
	}
}

// Execute calcula subtotal, impuesto, descuento y total con las mismas
// reglas del checkout (tipo de cliente y canje de puntos incluidos)
func (uc *PreviewTotalsUseCase) Execute(ctx context.Context, req *request.TotalsRequest) (*response.TotalsResponse, error) {
	if len(req.Items) == 0 {
		return nil, entity.ErrEmptyCart
	}
	if err := validateDiscounts(req.DiscountPercent, req.DiscountAmount); err != nil {
		return nil, err
	}
	if req.RedeemPoints > 0 && req.CustomerID == nil {
		return nil, entity.ErrCustomerRequired
	}

	draft, err := buildSaleDraft(ctx, uc.productRepo, uc.customerRepo, uc.cfg,
		req.Items, req.CustomerID, req.DiscountPercent, req.DiscountAmount, req.RedeemPoints)
	if err != nil {
		return nil, err
	}

	totals := entity.ComputeTotals(draft.cart, draft.discountPercent, draft.discountAmount, uc.cfg.TaxRate).Rounded()

	pointsToEarn := 0
	if draft.customer != nil {
		pointsToEarn = int(totals.GrandTotal.Mul(uc.cfg.LoyaltyRate).Floor().IntPart())
	}

	return &response.TotalsResponse{
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Discount:     totals.Discount,
		GrandTotal:   totals.GrandTotal,
		PointsToEarn: pointsToEarn,
		PointsUsed:   draft.pointsUsed,
	}, nil
}
