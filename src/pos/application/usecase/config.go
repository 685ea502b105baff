package usecase

import "github.com/shopspring/decimal"

// Config agrupa las constantes de negocio configurables por despliegue
type Config struct {
	TaxRate           decimal.Decimal // Tasa de impuesto (0.15 = 15%)
	LoyaltyRate       decimal.Decimal // Puntos por unidad monetaria del total (0.1)
	RedeemBlockPoints int             // Tamaño del bloque de canje (100 puntos)
	RedeemBlockValue  decimal.Decimal // Valor de cada bloque canjeado ($10)
}

// DefaultConfig devuelve las constantes por defecto
func DefaultConfig() Config {
	return Config{
		TaxRate:           decimal.NewFromFloat(0.15),
		LoyaltyRate:       decimal.NewFromFloat(0.1),
		RedeemBlockPoints: 100,
		RedeemBlockValue:  decimal.NewFromInt(10),
	}
}
