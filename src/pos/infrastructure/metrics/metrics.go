package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de un checkout, como label de la métrica
const (
	StatusCompleted        = "completed"
	StatusValidationFailed = "validation_failed"
	StatusStockRejected    = "stock_rejected"
	StatusPersistenceError = "persistence_error"
)

var (
	// CheckoutsTotal cuenta los checkouts por resultado
	CheckoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_checkouts_total",
		Help: "Total de checkouts procesados, por resultado",
	}, []string{"status"})

	// CheckoutAmountTotal acumula el monto cobrado en checkouts exitosos
	CheckoutAmountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_checkout_amount_total",
		Help: "Monto total cobrado en checkouts exitosos",
	})

	// ItemsSoldTotal cuenta las unidades vendidas
	ItemsSoldTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_items_sold_total",
		Help: "Unidades vendidas en checkouts exitosos",
	})
)
