// Package metrics expone los colectores Prometheus del motor del ledger.
// El endpoint /metrics los sirve vía promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConfirmationsTotal cuenta confirmaciones por tipo de operación y
	// resultado (confirmed, rejected, conflict, error).
	ConfirmationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stockmaster",
		Subsystem: "ledger",
		Name:      "confirmations_total",
		Help:      "Confirmaciones de operaciones por tipo y resultado",
	}, []string{"type", "outcome"})

	// ConfirmDuration mide la duración de la transacción de confirmación.
	ConfirmDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stockmaster",
		Subsystem: "ledger",
		Name:      "confirm_duration_seconds",
		Help:      "Duración de la confirmación de operaciones",
		Buckets:   prometheus.DefBuckets,
	})

	// StockMovesAppended cuenta entradas escritas en el log.
	StockMovesAppended = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stockmaster",
		Subsystem: "ledger",
		Name:      "stock_moves_appended_total",
		Help:      "Movimientos de stock agregados al ledger",
	})
)
