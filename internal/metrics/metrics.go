package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentsRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academia_pagamentos_registrados_total",
			Help: "Total de pagamentos de mensalidade registrados",
		},
		[]string{"forma_pagamento", "status"},
	)

	chargesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academia_mensalidades_geradas_total",
			Help: "Total de mensalidades geradas",
		},
		[]string{"origem"},
	)

	sweepRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academia_varredura_execucoes_total",
			Help: "Execuções da varredura diária de mensalidades",
		},
		[]string{"status"},
	)

	sweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "academia_varredura_duracao_segundos",
			Help:    "Duração da varredura diária em segundos",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func RecordPayment(formaPagamento, status string) {
	paymentsRegistered.WithLabelValues(formaPagamento, status).Inc()
}

// RecordChargesCreated: origem é "contratacao" ou "varredura".
func RecordChargesCreated(origem string, n int) {
	if n <= 0 {
		return
	}
	chargesCreated.WithLabelValues(origem).Add(float64(n))
}

func RecordSweepRun(status string, seconds float64) {
	sweepRuns.WithLabelValues(status).Inc()
	sweepDuration.Observe(seconds)
}
