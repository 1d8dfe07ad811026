package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query translator Prometheus metrics.
var (
	TranslatorClausesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stringdex",
			Name:      "translator_clauses_total",
			Help:      "Total natural-language clauses recognized, by clause type",
		},
		[]string{"clause"},
	)

	TranslatorQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stringdex",
			Name:      "translator_queries_total",
			Help:      "Total natural-language queries, by outcome",
		},
		[]string{"status"}, // "ok" / "invalid" / "unrecognized"
	)
)

var translatorMetricsRegistered bool

// RegisterTranslatorMetrics registers Prometheus translator metrics. Must be called once from main.
func RegisterTranslatorMetrics() {
	if translatorMetricsRegistered {
		return
	}
	prometheus.MustRegister(TranslatorClausesTotal)
	prometheus.MustRegister(TranslatorQueriesTotal)
	translatorMetricsRegistered = true
}
