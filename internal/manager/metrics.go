package manager

import "github.com/prometheus/client_golang/prometheus"

var (
	translationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linguaspark",
			Subsystem: "engine",
			Name:      "translations_total",
			Help:      "Translations by pair and result (ok, error, abandoned)",
		},
		[]string{"pair", "result"},
	)

	translationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "linguaspark",
			Subsystem: "engine",
			Name:      "translation_duration_seconds",
			Help:      "Time spent in the native translate call",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"pair"},
	)

	translationsInflight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "linguaspark",
			Subsystem: "engine",
			Name:      "inflight_translations",
			Help:      "Native translate calls currently running",
		},
		[]string{"pair"},
	)

	modelLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linguaspark",
			Subsystem: "engine",
			Name:      "model_loads_total",
			Help:      "Model load attempts by pair and resulting state",
		},
		[]string{"pair", "state"},
	)

	cacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linguaspark",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Translation cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(translationsTotal, translationDuration, translationsInflight, modelLoadsTotal, cacheLookupsTotal)
}
