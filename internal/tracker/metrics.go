package tracker

import (
	"github.com/prometheus/client_golang/prometheus"

	"example.com/tracker/internal/observability"
)

const (
	reasonUnknownActivity = "unknown_activity"
	reasonArityMismatch   = "arity_mismatch"
	reasonWrite           = "write"
)

var (
	renderedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: observability.Namespace,
		Subsystem: "processor",
		Name:      "reports_rendered_total",
		Help:      "Number of workout summaries written, by training type.",
	}, []string{"training_type"})

	rejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: observability.Namespace,
		Subsystem: "processor",
		Name:      "packages_rejected_total",
		Help:      "Number of sensor packages that produced no summary, by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(renderedCounter, rejectedCounter)
}

func recordRendered(trainingType string) {
	renderedCounter.WithLabelValues(trainingType).Inc()
}

func recordRejected(reason string) {
	rejectedCounter.WithLabelValues(reason).Inc()
}
