package observability

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Namespace prefixes every metric exported by the tracker.
const Namespace = "fitness_tracker"

var lastReportGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: Namespace,
	Subsystem: "processor",
	Name:      "last_report_timestamp_seconds",
	Help:      "Unix timestamp of the most recent workout summary written.",
})

func init() {
	prometheus.MustRegister(lastReportGauge)
}

// RecordReportRendered updates the report watermark gauge.
func RecordReportRendered(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastReportGauge.Set(float64(ts.Unix()))
}

// LogSnapshot writes one line per counter or gauge sample whose name starts with namespace.
func LogSnapshot(logger *log.Logger, gatherer prometheus.Gatherer, namespace string) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	prefix := namespace + "_"
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), prefix) {
			continue
		}
		for _, metric := range family.GetMetric() {
			value, ok := sampleValue(family.GetType(), metric)
			if !ok {
				continue
			}
			logger.Printf("%s%s %g", family.GetName(), formatLabels(metric.GetLabel()), value)
		}
	}
	return nil
}

func sampleValue(kind dto.MetricType, metric *dto.Metric) (float64, bool) {
	switch kind {
	case dto.MetricType_COUNTER:
		return metric.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return metric.GetGauge().GetValue(), true
	default:
		return 0, false
	}
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", pair.GetName(), pair.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
