// Package metrics records qualification outcomes as Prometheus metrics for
// the node exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "image_qualifier"

// Qualification results
const (
	ResultQualified     = "qualified"
	ResultUnreachable   = "unreachable"
	ResultFailed        = "failed"
	ResultStagingFailed = "staging_failed"
)

// Grant operations
const (
	OperationShare   = "share"
	OperationPublish = "publish"
)

type Recorder struct {
	registry *prometheus.Registry

	qualificationsTotal *prometheus.CounterVec
	qualifyDuration     *prometheus.HistogramVec
	stageDuration       *prometheus.HistogramVec
	reapedTotal         *prometheus.CounterVec
	grantsTotal         *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		qualificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "workflow",
				Name:      "qualifications_total",
				Help:      "Total number of image qualifications by result",
			},
			[]string{"region", "result"},
		),

		qualifyDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "workflow",
				Name:      "qualify_duration_seconds",
				Help:      "Duration of image qualification in seconds",
				Buckets:   prometheus.ExponentialBuckets(30, 2, 10), // 30s to ~4h
			},
			[]string{"region"},
		),

		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "storage",
				Name:      "stage_duration_seconds",
				Help:      "Duration of staging an image into object storage in seconds",
				Buckets:   prometheus.ExponentialBuckets(5, 2, 10), // 5s to ~43min
			},
			[]string{"region"},
		),

		reapedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "compute",
				Name:      "reaped_resources_total",
				Help:      "Total number of cleanup requests by resource kind and outcome",
			},
			[]string{"region", "kind", "outcome"},
		),

		grantsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "storage",
				Name:      "grants_total",
				Help:      "Total number of share and publish requests by result",
			},
			[]string{"region", "operation", "result"},
		),
	}

	r.registry.MustRegister(
		r.qualificationsTotal,
		r.qualifyDuration,
		r.stageDuration,
		r.reapedTotal,
		r.grantsTotal,
	)

	return r
}

func (r *Recorder) RecordQualification(region string, result string, duration time.Duration) {
	r.qualificationsTotal.WithLabelValues(region, result).Inc()
	if result != ResultStagingFailed {
		r.qualifyDuration.WithLabelValues(region).Observe(duration.Seconds())
	}
}

func (r *Recorder) RecordStage(region string, duration time.Duration) {
	r.stageDuration.WithLabelValues(region).Observe(duration.Seconds())
}

func (r *Recorder) RecordReaped(region string, kind string, outcome string) {
	r.reapedTotal.WithLabelValues(region, kind, outcome).Inc()
}

func (r *Recorder) RecordGrant(region string, operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	r.grantsTotal.WithLabelValues(region, operation, result).Inc()
}

// WriteToTextfile writes all metrics to path in the text exposition format
func (r *Recorder) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
