package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Collector records the metrics of a single report run.
// A nil *Collector is valid and records nothing.
type Collector struct {
	config   Config
	registry *prometheus.Registry

	apiCalls         *prometheus.CounterVec
	buckets          prometheus.Gauge
	analyticsEnabled prometheus.Gauge
	runDuration      prometheus.Gauge
	runSuccess       prometheus.Gauge
	lastRun          prometheus.Gauge
}

// NewCollector creates a collector backed by its own registry.
func NewCollector(cfg Config) *Collector {
	if cfg.Namespace == "" {
		cfg.Namespace = "bucket_report"
	}

	c := &Collector{
		config:   cfg,
		registry: prometheus.NewRegistry(),
		apiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "api_calls_total",
			Help:      "AWS API calls issued during the run.",
		}, []string{"operation", "outcome"}),
		buckets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "buckets",
			Help:      "Buckets included in the report.",
		}),
		analyticsEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "analytics_enabled_buckets",
			Help:      "Buckets with at least one analytics configuration.",
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the report run.",
		}),
		runSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "run_success",
			Help:      "1 if the last run produced a report, 0 otherwise.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}),
	}

	c.registry.MustRegister(c.apiCalls, c.buckets, c.analyticsEnabled, c.runDuration, c.runSuccess, c.lastRun)
	return c
}

// ObserveCall counts one API call and its outcome.
func (c *Collector) ObserveCall(operation string, err error) {
	if c == nil {
		return
	}
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}
	c.apiCalls.WithLabelValues(operation, outcome).Inc()
}

// ObserveRun records the result of a finished run.
func (c *Collector) ObserveRun(buckets, analyticsEnabled int, duration time.Duration, err error) {
	if c == nil {
		return
	}
	c.buckets.Set(float64(buckets))
	c.analyticsEnabled.Set(float64(analyticsEnabled))
	c.runDuration.Set(duration.Seconds())
	if err != nil {
		c.runSuccess.Set(0)
	} else {
		c.runSuccess.Set(1)
	}
	c.lastRun.SetToCurrentTime()
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// WriteFile writes all metrics to path in Prometheus text format.
// It is a no-op when path is empty.
func (c *Collector) WriteFile(path string) error {
	if c == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
