// Package metrics records per-run metrics of the bucket report.
//
// The report is a one-shot process, so metrics are not served over HTTP.
// Instead the Collector keeps a private Prometheus registry and writes it to a
// file at the end of the run, ready for the node_exporter textfile collector.
//
// # Metrics
//
//   - <namespace>_api_calls_total{operation,outcome}
//   - <namespace>_buckets
//   - <namespace>_analytics_enabled_buckets
//   - <namespace>_run_duration_seconds
//   - <namespace>_run_success
//   - <namespace>_last_run_timestamp_seconds
//
// # Usage
//
//	c := metrics.NewCollector(cfg.Metrics)
//	c.ObserveCall("ListBuckets", err)
//	c.ObserveRun(len(records), enabled, time.Since(start), err)
//	_ = c.WriteFile(cfg.Metrics.File)
package metrics
