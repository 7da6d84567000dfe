package metrics

// Config holds configuration for the run metrics.
type Config struct {
	// File is where the metrics are written in Prometheus text format.
	// Empty disables the metrics file.
	File string `mapstructure:"file" default:""`
	// Namespace prefixes every metric name.
	Namespace string `mapstructure:"namespace" default:"bucket_report"`
}
