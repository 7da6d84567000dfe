// Package config provides configuration management for bucket-report.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Command-line flags are applied on top by the cmd
// package, so a flag always wins over the environment.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - AWS: region, credentials, endpoint and request timeout (AWS_REGION, AWS_ACCESS_KEY, ...)
//   - Report: output path, format, upload toggle and key prefix (REPORT_OUTPUT, ...)
//   - Storage: bucket and credentials used to publish the report (STORAGE_BUCKET, ...)
//   - Metrics: Prometheus textfile path and namespace (METRICS_FILE, ...)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// Defaults come from the `default` struct tags of each section.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.AWS.Region)
package config
