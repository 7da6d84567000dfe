package cmd

import (
	"bucket-report/core/config"

	"github.com/spf13/pflag"
)

const (
	flagRegion       = "aws_region"
	flagAccessKey    = "aws_access_key"
	flagSecretKey    = "aws_secret_key"
	flagSessionToken = "aws_security_token"
	flagEndpoint     = "endpoint"
	flagOutput       = "output"
	flagFormat       = "format"
	flagUpload       = "upload"
	flagMetricsFile  = "metrics-file"
)

// bindReportFlags registers the report flags. Defaults are empty so that a flag
// only overrides the loaded configuration when it is given.
func bindReportFlags(fs *pflag.FlagSet) {
	fs.StringP(flagRegion, "r", "", "AWS region name")
	fs.StringP(flagAccessKey, "a", "", "AWS access key id")
	fs.StringP(flagSecretKey, "s", "", "AWS secret key")
	fs.StringP(flagSessionToken, "t", "", "AWS security (session) token")
	fs.String(flagEndpoint, "", "Custom S3/IAM endpoint URL")
	fs.StringP(flagOutput, "o", "", "Report file path (default output.csv)")
	fs.StringP(flagFormat, "f", "", "Report format: csv or json (default csv)")
	fs.Bool(flagUpload, false, "Upload the report to the configured storage bucket")
	fs.String(flagMetricsFile, "", "Write Prometheus text-format run metrics to this file")
}

// applyFlags copies every flag that was set on the command line into cfg.
func applyFlags(fs *pflag.FlagSet, cfg *config.Config) error {
	stringFlags := map[string]*string{
		flagRegion:       &cfg.AWS.Region,
		flagAccessKey:    &cfg.AWS.AccessKey,
		flagSecretKey:    &cfg.AWS.SecretKey,
		flagSessionToken: &cfg.AWS.SessionToken,
		flagEndpoint:     &cfg.AWS.Endpoint,
		flagOutput:       &cfg.Report.Output,
		flagFormat:       &cfg.Report.Format,
		flagMetricsFile:  &cfg.Metrics.File,
	}
	for name, dst := range stringFlags {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if fs.Changed(flagUpload) {
		v, err := fs.GetBool(flagUpload)
		if err != nil {
			return err
		}
		cfg.Report.Upload = v
	}
	return nil
}
