package cmd

import (
	"fmt"
	"os"

	"bucket-report/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it runs the report.
var RootCmd = &cobra.Command{
	Use:   "bucket-report",
	Short: "S3 bucket inventory report",
	Long: `Bucket Report lists the S3 buckets visible to the given credentials and
writes one row per bucket with its owner, the account aliases, the bucket
region and whether storage class analytics are configured.

Example:
  bucket-report -r eu-central-1 -a AKIA... -s secret`,
	Args:          cobra.NoArgs,
	RunE:          runReportCmd,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level for readable ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	bindReportFlags(RootCmd.PersistentFlags())
}
