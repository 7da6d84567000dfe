package cmd

import (
	"context"
	"fmt"
	"time"

	"bucket-report/core/cloud"
	"bucket-report/core/config"
	"bucket-report/core/logger"
	"bucket-report/core/metrics"
	"bucket-report/core/storage"
	"bucket-report/feature/inventory"
	"bucket-report/feature/report"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the bucket report",
	Long: `Lists all buckets, resolves owner, account aliases, region and analytics
configuration of each one and writes the result as CSV (or JSON).
No file is written if any bucket query fails.`,
	Args: cobra.NoArgs,
	RunE: runReportCmd,
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cmd.Flags(), cfg); err != nil {
		return fmt.Errorf("failed to read flags: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	return runReport(cmd.Context(), cfg, logg)
}

// runReport performs one full run: collect, write, optionally publish.
func runReport(ctx context.Context, cfg *config.Config, logg *zap.Logger) error {
	if err := cfg.AWS.Validate(); err != nil {
		return err
	}
	if _, err := report.NewWriter(cfg.Report.Format); err != nil {
		return err
	}

	runID := uuid.NewString()
	logg = logger.WithRunID(logg, runID)

	awsCfg, err := cloud.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	s3Client, iamClient := cloud.NewClients(awsCfg, cfg.AWS)

	collector := metrics.NewCollector(cfg.Metrics)
	svc := inventory.NewService(s3Client, iamClient, logg, collector)

	return generate(ctx, cfg, logg, svc, collector, runID)
}

// generate collects the inventory and writes the report. It is separated from
// runReport so it can be driven by mocked clients.
func generate(ctx context.Context, cfg *config.Config, logg *zap.Logger, svc *inventory.Service, collector *metrics.Collector, runID string) error {
	start := time.Now()
	logg.Info("Collecting bucket inventory", zap.String("region", cfg.AWS.Region))

	records, err := svc.Collect(ctx)
	collector.ObserveRun(len(records), inventory.CountAnalytics(records), time.Since(start), err)
	defer writeMetrics(collector, cfg.Metrics.File, logg)

	if err != nil {
		logg.Error("Bucket inventory failed, no report written",
			zap.String("code", cloud.ErrorCode(err)),
			zap.Error(err),
		)
		return err
	}

	if len(records) == 0 {
		logg.Warn("No buckets visible to the given credentials, no report written")
		return nil
	}

	rep := report.New(runID, cfg.AWS.Region, records)
	if err := report.WriteFile(cfg.Report.Output, cfg.Report.Format, rep); err != nil {
		return err
	}
	logg.Info("Report written",
		zap.String("file", cfg.Report.Output),
		zap.String("format", cfg.Report.Format),
		zap.Int("buckets", rep.BucketCount),
		zap.Int("analytics_enabled", rep.AnalyticsEnabled),
		zap.Duration("execution_time", time.Since(start)),
	)

	if !cfg.Report.Upload {
		return nil
	}

	storageCfg := cfg.Storage.WithFallback(cfg.AWS.AccessKey, cfg.AWS.SecretKey, cfg.AWS.SessionToken, cfg.AWS.Region)
	store, err := storage.NewClient(storageCfg)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	pub := report.NewPublisher(store, storageCfg.Bucket, storageCfg.Region, cfg.Report.Prefix, logg)
	if _, err := pub.Publish(ctx, cfg.Report.Output, runID); err != nil {
		return err
	}
	return nil
}

func writeMetrics(collector *metrics.Collector, path string, logg *zap.Logger) {
	if path == "" {
		return
	}
	if err := collector.WriteFile(path); err != nil {
		logg.Warn("Failed to write metrics file", zap.String("file", path), zap.Error(err))
		return
	}
	logg.Debug("Metrics written", zap.String("file", path))
}
