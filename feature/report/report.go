package report

import (
	"time"

	"bucket-report/feature/inventory"
)

// Report is the result of one run.
type Report struct {
	RunID            string                   `json:"run_id"`
	GeneratedAt      time.Time                `json:"generated_at"`
	Region           string                   `json:"region"`
	BucketCount      int                      `json:"bucket_count"`
	AnalyticsEnabled int                      `json:"analytics_enabled"`
	Buckets          []inventory.BucketRecord `json:"buckets"`
}

// New wraps the collected records into a report.
func New(runID, region string, records []inventory.BucketRecord) *Report {
	if records == nil {
		records = []inventory.BucketRecord{}
	}
	return &Report{
		RunID:            runID,
		GeneratedAt:      time.Now().UTC(),
		Region:           region,
		BucketCount:      len(records),
		AnalyticsEnabled: inventory.CountAnalytics(records),
		Buckets:          records,
	}
}
