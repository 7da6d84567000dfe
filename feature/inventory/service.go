package inventory

import (
	"context"
	"fmt"
	"strings"

	"bucket-report/core/cloud"
	"bucket-report/core/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// Operation names used for logging and metrics.
const (
	OpListAccountAliases                = "ListAccountAliases"
	OpListBuckets                       = "ListBuckets"
	OpGetBucketAcl                      = "GetBucketAcl"
	OpGetBucketLocation                 = "GetBucketLocation"
	OpListBucketAnalyticsConfigurations = "ListBucketAnalyticsConfigurations"
)

// Service collects the bucket inventory of an account.
type Service struct {
	s3      cloud.S3API
	iam     cloud.IAMAPI
	logger  *zap.Logger
	metrics *metrics.Collector
}

// NewService creates a new inventory service. collector may be nil.
func NewService(s3Client cloud.S3API, iamClient cloud.IAMAPI, logger *zap.Logger, collector *metrics.Collector) *Service {
	return &Service{
		s3:      s3Client,
		iam:     iamClient,
		logger:  logger,
		metrics: collector,
	}
}

// Collect lists all buckets and enriches each with owner, region and analytics
// state. Records keep the order returned by ListBuckets.
// Any API error except for account aliases aborts the collection.
func (s *Service) Collect(ctx context.Context) ([]BucketRecord, error) {
	aliases := s.AccountAliases(ctx)

	out, err := s.s3.ListBuckets(ctx, &s3.ListBucketsInput{})
	s.metrics.ObserveCall(OpListBuckets, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	s.logger.Debug("Listed buckets", zap.Int("count", len(out.Buckets)))

	records := make([]BucketRecord, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		record, err := s.describe(ctx, aws.ToString(b.Name), aliases)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	s.logger.Info("Collected bucket inventory",
		zap.Int("buckets", len(records)),
		zap.Int("analytics_enabled", CountAnalytics(records)),
	)
	return records, nil
}

func (s *Service) describe(ctx context.Context, bucket, aliases string) (BucketRecord, error) {
	// Region first: the remaining calls are routed to it.
	region, err := s.BucketRegion(ctx, bucket)
	if err != nil {
		return BucketRecord{}, err
	}

	owner, err := s.BucketOwner(ctx, bucket, region)
	if err != nil {
		return BucketRecord{}, err
	}

	analytics, err := s.AnalyticsEnabled(ctx, bucket, region)
	if err != nil {
		return BucketRecord{}, err
	}

	s.logger.Debug("Described bucket",
		zap.String("bucket", bucket),
		zap.String("region", region),
		zap.Bool("analytics", analytics),
	)

	return BucketRecord{
		OwnerID:        owner,
		AccountAliases: aliases,
		Name:           bucket,
		Region:         region,
		Analytics:      analytics,
	}, nil
}

// AccountAliases returns all account aliases joined by a space.
// Listing aliases needs iam:ListAccountAliases, which many roles lack, so any
// failure yields AliasesNotAvailable instead of an error.
func (s *Service) AccountAliases(ctx context.Context) string {
	var aliases []string

	p := iam.NewListAccountAliasesPaginator(s.iam, &iam.ListAccountAliasesInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		s.metrics.ObserveCall(OpListAccountAliases, err)
		if err != nil {
			s.logger.Warn("Account aliases not available",
				zap.String("code", cloud.ErrorCode(err)),
				zap.Error(err),
			)
			return AliasesNotAvailable
		}
		aliases = append(aliases, page.AccountAliases...)
	}

	return strings.Join(aliases, " ")
}

// BucketRegion returns the region of a bucket.
func (s *Service) BucketRegion(ctx context.Context, bucket string) (string, error) {
	out, err := s.s3.GetBucketLocation(ctx, &s3.GetBucketLocationInput{Bucket: aws.String(bucket)})
	s.metrics.ObserveCall(OpGetBucketLocation, err)
	if err != nil {
		return "", fmt.Errorf("failed to get location of bucket %s: %w", bucket, err)
	}
	return NormalizeRegion(out.LocationConstraint), nil
}

// BucketOwner returns the canonical ID of the bucket owner.
func (s *Service) BucketOwner(ctx context.Context, bucket, region string) (string, error) {
	out, err := s.s3.GetBucketAcl(ctx, &s3.GetBucketAclInput{Bucket: aws.String(bucket)}, cloud.InRegion(region))
	s.metrics.ObserveCall(OpGetBucketAcl, err)
	if err != nil {
		return "", fmt.Errorf("failed to get acl of bucket %s: %w", bucket, err)
	}
	if out.Owner == nil {
		return "", nil
	}
	return aws.ToString(out.Owner.ID), nil
}

// AnalyticsEnabled reports whether the bucket has any analytics configuration.
// Only the first page is needed to tell.
func (s *Service) AnalyticsEnabled(ctx context.Context, bucket, region string) (bool, error) {
	out, err := s.s3.ListBucketAnalyticsConfigurations(ctx,
		&s3.ListBucketAnalyticsConfigurationsInput{Bucket: aws.String(bucket)},
		cloud.InRegion(region),
	)
	s.metrics.ObserveCall(OpListBucketAnalyticsConfigurations, err)
	if err != nil {
		return false, fmt.Errorf("failed to list analytics configurations of bucket %s: %w", bucket, err)
	}
	return len(out.AnalyticsConfigurationList) > 0, nil
}

// NormalizeRegion maps a bucket location constraint to a region name.
// An empty constraint means us-east-1 and the legacy EU constraint means eu-west-1.
func NormalizeRegion(constraint types.BucketLocationConstraint) string {
	switch constraint {
	case "":
		return "us-east-1"
	case types.BucketLocationConstraintEu:
		return "eu-west-1"
	default:
		return string(constraint)
	}
}
