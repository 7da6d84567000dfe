package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// S3 is a mock implementation of cloud.S3API
type S3 struct {
	mock.Mock
}

func (m *S3) ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.ListBucketsOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3) GetBucketAcl(ctx context.Context, params *s3.GetBucketAclInput, optFns ...func(*s3.Options)) (*s3.GetBucketAclOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.GetBucketAclOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3) GetBucketLocation(ctx context.Context, params *s3.GetBucketLocationInput, optFns ...func(*s3.Options)) (*s3.GetBucketLocationOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.GetBucketLocationOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3) ListBucketAnalyticsConfigurations(ctx context.Context, params *s3.ListBucketAnalyticsConfigurationsInput, optFns ...func(*s3.Options)) (*s3.ListBucketAnalyticsConfigurationsOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.ListBucketAnalyticsConfigurationsOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}
