package report

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"bucket-report/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads written reports to a storage bucket.
type Publisher struct {
	client storage.Client
	bucket string
	region string
	prefix string
	logger *zap.Logger
}

// NewPublisher creates a new report publisher.
func NewPublisher(client storage.Client, bucket, region, prefix string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}
}

// Publish uploads the report file at filePath and returns its object key.
// The bucket is created if it does not exist yet.
func (p *Publisher) Publish(ctx context.Context, filePath, runID string) (string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		p.logger.Info("Creating report bucket", zap.String("bucket", p.bucket), zap.String("region", p.region))
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{Region: p.region}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
	}

	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat report file: %w", err)
	}

	key := ObjectKey(p.prefix, runID, filepath.Base(filePath))
	opts := minio.PutObjectOptions{ContentType: ContentType(filePath)}
	if _, err := p.client.PutObject(ctx, p.bucket, key, f, info.Size(), opts); err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	p.logger.Info("Report uploaded",
		zap.String("bucket", p.bucket),
		zap.String("key", key),
		zap.Int64("size", info.Size()),
	)
	return key, nil
}

// ObjectKey builds the key <prefix>/<runID>/<name>, skipping empty parts.
func ObjectKey(prefix, runID, name string) string {
	return path.Join(strings.Trim(prefix, "/"), runID, name)
}

// ContentType guesses the content type from the report file extension.
func ContentType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
