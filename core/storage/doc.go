// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client and is used to publish finished reports to a
// bucket on AWS S3 or any S3-compatible store.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket if needed.
//   - PutObject: Uploads content (with size and options).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage.WithFallback(key, secret, token, region))
//	exists, err := client.BucketExists(ctx, "reports")
package storage
