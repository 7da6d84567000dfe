// Package inventory enumerates the S3 buckets of an account and enriches them
// with the metadata shown in the bucket report.
//
// # Queries
//
//   - AccountAliases: iam:ListAccountAliases, all pages, space separated.
//     Missing permission is not fatal and yields "Not available".
//   - BucketRegion: s3:GetBucketLocation, with the empty and EU constraints
//     mapped to us-east-1 and eu-west-1.
//   - BucketOwner: s3:GetBucketAcl owner ID.
//   - AnalyticsEnabled: true if s3:ListBucketAnalyticsConfigurations returns
//     at least one configuration.
//
// Collect runs them sequentially for every bucket returned by ListBuckets and
// stops at the first error, so a report is either complete or not produced.
package inventory
