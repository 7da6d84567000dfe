// Package cloud builds the AWS SDK clients used by the bucket report.
//
// It wraps aws-sdk-go-v2 configuration loading so the rest of the application
// only deals with a small Config struct and two narrow interfaces.
//
// # Client Interfaces
//
// S3API and IAMAPI expose exactly the calls the inventory needs. They are
// satisfied by *s3.Client and *iam.Client and make it easy to mock AWS
// interactions for unit testing (see core/cloud/mocks).
//
// # Credentials
//
// Static credentials (access key, secret key and optional session token) are
// taken from Config. Every request is bounded by Config.TimeoutSeconds.
//
// # Usage
//
//	awsCfg, err := cloud.LoadAWSConfig(ctx, cfg.AWS)
//	s3Client, iamClient := cloud.NewClients(awsCfg, cfg.AWS)
package cloud
