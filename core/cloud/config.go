package cloud

import "errors"

// Config holds configuration for the AWS API clients.
type Config struct {
	// Region is the AWS region the clients are created in (e.g., eu-central-1).
	Region string `mapstructure:"region" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// SessionToken is the optional session token for temporary credentials.
	SessionToken string `mapstructure:"session_token" default:""`
	// Endpoint overrides the service endpoint (S3-compatible stores, localstack).
	Endpoint string `mapstructure:"endpoint" default:""`
	// UsePathStyle forces path-style bucket addressing.
	UsePathStyle bool `mapstructure:"use_path_style" default:"false"`
	// TimeoutSeconds bounds every HTTP request made by the SDK.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate checks that the credentials needed for a report run are present.
func (c Config) Validate() error {
	var errs []error
	if c.Region == "" {
		errs = append(errs, errors.New("aws region is required"))
	}
	if c.AccessKey == "" {
		errs = append(errs, errors.New("aws access key is required"))
	}
	if c.SecretKey == "" {
		errs = append(errs, errors.New("aws secret key is required"))
	}
	return errors.Join(errs...)
}
