package storage

// Config holds configuration for the storage the report is published to.
// Empty credentials and region fall back to the AWS settings of the run.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// SessionToken is the optional session token for temporary credentials.
	SessionToken string `mapstructure:"session_token" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the name of the bucket reports are uploaded to.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// WithFallback fills empty credentials and region from the given values.
func (c Config) WithFallback(accessKey, secretKey, sessionToken, region string) Config {
	if c.AccessKey == "" && c.SecretKey == "" {
		c.AccessKey = accessKey
		c.SecretKey = secretKey
		c.SessionToken = sessionToken
	}
	if c.Region == "" {
		c.Region = region
	}
	return c
}
