package report

// Config holds configuration for the report output.
type Config struct {
	// Output is the path of the report file.
	Output string `mapstructure:"output" default:"output.csv"`
	// Format is the report format (csv, json).
	Format string `mapstructure:"format" default:"csv"`
	// Upload publishes the report to the storage bucket after writing it.
	Upload bool `mapstructure:"upload" default:"false"`
	// Prefix is the object key prefix used when uploading.
	Prefix string `mapstructure:"prefix" default:"bucket-reports"`
}
