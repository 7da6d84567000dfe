package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bucket-report/feature/inventory"
	"bucket-report/feature/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []inventory.BucketRecord {
	return []inventory.BucketRecord{
		{OwnerID: "79a59df900b949e5", AccountAliases: "prod", Name: "bucket1", Region: "eu-central-1", Analytics: true},
		{OwnerID: "79a59df900b949e5", AccountAliases: "prod", Name: "bucket2", Region: "eu-central-1"},
		{OwnerID: "79a59df900b949e5", AccountAliases: "prod", Name: "bucket3", Region: "us-east-1"},
	}
}

func TestCSVWriter(t *testing.T) {
	t.Run("HeaderAndRows", func(t *testing.T) {
		var buf bytes.Buffer
		err := report.CSVWriter{}.Write(&buf, report.New("run", "eu-central-1", sampleRecords()))
		require.NoError(t, err)

		want := strings.Join([]string{
			"Account ID,Account Aliases,S3 Bucket Name,S3 Bucket Region,Analytics",
			"79a59df900b949e5,prod,bucket1,eu-central-1,Y",
			"79a59df900b949e5,prod,bucket2,eu-central-1,N",
			"79a59df900b949e5,prod,bucket3,us-east-1,N",
		}, "\n") + "\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("AliasesWithSpacesAndComma", func(t *testing.T) {
		records := []inventory.BucketRecord{
			{OwnerID: "id", AccountAliases: "a b", Name: "bucket", Region: "us-east-1"},
			{OwnerID: "id", AccountAliases: "odd,alias", Name: "bucket", Region: "us-east-1"},
		}
		var buf bytes.Buffer
		require.NoError(t, report.CSVWriter{}.Write(&buf, report.New("run", "", records)))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "id,a b,bucket,us-east-1,N", lines[1])
		assert.Equal(t, `id,"odd,alias",bucket,us-east-1,N`, lines[2])
	})

	t.Run("OnlyHeaderWithoutBuckets", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.CSVWriter{}.Write(&buf, report.New("run", "", nil)))
		assert.Equal(t, "Account ID,Account Aliases,S3 Bucket Name,S3 Bucket Region,Analytics\n", buf.String())
	})
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	r := report.New("run-42", "eu-central-1", sampleRecords())
	require.NoError(t, report.JSONWriter{}.Write(&buf, r))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-42", decoded["run_id"])
	assert.Equal(t, "eu-central-1", decoded["region"])
	assert.EqualValues(t, 3, decoded["bucket_count"])
	assert.EqualValues(t, 1, decoded["analytics_enabled"])

	buckets, ok := decoded["buckets"].([]any)
	require.True(t, ok)
	require.Len(t, buckets, 3)
	first := buckets[0].(map[string]any)
	assert.Equal(t, "bucket1", first["bucket_name"])
	assert.Equal(t, true, first["analytics"])
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format  string
		want    report.Writer
		wantErr bool
	}{
		{report.FormatCSV, report.CSVWriter{}, false},
		{"", report.CSVWriter{}, false},
		{report.FormatJSON, report.JSONWriter{}, false},
		{"xml", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w, err := report.NewWriter(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w)
		})
	}
}

func TestWriteFile(t *testing.T) {
	t.Run("CSV", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output.csv")
		require.NoError(t, report.WriteFile(path, report.FormatCSV, report.New("run", "", sampleRecords())))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "Account ID,Account Aliases,S3 Bucket Name,S3 Bucket Region,Analytics\n"))
		assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 4)
	})

	t.Run("UnsupportedFormatCreatesNothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output.xml")
		err := report.WriteFile(path, "xml", report.New("run", "", sampleRecords()))
		assert.Error(t, err)
		assert.NoFileExists(t, path)
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "output.csv")
		err := report.WriteFile(path, report.FormatCSV, report.New("run", "", sampleRecords()))
		assert.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	r := report.New("run", "eu-central-1", nil)
	assert.NotNil(t, r.Buckets)
	assert.Equal(t, 0, r.BucketCount)
	assert.False(t, r.GeneratedAt.IsZero())
}
