package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveCall(t *testing.T) {
	c := NewCollector(Config{Namespace: "test"})

	c.ObserveCall("ListBuckets", nil)
	c.ObserveCall("GetBucketAcl", nil)
	c.ObserveCall("GetBucketAcl", errors.New("denied"))
	c.ObserveCall("GetBucketAcl", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.apiCalls.WithLabelValues("ListBuckets", outcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.apiCalls.WithLabelValues("GetBucketAcl", outcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.apiCalls.WithLabelValues("GetBucketAcl", outcomeError)))
}

func TestCollector_ObserveRun(t *testing.T) {
	c := NewCollector(Config{})

	c.ObserveRun(3, 1, 1500*time.Millisecond, nil)
	assert.Equal(t, 3.0, testutil.ToFloat64(c.buckets))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.analyticsEnabled))
	assert.Equal(t, 1.5, testutil.ToFloat64(c.runDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runSuccess))
	assert.Greater(t, testutil.ToFloat64(c.lastRun), 0.0)

	c.ObserveRun(0, 0, time.Second, errors.New("failed"))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.runSuccess))
}

func TestCollector_WriteFile(t *testing.T) {
	c := NewCollector(Config{})
	c.ObserveCall("ListBuckets", nil)
	c.ObserveRun(2, 1, time.Second, nil)

	path := filepath.Join(t.TempDir(), "bucket_report.prom")
	require.NoError(t, c.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `bucket_report_api_calls_total{operation="ListBuckets",outcome="success"} 1`)
	assert.Contains(t, content, "bucket_report_buckets 2")
	assert.Contains(t, content, "bucket_report_analytics_enabled_buckets 1")

	t.Run("EmptyPath", func(t *testing.T) {
		assert.NoError(t, c.WriteFile(""))
	})
}

func TestCollector_Nil(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveCall("ListBuckets", nil)
		c.ObserveRun(1, 1, time.Second, nil)
	})
	assert.Nil(t, c.Registry())
	assert.NoError(t, c.WriteFile("ignored"))
}
