package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. The regex tolerates
// the OTel scope labels added by the exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestBusinessMetrics_Record(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	for _, status := range []string{"success", "rejected", "error"} {
		t.Run(status, func(t *testing.T) {
			bm.RecordOperation(context.Background(), "subscribers", "subscriber_register", status)
			bm.RecordDuration(
				context.Background(),
				"subscribers",
				"subscriber_register",
				25*time.Millisecond,
				status,
			)
		})
	}
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	assert.NotPanics(t, func() {
		noOpMetrics.RecordOperation(context.Background(), "subscribers", "subscriber_register", "success")
		noOpMetrics.RecordDuration(
			context.Background(),
			"subscribers",
			"subscriber_register",
			100*time.Millisecond,
			"error",
		)
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "subscribers", "subscriber_register", "success")
	bm.RecordOperation(ctx, "subscribers", "subscriber_register", "success")
	bm.RecordOperation(ctx, "subscribers", "subscriber_register", "rejected")
	bm.RecordOperation(ctx, "subscribers", "subscriber_register", "error")

	bm.RecordDuration(ctx, "subscribers", "subscriber_register", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "subscribers", "subscriber_register", 60*time.Millisecond, "success")
	bm.RecordDuration(ctx, "subscribers", "subscriber_register", 5*time.Millisecond, "rejected")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	output := w.Body.String()

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="subscribers".*operation="subscriber_register".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="subscribers".*operation="subscriber_register".*status="rejected"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="subscribers".*operation="subscriber_register".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="subscribers".*operation="subscriber_register".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_sum`,
		`domain="subscribers".*operation="subscriber_register".*status="rejected"`,
		``,
	)
}
