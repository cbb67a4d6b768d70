package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/officerdemo/internal/common"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveStoreOp_CountsByOutcome(t *testing.T) {
	ok := testutil.ToFloat64(storeOps.WithLabelValues("metrics_test", "ok"))
	failed := testutil.ToFloat64(storeOps.WithLabelValues("metrics_test", "storage_error"))

	var err error
	ObserveStoreOp("metrics_test", time.Now(), &err)

	err = fmt.Errorf("%w: %w", common.ErrStorage, errors.New("conn refused"))
	ObserveStoreOp("metrics_test", time.Now(), &err)

	assert.Equal(t, ok+1, testutil.ToFloat64(storeOps.WithLabelValues("metrics_test", "ok")))
	assert.Equal(t, failed+1, testutil.ToFloat64(storeOps.WithLabelValues("metrics_test", "storage_error")))
}

func TestObserveAstroCall_CountsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(astroCalls.WithLabelValues("async", "timeout"))

	err := common.ErrTimeout
	ObserveAstroCall("async", time.Now(), &err)

	assert.Equal(t, before+1, testutil.ToFloat64(astroCalls.WithLabelValues("async", "timeout")))
}

func TestOutcome(t *testing.T) {
	wrap := func(e error) *error {
		w := fmt.Errorf("%w: cause", e)
		return &w
	}
	other := errors.New("other")

	assert.Equal(t, "ok", outcome(nil))
	assert.Equal(t, "timeout", outcome(wrap(common.ErrTimeout)))
	assert.Equal(t, "decode_error", outcome(wrap(common.ErrDecode)))
	assert.Equal(t, "transport_error", outcome(wrap(common.ErrTransport)))
	assert.Equal(t, "storage_error", outcome(wrap(common.ErrStorage)))
	assert.Equal(t, "error", outcome(&other))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	var err error
	ObserveStoreOp("count", time.Now(), &err)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "officerdemo_store_operations_total")
}
