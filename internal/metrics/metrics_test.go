package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBuild(t *testing.T) {
	before := testutil.ToFloat64(DuplicateKeys)
	RecordBuild("index", 12, 30, 2, 5*time.Millisecond)

	assert.Equal(t, 12.0, testutil.ToFloat64(GraphNodes))
	assert.Equal(t, 30.0, testutil.ToFloat64(GraphEdges))
	assert.Equal(t, before+2, testutil.ToFloat64(DuplicateKeys))
}

func TestRecordQuery(t *testing.T) {
	counter := QueryTotal.WithLabelValues("path", "no_path")
	before := testutil.ToFloat64(counter)

	RecordQuery("path", "no_path", time.Millisecond)
	RecordQuery("path", "no_path", time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
