package pbsmetrics

import (
	"testing"

	metrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"

	"github.com/prebid/ix-adapter/openrtb_ext"
)

func TestNewMetrics(t *testing.T) {
	registry := metrics.NewRegistry()
	m := NewMetrics(registry, []openrtb_ext.BidderName{openrtb_ext.BidderIx})

	am := m.AdapterMetricsFor(openrtb_ext.BidderIx)
	am.RequestMeter.Mark(1)
	am.BidsReceivedMeter.Mark(2)
	am.PriceHistogram.Update(250)

	assert.Equal(t, int64(1), am.RequestMeter.Count())
	assert.Equal(t, int64(2), am.BidsReceivedMeter.Count())
	assert.Equal(t, int64(1), am.PriceHistogram.Count())

	// meters are registered under adapter.{bidder}
	assert.NotNil(t, registry.Get("adapter.ix.requests"))
	assert.NotNil(t, registry.Get("adapter.ix.prices"))
}

func TestUnknownAdapterGetsBlankMetrics(t *testing.T) {
	m := NewMetrics(metrics.NewRegistry(), nil)
	am := m.AdapterMetricsFor("bogus")
	am.RequestMeter.Mark(1)
	assert.Equal(t, int64(0), am.RequestMeter.Count())
}
