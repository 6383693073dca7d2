package pbsmetrics

import (
	"fmt"

	metrics "github.com/rcrowley/go-metrics"

	"github.com/prebid/ix-adapter/openrtb_ext"
)

// Metrics holds the per-adapter instrumentation.
type Metrics struct {
	MetricsRegistry metrics.Registry
	AdapterMetrics  map[openrtb_ext.BidderName]*AdapterMetrics
}

// AdapterMetrics tracks one adapter's traffic.
type AdapterMetrics struct {
	RequestMeter      metrics.Meter
	NoBidMeter        metrics.Meter
	ErrorMeter        metrics.Meter
	BidsReceivedMeter metrics.Meter
	// PriceHistogram samples bid CPMs in hundredths (cents for dollar-denominated currencies).
	PriceHistogram metrics.Histogram
}

// NewMetrics registers meters for every exchange on the given registry.
func NewMetrics(registry metrics.Registry, exchanges []openrtb_ext.BidderName) *Metrics {
	m := &Metrics{
		MetricsRegistry: registry,
		AdapterMetrics:  make(map[openrtb_ext.BidderName]*AdapterMetrics, len(exchanges)),
	}
	for _, a := range exchanges {
		m.AdapterMetrics[a] = registerAdapterMetrics(registry, string(a))
	}
	return m
}

// AdapterMetricsFor returns the named adapter's meters, or blank ones for an
// unknown adapter so callers never need a nil check.
func (m *Metrics) AdapterMetricsFor(name openrtb_ext.BidderName) *AdapterMetrics {
	if am, ok := m.AdapterMetrics[name]; ok {
		return am
	}
	return BlankAdapterMetrics()
}

func registerAdapterMetrics(registry metrics.Registry, exchange string) *AdapterMetrics {
	return &AdapterMetrics{
		RequestMeter:      metrics.GetOrRegisterMeter(fmt.Sprintf("adapter.%s.requests", exchange), registry),
		NoBidMeter:        metrics.GetOrRegisterMeter(fmt.Sprintf("adapter.%s.no_bid_requests", exchange), registry),
		ErrorMeter:        metrics.GetOrRegisterMeter(fmt.Sprintf("adapter.%s.error_requests", exchange), registry),
		BidsReceivedMeter: metrics.GetOrRegisterMeter(fmt.Sprintf("adapter.%s.bids_received", exchange), registry),
		PriceHistogram:    metrics.GetOrRegisterHistogram(fmt.Sprintf("adapter.%s.prices", exchange), registry, metrics.NewExpDecaySample(1028, 0.015)),
	}
}

// BlankAdapterMetrics returns no-op meters, for hosts running without instrumentation.
func BlankAdapterMetrics() *AdapterMetrics {
	return &AdapterMetrics{
		RequestMeter:      &metrics.NilMeter{},
		NoBidMeter:        &metrics.NilMeter{},
		ErrorMeter:        &metrics.NilMeter{},
		BidsReceivedMeter: &metrics.NilMeter{},
		PriceHistogram:    &metrics.NilHistogram{},
	}
}
