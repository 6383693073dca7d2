package adapters

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"net/http"

	"golang.org/x/net/context/ctxhttp"

	"github.com/prebid/ix-adapter/openrtb_ext"
	"github.com/prebid/ix-adapter/pbs"
	"github.com/prebid/ix-adapter/pbsmetrics"
)

// HTTPBidder is the orchestrator-facing wrapper around a Bidder. It owns the
// transport: the Bidder it wraps only translates between formats.
type HTTPBidder interface {
	// Bid filters out invalid slots, fetches bids for the rest, and returns
	// them normalized. Timing, retries and concurrency across adapters stay
	// with the caller; ctx carries the auction deadline.
	Bid(ctx context.Context, bids []*pbs.BidRequest) (pbs.PBSBidSlice, []error)
}

// AdaptBidder wraps a Bidder so the orchestrator can call it. A nil client
// falls back to the shared HTTPAdapter client with the default config; met may
// be nil when the host runs without instrumentation.
func AdaptBidder(bidder Bidder, client *http.Client, met *pbsmetrics.Metrics) HTTPBidder {
	if client == nil {
		client = NewHTTPAdapter(DefaultHTTPAdapterConfig).Client
	}
	return &bidderAdapter{
		Bidder: bidder,
		Client: client,
		met:    met,
	}
}

type bidderAdapter struct {
	Bidder Bidder
	Client *http.Client
	met    *pbsmetrics.Metrics
}

func (b *bidderAdapter) Bid(ctx context.Context, bids []*pbs.BidRequest) (pbs.PBSBidSlice, []error) {
	am := b.adapterMetrics()
	am.RequestMeter.Mark(1)

	valid := make([]*pbs.BidRequest, 0, len(bids))
	for _, bid := range bids {
		if b.Bidder.IsBidRequestValid(bid) {
			valid = append(valid, bid)
		}
	}
	if len(valid) == 0 {
		am.NoBidMeter.Mark(1)
		return nil, nil
	}

	reqData, errs := b.Bidder.MakeRequests(valid)
	if reqData == nil {
		am.NoBidMeter.Mark(1)
		return nil, errs
	}

	response, err := b.doRequest(ctx, reqData)
	if err != nil {
		am.ErrorMeter.Mark(1)
		return nil, append(errs, err)
	}

	typedBids, moreErrs := b.Bidder.MakeBids(reqData, response)
	errs = append(errs, moreErrs...)

	if len(typedBids) == 0 {
		am.NoBidMeter.Mark(1)
		return nil, errs
	}

	result := make(pbs.PBSBidSlice, 0, len(typedBids))
	for _, typedBid := range typedBids {
		am.BidsReceivedMeter.Mark(1)
		am.PriceHistogram.Update(int64(typedBid.Bid.CPM * 100))
		result = append(result, typedBid.Bid)
	}
	return result, errs
}

func (b *bidderAdapter) doRequest(ctx context.Context, req *RequestData) (*ResponseData, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequest(req.Method, req.Uri, body)
	if err != nil {
		return nil, err
	}
	if req.Headers != nil {
		httpReq.Header = req.Headers
	}

	httpResp, err := ctxhttp.Do(ctx, b.Client, httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := ioutil.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return &ResponseData{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
		Headers:    httpResp.Header,
	}, nil
}

func (b *bidderAdapter) adapterMetrics() *pbsmetrics.AdapterMetrics {
	if b.met == nil {
		return pbsmetrics.BlankAdapterMetrics()
	}
	return b.met.AdapterMetricsFor(openrtb_ext.BidderName(b.Bidder.Name()))
}
