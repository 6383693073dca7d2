package ix

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/mxmCherry/openrtb"

	"github.com/prebid/ix-adapter/adapters"
	"github.com/prebid/ix-adapter/config"
	"github.com/prebid/ix-adapter/errortypes"
	"github.com/prebid/ix-adapter/openrtb_ext"
	"github.com/prebid/ix-adapter/pbs"
)

const (
	// cygnusVersion is the endpoint protocol version, sent as the v query param.
	cygnusVersion = "7.2"
	// requestSource marks the envelope as prebid traffic.
	requestSource = "prebid"
	// missingCreativeID stands in when the exchange omits crid.
	missingCreativeID = "-"
	// bidTTLSeconds is how long a returned bid stays usable.
	bidTTLSeconds = 60
)

// priceToDollarFactor maps a currency code to the divisor turning the
// exchange's price into a CPM. The exchange quotes minor units (cents) for
// every currency except the exempt ones listed here; JPY arrives in whole
// yen. Exchange convention, extend per currency as needed.
var priceToDollarFactor = map[string]float64{
	"JPY": 1,
}

const defaultPriceFactor float64 = 100

type IxAdapter struct {
	URI  string
	page *pbs.PageContext
	fpd  config.FirstPartyDataSource
}

func init() {
	adapters.RegisterBidder(openrtb_ext.BidderIx, Builder)
}

// Builder builds a new instance of the Ix adapter. The endpoint is resolved
// here, once: a page served over HTTPS talks to the secure endpoint.
func Builder(cfg config.Adapter, page *pbs.PageContext, fpd config.FirstPartyDataSource) (adapters.Bidder, error) {
	uri := cfg.Endpoint
	if page != nil && page.Secure {
		uri = cfg.SecureEndpoint
	}
	if uri == "" {
		return nil, errors.New("ix: no endpoint configured")
	}
	return &IxAdapter{
		URI:  uri,
		page: page,
		fpd:  fpd,
	}, nil
}

func (a *IxAdapter) Name() string {
	return string(openrtb_ext.BidderIx)
}

type ixImpExt struct {
	SiteID string `json:"siteID"`
	Sid    string `json:"sid"`
}

type ixReqExt struct {
	Source string `json:"source"`
}

// bidToBannerImp maps one slot onto one wire impression. The ext carries the
// site id and a WIDTHxHEIGHT slot label.
func (a *IxAdapter) bidToBannerImp(bid *pbs.BidRequest) (openrtb.Imp, error) {
	var params openrtb_ext.ExtImpIx
	if err := json.Unmarshal(bid.Params, &params); err != nil {
		return openrtb.Imp{}, &errortypes.BadInput{
			Message: fmt.Sprintf("unmarshal params for bid %s failed: %v", bid.BidID, err),
		}
	}
	size, ok := parseSize(params.Size)
	if !ok {
		return openrtb.Imp{}, &errortypes.BadInput{
			Message: fmt.Sprintf("bid %s: size is not a [w,h] pair", bid.BidID),
		}
	}

	topFrame := int8(1)
	if a.page != nil && !a.page.TopFrame {
		topFrame = 0
	}

	var siteID string
	if params.SiteID != nil {
		siteID = *params.SiteID
	}
	ext, err := json.Marshal(ixImpExt{
		SiteID: siteID,
		Sid:    fmt.Sprintf("%dx%d", size.W, size.H),
	})
	if err != nil {
		return openrtb.Imp{}, err
	}

	w, h := size.W, size.H
	imp := openrtb.Imp{
		ID: bid.BidID,
		Banner: &openrtb.Banner{
			W:        &w,
			H:        &h,
			TopFrame: topFrame,
		},
		Ext: ext,
	}
	if params.BidFloor != nil && params.BidFloorCur != nil {
		imp.BidFloor = *params.BidFloor
		imp.BidFloorCur = *params.BidFloorCur
	}
	return imp, nil
}

// MakeRequests batches every banner slot into one envelope and wraps it in a
// GET against the endpoint resolved at build time. Non-banner slots are
// filtered out; slots with unusable params are skipped with an error.
func (a *IxAdapter) MakeRequests(bids []*pbs.BidRequest) (*adapters.RequestData, []error) {
	if len(bids) == 0 {
		return nil, nil
	}

	// the envelope id and the payload site id come from the head of the
	// batch, whether or not that slot survives the banner filter
	requestID := bids[0].BidderRequestID
	siteID := firstSiteID(bids[0])

	var errs []error
	imps := make([]openrtb.Imp, 0, len(bids))
	for _, bid := range bids {
		if !bid.IsBanner() {
			continue
		}
		imp, err := a.bidToBannerImp(bid)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		imps = append(imps, imp)
	}
	if len(imps) == 0 {
		return nil, errs
	}

	site := &openrtb.Site{}
	if a.page != nil {
		site.Page = a.page.Page
		site.Ref = a.page.Referrer
	}
	if fpd := a.firstPartyData(); len(fpd) > 0 {
		site.Page += "?" + fpdQueryString(fpd)
	}

	reqExt, err := json.Marshal(ixReqExt{Source: requestSource})
	if err != nil {
		return nil, append(errs, err)
	}
	envelope, err := json.Marshal(openrtb.BidRequest{
		ID:   requestID,
		Imp:  imps,
		Site: site,
		Ext:  reqExt,
	})
	if err != nil {
		return nil, append(errs, err)
	}

	payload := url.Values{}
	payload.Set("s", siteID)
	payload.Set("v", cygnusVersion)
	payload.Set("r", string(envelope))
	payload.Set("ac", "j")
	payload.Set("sd", "1")

	return &adapters.RequestData{
		Method:  "GET",
		Uri:     a.URI + "?" + payload.Encode(),
		Headers: http.Header{"Accept": {"application/json"}},
	}, errs
}

func firstSiteID(bid *pbs.BidRequest) string {
	var params openrtb_ext.ExtImpIx
	if err := json.Unmarshal(bid.Params, &params); err != nil || params.SiteID == nil {
		return ""
	}
	return *params.SiteID
}

func (a *IxAdapter) firstPartyData() map[string]string {
	if a.fpd == nil {
		return nil
	}
	return a.fpd.FirstPartyData()
}

// fpdQueryString renders the targeting map as k=v pairs joined by &, both
// sides URL-encoded, no trailing separator. Keys are emitted in sorted order
// so the page suffix is deterministic.
func fpdQueryString(fpd map[string]string) string {
	keys := make([]string, 0, len(fpd))
	for k := range fpd {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fpd[k]))
	}
	return b.String()
}

// MakeBids unpacks the exchange's response. "No bids" is the failure mode:
// an empty or seatbid-less body yields an empty list, and any errors
// returned are diagnostics rather than aborts.
func (a *IxAdapter) MakeBids(externalRequest *adapters.RequestData, response *adapters.ResponseData) ([]*adapters.TypedBid, []error) {
	switch {
	case response == nil || response.StatusCode == http.StatusNoContent || len(response.Body) == 0:
		return nil, nil
	case response.StatusCode == http.StatusBadRequest:
		return nil, []error{&errortypes.BadInput{
			Message: fmt.Sprintf("Unexpected status code: %d", response.StatusCode),
		}}
	case response.StatusCode != http.StatusOK:
		return nil, []error{&errortypes.BadServerResponse{
			Message: fmt.Sprintf("Unexpected status code: %d", response.StatusCode),
		}}
	}

	var bidResponse openrtb.BidResponse
	if err := json.Unmarshal(response.Body, &bidResponse); err != nil {
		return nil, []error{&errortypes.BadServerResponse{
			Message: fmt.Sprintf("JSON parsing error: %v", err),
		}}
	}

	var bids []*adapters.TypedBid
	for _, seatBid := range bidResponse.SeatBid {
		for i := range seatBid.Bid {
			bids = append(bids, &adapters.TypedBid{
				Bid:     parseBid(&seatBid.Bid[i], bidResponse.Cur),
				BidType: openrtb_ext.BidTypeBanner,
			})
		}
	}
	return bids, nil
}

// parseBid normalizes one wire bid. The price arrives in minor units unless
// the currency is exempt (see priceToDollarFactor); dealid sits nested in
// the bid ext and is simply absent when missing.
func parseBid(bid *openrtb.Bid, currency string) *pbs.PBSBid {
	factor := defaultPriceFactor
	if f, ok := priceToDollarFactor[currency]; ok {
		factor = f
	}

	creativeID := bid.CrID
	if creativeID == "" {
		creativeID = missingCreativeID
	}

	dealID, _ := jsonparser.GetString(bid.Ext, "dealid")

	return &pbs.PBSBid{
		RequestID:  bid.ImpID,
		CPM:        bid.Price / factor,
		Width:      bid.W,
		Height:     bid.H,
		Ad:         bid.AdM,
		DealID:     dealID,
		TTL:        bidTTLSeconds,
		NetRevenue: true,
		Currency:   currency,
		CreativeID: creativeID,
	}
}
