package adapters

import (
	"net/http"

	"github.com/prebid/ix-adapter/openrtb_ext"
	"github.com/prebid/ix-adapter/pbs"
)

// Bidder is the contract between the auction orchestrator and one demand
// partner's protocol adapter. Implementations are stateless given their
// inputs plus whatever was resolved when the adapter was built; they never
// perform network I/O themselves.
type Bidder interface {
	// Name uniquely identifies this adapter. This must be identical to the
	// bidder code used by the orchestrator.
	Name() string

	// IsBidRequestValid reports whether the slot's params satisfy the
	// exchange's constraints. Slots which fail are dropped silently; there
	// is no partial-failure reporting.
	IsBidRequestValid(bid *pbs.BidRequest) bool

	// MakeRequests builds the single HTTP request which fetches bids for the
	// given slots. A nil RequestData means there is nothing to send (for
	// example, no slot survived the media type filter).
	//
	// The errors should describe situations which make the request "less than
	// ideal": slots skipped over malformed params, for example.
	MakeRequests(bids []*pbs.BidRequest) (*RequestData, []error)

	// MakeBids unpacks the server's response into normalized bids.
	//
	// The bids can be nil (for no bids), but should not contain nil elements.
	// Malformed or empty responses yield no bids rather than a failure; any
	// errors returned alongside are diagnostics for the orchestrator.
	MakeBids(externalRequest *RequestData, response *ResponseData) ([]*TypedBid, []error)
}

// TypedBid packages a normalized bid with the media type it was bid on.
type TypedBid struct {
	Bid     *pbs.PBSBid
	BidType openrtb_ext.BidType
}

// RequestData packages together the fields needed to make an http.Request.
//
// This exists so that the orchestrator can execute and debug-log adapter
// traffic uniformly without any adapter touching a socket.
type RequestData struct {
	Method  string
	Uri     string
	Body    []byte
	Headers http.Header
}

// ResponseData packages together information from the server's http.Response.
type ResponseData struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}
