package pbs

import "encoding/json"

// BidRequest holds one ad slot's auction parameters, as submitted by the
// orchestrator. Params carries the bidder-specific config and is left raw
// here; adapters unmarshal it into their own contract struct.
type BidRequest struct {
	BidID           string `json:"bidId"`
	BidderRequestID string `json:"bidderRequestId"`

	// Sizes is the slot's declared size list. Legacy callers may supply a
	// single [w,h] pair instead of a list of pairs; both shapes are accepted.
	Sizes  json.RawMessage `json:"sizes,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`

	MediaType  string      `json:"mediaType,omitempty"`
	MediaTypes *MediaTypes `json:"mediaTypes,omitempty"`
}

type MediaTypes struct {
	Banner *BannerMediaType `json:"banner,omitempty"`
}

type BannerMediaType struct {
	Sizes [][2]uint64 `json:"sizes,omitempty"`
}

// IsBanner reports whether the slot accepts banner creatives, either through
// the mediaTypes object or the flat mediaType field.
func (bid *BidRequest) IsBanner() bool {
	if bid.MediaTypes != nil && bid.MediaTypes.Banner != nil {
		return true
	}
	return bid.MediaType == "banner"
}

// PageContext carries what the orchestrator knows about the hosting page.
// It is injected into adapters at build time so they stay free of ambient
// global lookups.
type PageContext struct {
	// Page is the top window URL.
	Page string
	// Referrer is the top window referrer.
	Referrer string
	// Secure is true when the page was loaded over HTTPS.
	Secure bool
	// TopFrame is false when the ad unit is nested inside an iframe.
	TopFrame bool
}

// PBSBid is a normalized bid handed back to the orchestrator.
type PBSBid struct {
	RequestID  string  `json:"requestId"`
	CPM        float64 `json:"cpm"`
	Width      uint64  `json:"width"`
	Height     uint64  `json:"height"`
	Ad         string  `json:"ad"`
	DealID     string  `json:"dealId,omitempty"`
	TTL        int     `json:"ttl"`
	NetRevenue bool    `json:"netRevenue"`
	Currency   string  `json:"currency"`
	CreativeID string  `json:"creativeId"`
}

type PBSBidSlice []*PBSBid
