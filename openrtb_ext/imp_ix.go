package openrtb_ext

import "encoding/json"

// ExtImpIx defines the contract for a bid request's ix params.
//
// SiteID, BidFloor and BidFloorCur are pointers because validation has to
// tell "absent" apart from a zero value: a missing siteId fails validation
// while an empty string passes, and a bid floor is only legal when the floor
// and its currency arrive together.
//
// Size is the [w,h] pair chosen for this request. It stays raw here so the
// validators can reject malformed shapes instead of erroring out.
type ExtImpIx struct {
	SiteID      *string         `json:"siteId"`
	Size        json.RawMessage `json:"size,omitempty"`
	BidFloor    *float64        `json:"bidFloor,omitempty"`
	BidFloorCur *string         `json:"bidFloorCur,omitempty"`
}
